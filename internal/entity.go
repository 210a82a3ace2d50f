package vtpl

import "strings"

// Only this handful of references is decoded inside attribute values; every
// other entity is left for the browser.
var (
	attrDecoder = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
		"&#39;", "'",
	)
	attrDecoderWithNewlines = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
		"&#39;", "'",
		"&#10;", "\n",
		"&#9;", "\t",
	)
)

func decodeAttr(value string, shouldDecodeNewlines bool) string {
	if strings.IndexByte(value, '&') < 0 {
		return value
	}
	if shouldDecodeNewlines {
		return attrDecoderWithNewlines.Replace(value)
	}
	return attrDecoder.Replace(value)
}
