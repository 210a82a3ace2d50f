package filters

import (
	"testing"

	"github.com/vtpl/compiler/internal/test_utils"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		exp  string
		want string
	}{
		{"no filter", "  message  ", "message"},
		{"single", "name | upper", `_f("upper")(name)`},
		{"chained", "a | b | c", `_f("c")(_f("b")(a))`},
		{"arguments", "msg | wrap('-', 2)", `_f("wrap")(msg,'-', 2)`},
		{"empty arguments", "msg | wrap()", `_f("wrap")(msg)`},
		{"logical or", "a || b", "a || b"},
		{"or then filter", "a || b | upper", `_f("upper")(a || b)`},
		{"pipe in string", `"a|b" | upper`, `_f("upper")("a|b")`},
		{"pipe in template", "`a|b` | upper", "_f(\"upper\")(`a|b`)"},
		{"pipe in call", "fn(a | b) | upper", `_f("upper")(fn(a | b))`},
		{"pipe in brackets", "list[a | b]", "list[a | b]"},
		{"pipe in object", "{ a: b | c }", "{ a: b | c }"},
		{"division", "total / count | round", `_f("round")(total / count)`},
		{"regexp", "/a|b/.test(s) | bool", `_f("bool")(/a|b/.test(s))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.exp)
			if diff := test_utils.ANSIDiff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.exp, diff)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	got := Split("a | b(1, 2) | c")
	want := []string{"a ", " b(1, 2) ", " c"}
	if diff := test_utils.ANSIDiff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
}
