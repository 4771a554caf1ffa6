package runner

import (
	"strings"
	"testing"
)

func TestRender_Assignment(t *testing.T) {
	got := Render([]string{"let x = 5;"})
	want := "fn main() {\n" +
		"\tlet x = 5;\n" +
		"\tprintln!(\"{:?}\", x);\n" +
		"}\n"
	if got != want {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ExpressionStatement(t *testing.T) {
	got := Render([]string{"let x = 5;", "x * 2;"})
	want := "fn main() {\n" +
		"\tlet x = 5;\n" +
		"\tlet __ares_value = x * 2;\n" +
		"\tprintln!(\"{:?}\", __ares_value);\n" +
		"}\n"
	if got != want {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_OnlyLastLineInstrumented(t *testing.T) {
	got := Render([]string{"let a = 1;", "let b = 2;"})
	if strings.Contains(got, `println!("{:?}", a);`) {
		t.Errorf("earlier lines should not be instrumented:\n%s", got)
	}
	if !strings.Contains(got, `println!("{:?}", b);`) {
		t.Errorf("last line should be instrumented:\n%s", got)
	}
}

func TestRender_Import(t *testing.T) {
	got := Render([]string{"use std::collections::HashMap;"})
	if !strings.Contains(got, "\tuse std::collections::HashMap;\n") {
		t.Errorf("import should be kept verbatim:\n%s", got)
	}
	if !strings.Contains(got, "println!(\"Using `{}`\", \"std::collections::HashMap\");") {
		t.Errorf("expected import acknowledgment:\n%s", got)
	}
}

func TestRender_DeclarationEcho(t *testing.T) {
	got := Render([]string{
		"fn add(a: i32, b: i32) -> i32 {",
		"a + b",
		"}",
	})
	want := "fn main() {\n" +
		"\tfn add(a: i32, b: i32) -> i32 {\n" +
		"\t\ta + b\n" +
		"\t}\n" +
		"\tprintln!(\"{}\", \"fn add(a: i32, b: i32) -> i32\");\n" +
		"}\n"
	if got != want {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_OuterDeclarationEcho(t *testing.T) {
	got := Render([]string{
		"impl Point {",
		"fn new() -> Self {",
		"Point::origin()",
		"}",
		"}",
	})
	if !strings.Contains(got, "\t\tfn new() -> Self {\n\t\t\tPoint::origin()\n\t\t}\n\t}\n") {
		t.Errorf("unexpected indentation:\n%s", got)
	}
	if !strings.HasSuffix(got, "\tprintln!(\"{}\", \"impl Point\");\n}\n") {
		t.Errorf("expected outer signature echo:\n%s", got)
	}
}

func TestRender_PlainScopeUnmodified(t *testing.T) {
	got := Render([]string{
		"for i in 0..3 {",
		`println!("{}", i);`,
		"}",
	})
	want := "fn main() {\n" +
		"\tfor i in 0..3 {\n" +
		"\t\tprintln!(\"{}\", i);\n" +
		"\t}\n" +
		"}\n"
	if got != want {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EscapesSignature(t *testing.T) {
	got := Render([]string{`fn greet(s: &str) -> String {`, `format!("hi {}", s)`, `}`})
	if !strings.Contains(got, `println!("{}", "fn greet(s: &str) -> String");`) {
		t.Errorf("unexpected echo:\n%s", got)
	}

	got = Render([]string{`use a\b;`})
	if !strings.Contains(got, `"a\\b"`) {
		t.Errorf("backslash should be escaped:\n%s", got)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); got != "fn main() {\n}\n" {
		t.Errorf("unexpected empty render: %q", got)
	}
}

func TestTopLevelAssign(t *testing.T) {
	tests := []struct {
		stmt string
		want int
	}{
		{"let x = 5;", 6},
		{"x == 5;", -1},
		{"a != b;", -1},
		{"a <= b;", -1},
		{"a >= b;", -1},
		{"total += 1;", 7},
		{"bits <<= 2;", 7},
		{"foo(a = 1);", -1},
		{`println!("a = {}", a);`, -1},
		{"let c = '=';", 6},
		{"match x { _ => 1 };", -1},
		{"v[i == 0] = 1;", 10},
	}

	for _, tt := range tests {
		if got := topLevelAssign(tt.stmt); got != tt.want {
			t.Errorf("topLevelAssign(%q) = %d, want %d", tt.stmt, got, tt.want)
		}
	}
}

func TestBoundName(t *testing.T) {
	tests := []struct {
		lhs  string
		want string
	}{
		{"let x ", "x"},
		{"let mut x: i32 ", "x"},
		{"let v: Vec<Option<i32>> ", "v"},
		{"x ", "x"},
		{"total +", "total"},
		{"self.count -", "self.count"},
		{"let (a, mut b) ", "(a, b)"},
		{"let p: std::path::PathBuf ", "p"},
	}

	for _, tt := range tests {
		if got := boundName(tt.lhs); got != tt.want {
			t.Errorf("boundName(%q) = %q, want %q", tt.lhs, got, tt.want)
		}
	}
}

func TestDeclarationSignature(t *testing.T) {
	tests := []struct {
		opener string
		want   string
		ok     bool
	}{
		{"fn add(a: i32, b: i32) -> i32 {", "fn add(a: i32, b: i32) -> i32", true},
		{"pub fn f() {", "pub fn f()", true},
		{"impl<T> Wrapper<T> {", "impl<T> Wrapper<T>", true},
		{"trait Shape {", "trait Shape", true},
		{"struct Point {", "struct Point", true},
		{"enum Color {", "enum Color", true},
		{"if x > 1 {", "", false},
		{"for i in 0..3 {", "", false},
		{"fnord {", "", false},
	}

	for _, tt := range tests {
		got, ok := declarationSignature(tt.opener)
		if ok != tt.ok || got != tt.want {
			t.Errorf("declarationSignature(%q) = %q, %v; want %q, %v", tt.opener, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRender_SingleLineDeclarationEcho(t *testing.T) {
	tests := []struct {
		line string
		echo string
	}{
		{"fn one() -> i32 { 1 }", `println!("{}", "fn one() -> i32");`},
		{"struct P { x: i32 }", `println!("{}", "struct P");`},
		{`fn s() -> &'static str { "{" }`, `println!("{}", "fn s() -> &'static str");`},
	}

	for _, tt := range tests {
		got := Render([]string{tt.line})
		if !strings.HasSuffix(got, "\t"+tt.echo+"\n}\n") {
			t.Errorf("Render(%q) missing signature echo:\n%s", tt.line, got)
		}
	}
}

func TestRender_SingleLineScopeUnmodified(t *testing.T) {
	got := Render([]string{"let a = 1;", "if a > 0 { println!(\"pos\"); }"})
	if strings.Count(got, "println!") != 1 {
		t.Errorf("plain single-line scope should not be instrumented:\n%s", got)
	}
}
