package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestLiteralMatcher(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		line       string
		ignoreCase bool
		want       bool
	}{
		{"exact substring", "duct", "safe, fast, productive.", false, true},
		{"case differs", "rust", "Rust:", false, false},
		{"folded", "rUsT", "Rust:", true, true},
		{"folded inside word", "rUsT", "Trust me.", true, true},
		{"regex chars are literal", "foo.bar", "fooXbar", false, false},
		{"unicode fold", "ÉCOLE", "une école", true, true},
		{"empty query", "", "anything", false, true},
		{"no match", "zzz", "abc", true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &SearchConfig{IgnoreCase: c.ignoreCase}
			m := NewLiteralMatcher(c.query)
			if got := m.MatchLine(cfg, c.line); got != c.want {
				t.Errorf("MatchLine(%q, %q) = %v, want %v", c.query, c.line, got, c.want)
			}
		})
	}
}

func TestLiteralMatcher_ReadsFlagAtMatchTime(t *testing.T) {
	m := NewLiteralMatcher("HELLO")
	cfg := &SearchConfig{}
	if m.MatchLine(cfg, "hello") {
		t.Fatalf("expected case-sensitive miss")
	}
	cfg.IgnoreCase = true
	if !m.MatchLine(cfg, "hello") {
		t.Fatalf("expected folded hit")
	}
}

func TestRegexMatcher(t *testing.T) {
	cases := []struct {
		pattern    string
		ignoreCase bool
		line       string
		want       bool
	}{
		{"foo.bar", false, "fooXbar", true},
		{"^Pick", false, "Pick three.", true},
		{"^pick", false, "Pick three.", false},
		{"^pick", true, "Pick three.", true},
		{`\d+`, false, "no digits", false},
		{`\p{Greek}`, false, "alpha α", true},
		{"a|b", true, "B", true},
	}

	for _, c := range cases {
		m, err := NewRegexMatcher(c.pattern, c.ignoreCase)
		if err != nil {
			t.Fatalf("NewRegexMatcher(%q): %v", c.pattern, err)
		}
		if got := m.MatchLine(&SearchConfig{}, c.line); got != c.want {
			t.Errorf("%q on %q = %v, want %v", c.pattern, c.line, got, c.want)
		}
	}
}

func TestRegexMatcher_CaseFlagFixedAtConstruction(t *testing.T) {
	m, err := NewRegexMatcher("rust", true)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &SearchConfig{IgnoreCase: true}
	if !m.MatchLine(cfg, "RUST") {
		t.Fatalf("expected match with global flag set")
	}
	cfg.IgnoreCase = false
	if !m.MatchLine(cfg, "RUST") {
		t.Fatalf("expected match after global flag was cleared")
	}

	strict, err := NewRegexMatcher("rust", false)
	if err != nil {
		t.Fatal(err)
	}
	if strict.MatchLine(&SearchConfig{IgnoreCase: true}, "RUST") {
		t.Fatalf("case-sensitive matcher must ignore the global flag")
	}
}

func TestRegexMatcher_ClassesAreASCII(t *testing.T) {
	cases := []struct {
		pattern string
		line    string
		want    bool
	}{
		{`^\w+$`, "hello", true},
		{`^\w+$`, "héllo", false},
		{`^\p{L}+$`, "héllo", true},
		{`^[\p{L}\p{N}_]+$`, "héllo_2", true},
		{`(?i)^ÉTÉ$`, "été", true},
	}
	for _, c := range cases {
		m, err := NewRegexMatcher(c.pattern, false)
		if err != nil {
			t.Fatalf("NewRegexMatcher(%q): %v", c.pattern, err)
		}
		if got := m.MatchLine(nil, c.line); got != c.want {
			t.Errorf("%q on %q = %v, want %v", c.pattern, c.line, got, c.want)
		}
	}
}

func TestNewRegexMatcher_InvalidPattern(t *testing.T) {
	_, err := NewRegexMatcher("(unclosed", false)
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PatternError, got %T", err)
	}
	if pe.Pattern != "(unclosed" {
		t.Fatalf("unexpected pattern %q", pe.Pattern)
	}
}

func TestLocate(t *testing.T) {
	lit := NewLiteralMatcher("ab")
	got := lit.Locate(&SearchConfig{}, "xabyab")
	want := [][2]int{{1, 3}, {4, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("literal Locate = %v, want %v", got, want)
	}

	got = lit.Locate(&SearchConfig{IgnoreCase: true}, "AB-ab")
	want = [][2]int{{0, 2}, {3, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("folded Locate = %v, want %v", got, want)
	}

	re, _ := NewRegexMatcher(`o+`, false)
	got = re.Locate(&SearchConfig{}, "foo boo")
	want = [][2]int{{1, 3}, {5, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("regex Locate = %v, want %v", got, want)
	}

	empty, _ := NewRegexMatcher(`x*`, false)
	if spans := empty.Locate(&SearchConfig{}, "abc"); len(spans) != 0 {
		t.Fatalf("empty matches must not produce spans, got %v", spans)
	}
}

func TestMergeSpans(t *testing.T) {
	got := mergeSpans([][2]int{{5, 7}, {0, 2}, {1, 3}, {7, 8}})
	want := [][2]int{{0, 3}, {5, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeSpans = %v, want %v", got, want)
	}
}
