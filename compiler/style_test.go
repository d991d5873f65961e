package compiler

import (
	"testing"

	"github.com/vcrobe/lisplet/sexpr"
)

func mustReadOne(t *testing.T, src string) sexpr.List {
	t.Helper()

	form, err := sexpr.ReadOne(src)
	if err != nil {
		t.Fatalf("ReadOne(%q) returned error: %v", src, err)
	}

	list, ok := form.(sexpr.List)
	if !ok {
		t.Fatalf("Expected a list, got %s", sexpr.Write(form))
	}

	return list
}

func TestCompileStyleSingleRule(t *testing.T) {
	block := mustReadOne(t, `(style [[:div :p] {:color "red"}])`)

	got := compileStyle(block)

	want := sexpr.NewList(
		sexpr.Symbol("style"),
		sexpr.NewMap(sexpr.Keyword("type"), sexpr.String("text/css")),
		sexpr.String("div p {\n  color: red;\n}\n"),
	)

	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}

func TestCompileStyleMultipleRules(t *testing.T) {
	block := mustReadOne(t, `(style [[:div] {:color "red"} [:p] {:margin 0}])`)

	got := compileStyle(block)

	css, ok := got.Items[2].(sexpr.String)
	if !ok {
		t.Fatalf("Expected a string payload, got %s", sexpr.Write(got))
	}

	want := "div {\n  color: red;\n}\n\np {\n  margin: 0;\n}\n"
	if string(css) != want {
		t.Errorf("Expected %q, got %q", want, string(css))
	}
}

func TestCompileStyleAlternativePaths(t *testing.T) {
	block := mustReadOne(t, `(style [[[:div :p] :span] {:color "blue"}])`)

	got := compileStyle(block)

	css := got.Items[2].(sexpr.String)
	want := "div p,\nspan {\n  color: blue;\n}\n"
	if string(css) != want {
		t.Errorf("Expected %q, got %q", want, string(css))
	}
}

func TestCompileStyleMultipleProperties(t *testing.T) {
	block := mustReadOne(t, `(style [[:body] {:margin 0 :padding "1em"}])`)

	got := compileStyle(block)

	css := got.Items[2].(sexpr.String)
	want := "body {\n  margin: 0;\n  padding: 1em;\n}\n"
	if string(css) != want {
		t.Errorf("Expected %q, got %q", want, string(css))
	}
}

func TestCompileStyleKeepsAttributes(t *testing.T) {
	block := mustReadOne(t, `(style {:media "screen"} [[:div] {:color "red"}])`)

	got := compileStyle(block)

	attrs, ok := got.Items[1].(sexpr.Map)
	if !ok {
		t.Fatalf("Expected an attribute map, got %s", sexpr.Write(got))
	}

	media, ok := attrs.Get(sexpr.Keyword("media"))
	if !ok || !sexpr.Equal(media, sexpr.String("screen")) {
		t.Errorf("Expected :media to survive, got %s", sexpr.Write(attrs))
	}

	typ, ok := attrs.Get(sexpr.Keyword("type"))
	if !ok || !sexpr.Equal(typ, sexpr.String("text/css")) {
		t.Errorf("Expected :type text/css, got %s", sexpr.Write(attrs))
	}
}

func TestCompileStyleOverridesStaleType(t *testing.T) {
	block := mustReadOne(t, `(style {:type "text/less"} [[:div] {:color "red"}])`)

	got := compileStyle(block)

	attrs := got.Items[1].(sexpr.Map)
	typ, _ := attrs.Get(sexpr.Keyword("type"))
	if !sexpr.Equal(typ, sexpr.String("text/css")) {
		t.Errorf("Expected :type to be forced to text/css, got %s", sexpr.Write(typ))
	}
}

func TestCompileStyleOpaqueBlockPassesThrough(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"raw text payload", `(style {:media "print"} "body { color: black; }")`},
		{"empty block", `(style)`},
		{"attributes only", `(style {:media "print"})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := mustReadOne(t, tt.src)

			got := compileStyle(block)
			if !sexpr.Equal(got, block) {
				t.Errorf("Expected %s to pass through, got %s", sexpr.Write(block), sexpr.Write(got))
			}
		})
	}
}

func TestCompileStyleUnpairedItemsAreDropped(t *testing.T) {
	// Three selector groups but two property sets: the last group has no
	// partner and is ignored.
	block := mustReadOne(t, `(style [[:div] {:color "red"} [:p] {:margin 0} [:span]])`)

	got := compileStyle(block)

	css := got.Items[2].(sexpr.String)
	want := "div {\n  color: red;\n}\n\np {\n  margin: 0;\n}\n"
	if string(css) != want {
		t.Errorf("Expected %q, got %q", want, string(css))
	}
}

func TestCompileStyleIsDeterministic(t *testing.T) {
	block := mustReadOne(t, `(style [[:div] {:a 1 :b 2 :c 3}])`)

	first := compileStyle(block)
	for i := 0; i < 10; i++ {
		if again := compileStyle(block); !sexpr.Equal(again, first) {
			t.Fatalf("Run %d produced %s, expected %s", i, sexpr.Write(again), sexpr.Write(first))
		}
	}
}
