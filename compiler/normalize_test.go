package compiler

import (
	"testing"

	"github.com/vcrobe/lisplet/sexpr"
)

func TestNormalizeTagsReplacesUnknownHeads(t *testing.T) {
	got := normalizeTags(mustReadOne(t, `(foo {} "x")`))

	want := mustReadOne(t, `(div {} "x")`)
	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}

func TestNormalizeTagsKeepsLegalHeads(t *testing.T) {
	form := mustReadOne(t, `(section {:id "a"} (marquee {} "hi") (%text {} "there"))`)

	got := normalizeTags(form)
	if !sexpr.Equal(got, form) {
		t.Errorf("Expected %s to be unchanged, got %s", sexpr.Write(form), sexpr.Write(got))
	}
}

func TestNormalizeTagsRecursesIntoChildren(t *testing.T) {
	form := mustReadOne(t, `(div {} (widget {} (gadget {} "deep")))`)

	got := normalizeTags(form)

	want := mustReadOne(t, `(div {} (div {} (div {} "deep")))`)
	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}

func TestNormalizeTagsSkipsNonElements(t *testing.T) {
	forms := []string{
		`"plain text"`,
		`(println "hi")`,
		`[:div :p]`,
		`{:a 1}`,
	}

	for _, src := range forms {
		form, err := sexpr.ReadOne(src)
		if err != nil {
			t.Fatalf("ReadOne(%q) returned error: %v", src, err)
		}

		if got := normalizeTags(form); !sexpr.Equal(got, form) {
			t.Errorf("Expected %s to pass through, got %s", sexpr.Write(form), sexpr.Write(got))
		}
	}
}

func TestNormalizeTagsIsIdempotent(t *testing.T) {
	form := mustReadOne(t, `(widget {:id "w"} (gizmo {} "x") (p {} "y"))`)

	once := normalizeTags(form)
	twice := normalizeTags(once)

	if !sexpr.Equal(once, twice) {
		t.Errorf("Expected %s, got %s", sexpr.Write(once), sexpr.Write(twice))
	}
}
