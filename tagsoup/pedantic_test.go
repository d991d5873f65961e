package tagsoup

import (
	"testing"

	"github.com/vcrobe/lisplet/sexpr"
)

func TestPedanticizeInsertsAttributeMaps(t *testing.T) {
	form := sexpr.NewList(sexpr.Symbol("div"),
		sexpr.NewList(sexpr.Symbol("p"), sexpr.String("hi")),
		sexpr.String("tail"))

	got := Pedanticize(form)

	want := sexpr.NewList(sexpr.Symbol("div"), sexpr.NewMap(),
		sexpr.NewList(sexpr.Symbol("p"), sexpr.NewMap(), sexpr.String("hi")),
		sexpr.String("tail"))

	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}

func TestPedanticizeKeepsExistingAttributes(t *testing.T) {
	form := sexpr.NewList(sexpr.Symbol("div"),
		sexpr.NewMap(sexpr.Keyword("id"), sexpr.String("a")),
		sexpr.NewList(sexpr.Symbol("span")))

	got := Pedanticize(form)

	want := sexpr.NewList(sexpr.Symbol("div"),
		sexpr.NewMap(sexpr.Keyword("id"), sexpr.String("a")),
		sexpr.NewList(sexpr.Symbol("span"), sexpr.NewMap()))

	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}

func TestPedanticizeIsIdempotent(t *testing.T) {
	form := sexpr.NewList(sexpr.Symbol("div"),
		sexpr.NewList(sexpr.Symbol("p"), sexpr.String("hi")))

	once := Pedanticize(form)
	twice := Pedanticize(once)

	if !sexpr.Equal(once, twice) {
		t.Errorf("Expected %s, got %s", sexpr.Write(once), sexpr.Write(twice))
	}
}

func TestPedanticizeLeavesNonElementsAlone(t *testing.T) {
	forms := []sexpr.Node{
		sexpr.String("plain"),
		sexpr.NewVector(sexpr.Keyword("div")),
		sexpr.NewMap(sexpr.Keyword("a"), sexpr.Int(1)),
		sexpr.NewList(sexpr.String("headless")),
		sexpr.NewList(),
	}

	for _, form := range forms {
		if got := Pedanticize(form); !sexpr.Equal(got, form) {
			t.Errorf("Expected %s to pass through, got %s", sexpr.Write(form), sexpr.Write(got))
		}
	}
}

func TestPedanticizeDoesNotDescendIntoVectors(t *testing.T) {
	form := sexpr.NewList(sexpr.Symbol("style"),
		sexpr.NewVector(sexpr.NewVector(sexpr.Keyword("div")), sexpr.NewMap(sexpr.Keyword("color"), sexpr.String("red"))))

	got := Pedanticize(form)

	want := sexpr.NewList(sexpr.Symbol("style"), sexpr.NewMap(),
		sexpr.NewVector(sexpr.NewVector(sexpr.Keyword("div")), sexpr.NewMap(sexpr.Keyword("color"), sexpr.String("red"))))

	if !sexpr.Equal(got, want) {
		t.Errorf("Expected %s, got %s", sexpr.Write(want), sexpr.Write(got))
	}
}
