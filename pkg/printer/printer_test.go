package printer_test

import (
	"testing"

	"djs/pkg/object"
	"djs/pkg/printer"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestPrintPrimitives(t *testing.T) {
	cases := []struct {
		name string
		v    object.Value
	}{
		{"undefined", object.Undefined},
		{"null", object.Null},
		{"true", object.True},
		{"false", object.False},
		{"zero", object.Number(0)},
		{"negative_zero", object.Number(negZero())},
		{"integer", object.Number(42)},
		{"fraction", object.Number(3.5)},
		{"nan", object.Number(nan())},
		{"string", object.NewString("hello")},
		{"empty_string", object.NewString("")},
		{"symbol", object.FromSymbol(object.NewSymbolValue(7))},
		{"object", object.FromObject(object.NewPlainObject(object.Null))},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, "print", printer.Print(c.v))
			snaps.MatchSnapshot(t, "inspect", printer.Inspect(c.v))
		})
	}
}

func TestInspectQuotesStringsButPrintDoesNot(t *testing.T) {
	s := object.NewString(`has "quotes" inside`)
	if got := printer.Print(s); got != `has "quotes" inside` {
		t.Errorf("Print should not quote: got %q", got)
	}
	if got := printer.Inspect(s); got != `"has \"quotes\" inside"` {
		t.Errorf("Inspect should quote and escape: got %q", got)
	}
}

func TestPrintSymbolUsesIdentity(t *testing.T) {
	a := object.FromSymbol(object.NewSymbolValue(1))
	b := object.FromSymbol(object.NewSymbolValue(2))
	if printer.Print(a) == printer.Print(b) {
		t.Errorf("expected symbols with different ids to render differently")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func negZero() float64 {
	var zero float64
	return -zero
}
