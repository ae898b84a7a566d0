// Package printer implements the stable pretty-printing format spec.md §6
// requires of value_pretty_print: a single deterministic rendering per
// Kind, grounded on nooga-paserati's Value.ToString/Inspect split
// (pkg/vm/value.go) — Print mirrors ToString's non-quoting display form,
// Inspect mirrors the nested/quoting form used for debug output.
package printer

import (
	"fmt"
	"strconv"

	"djs/pkg/object"
)

// Print renders v in the non-nested, non-quoting form: the form a caller
// would want printed directly, not embedded inside another value's
// rendering. Strings are emitted raw; objects render as "[object: Object]"
// per spec.md §6 rather than attempting enumeration (this kernel has no
// toString() method-resolution builtin to fall back on, unlike the
// teacher's tryBuiltinToString).
func Print(v object.Value) string {
	return render(v, false)
}

// Inspect renders v in the nested/quoting form: strings are quoted, matching
// the teacher's InspectNested used wherever a value is displayed as part of
// a larger structure (e.g. an array element or property value).
func Inspect(v object.Value) string {
	return render(v, true)
}

func render(v object.Value, quoteStrings bool) string {
	switch v.Kind() {
	case object.KindUndefined:
		return "undefined"
	case object.KindNull:
		return "null"
	case object.KindBoolean:
		if v.AsBoolean() {
			return "true"
		}
		return "false"
	case object.KindNumber:
		return formatNumber(v.AsNumber())
	case object.KindString:
		s := v.AsString().String()
		if quoteStrings {
			return strconv.Quote(s)
		}
		return s
	case object.KindSymbol:
		return fmt.Sprintf("[symbol: %d]", v.AsSymbol().ID())
	case object.KindObject:
		return "[object: Object]"
	default:
		return "<unknown>"
	}
}

// formatNumber follows spec.md §6's "%f formatting" instruction literally,
// with NaN/Infinity spelled out since Go's default %f rendering of those
// is not stable across platforms.
func formatNumber(f float64) string {
	switch {
	case f != f:
		return "NaN"
	case f > 0 && f+f == f && f > 1e300:
		return "Infinity"
	case f < 0 && f+f == f && f < -1e300:
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'f', 6, 64)
	}
}
