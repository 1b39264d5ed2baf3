package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// OrdinalIDFn returns prefix + one-based ordinal, e.g. OrdinalIDFn("a"): 0→"a1", 1→"a2".
// Panics if idx < 0.
func OrdinalIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("OrdinalIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the "Excel-style" column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx). Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation of idx. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// IDScheme resolves a named scheme ("ordinal", "decimal", "excel", "hex") to an IDFn.
// Unknown names report false.
func IDScheme(name string) (IDFn, bool) {
	switch name {
	case "", "ordinal":
		return OrdinalIDFn(DefaultIDPrefix), true
	case "decimal":
		return DefaultIDFn, true
	case "excel":
		return ExcelColumnIDFn, true
	case "hex":
		return HexIDFn, true
	default:
		return nil, false
	}
}

// WithOrdinalIDs sets the ID scheme to OrdinalIDFn(prefix).
func WithOrdinalIDs(prefix string) BuilderOption {
	return WithIDScheme(OrdinalIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
