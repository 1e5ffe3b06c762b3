// Package trace checks that every requirement ID declared in a requirements
// matrix is referenced by at least one downstream planning document.
package trace

import (
	"cmp"
	"maps"
	"regexp"
	"slices"
	"unicode"
	"unicode/utf8"
)

// idPattern matches requirement ID candidates such as R1 or R42. RE2's \b
// only knows ASCII word characters, so the word boundary on each side is
// enforced by isWordBoundary instead. AR12, R12B and R1은 are not IDs.
var idPattern = regexp.MustCompile(`R[0-9]+`)

// IDSet is a set of distinct requirement IDs.
type IDSet map[string]struct{}

// ExtractIDs returns the distinct requirement IDs found in text.
func ExtractIDs(text string) IDSet {
	set := make(IDSet)
	for _, loc := range idPattern.FindAllStringIndex(text, -1) {
		if isWordBoundary(text, loc[0], loc[1]) {
			set[text[loc[0]:loc[1]]] = struct{}{}
		}
	}
	return set
}

// isWordBoundary reports whether text[start:end] is neither preceded nor
// followed by a word character.
func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// isWordRune treats letters and numbers from any script as word characters.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set holding the members of s and other.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Minus returns the members of s that are not in other.
func (s IDSet) Minus(other IDSet) IDSet {
	out := make(IDSet)
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members present in both sets.
func (s IDSet) Intersect(other IDSet) IDSet {
	out := make(IDSet)
	for id := range s {
		if other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members ordered by numeric suffix.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return SortIDs(ids)
}

// SortIDs sorts ids in place by the integer after the R prefix, so R2 comes
// before R10, and returns the slice.
func SortIDs(ids []string) []string {
	slices.SortFunc(ids, func(a, b string) int {
		if c := compareNumeric(a[1:], b[1:]); c != 0 {
			return c
		}
		// R01 and R1 share a value; fall back to the literal token.
		return cmp.Compare(a, b)
	})
	return ids
}

// compareNumeric compares two decimal digit strings by value without
// overflowing on arbitrarily long IDs.
func compareNumeric(a, b string) int {
	a, b = trimZeros(a), trimZeros(b)
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
