package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
// Out-of-range bounds are clamped.
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	from, to := -1, len(text)
	for g.Next() {
		if idx == start {
			from, _ = g.Positions()
		}
		if idx == end {
			to, _ = g.Positions()
			break
		}
		idx++
	}
	if from < 0 {
		return ""
	}
	return text[from:to]
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// HasPrefix reports whether text begins with prefix on a cluster boundary.
//
// A byte-level match that ends inside a cluster (e.g. "e" against "é")
// does not count.
func HasPrefix(text, prefix string) bool {
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	if prefix == "" || len(prefix) == len(text) {
		return true
	}
	return boundaryAt(text, len(prefix))
}

// HasSuffix reports whether text ends with suffix on a cluster boundary.
func HasSuffix(text, suffix string) bool {
	if !strings.HasSuffix(text, suffix) {
		return false
	}
	if suffix == "" || len(suffix) == len(text) {
		return true
	}
	return boundaryAt(text, len(text)-len(suffix))
}

// CutPrefix returns text without prefix and true, or text and false when
// HasPrefix does not hold.
func CutPrefix(text, prefix string) (string, bool) {
	if !HasPrefix(text, prefix) {
		return text, false
	}
	return text[len(prefix):], true
}

// CutSuffix returns text without suffix and true, or text and false when
// HasSuffix does not hold.
func CutSuffix(text, suffix string) (string, bool) {
	if !HasSuffix(text, suffix) {
		return text, false
	}
	return text[:len(text)-len(suffix)], true
}

// Index returns the grapheme index of the first cluster-aligned occurrence
// of sub in text, or -1.
func Index(text, sub string) int {
	if sub == "" {
		return 0
	}
	clusters := Split(text)
	for i := range clusters {
		if HasPrefix(Join(clusters[i:]), sub) {
			return i
		}
	}
	return -1
}

// LastIndex returns the grapheme index of the last cluster-aligned
// occurrence of sub in text, or -1.
func LastIndex(text, sub string) int {
	clusters := Split(text)
	if sub == "" {
		return len(clusters)
	}
	for i := len(clusters) - 1; i >= 0; i-- {
		if HasPrefix(Join(clusters[i:]), sub) {
			return i
		}
	}
	return -1
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

func boundaryAt(text string, byteOff int) bool {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		if from == byteOff {
			return true
		}
		if from > byteOff {
			return false
		}
	}
	return false
}
