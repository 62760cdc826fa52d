// Package normalize provides the Unicode folding and punctuation handling
// used to compare organization names independent of case, accents, and
// the separator characters that vary between registries.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformer chains carry internal state, so concurrent callers each take
// a fresh one from the pool. Order matters: compatibility decomposition
// first so combining marks split out, then case folding, then mark removal.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
		)
	},
}

// punctReplacer drops the separator characters that appear inside legal
// designators ("L.L.C.", "Ltd.", "Pty-Ltd") without touching spaces, so
// token boundaries survive the strip.
var punctReplacer = strings.NewReplacer(".", "", ",", "", "-", "")

// Fold returns the caseless, accentless form of s: Unicode case folding,
// NFKD compatibility decomposition, and combining-mark removal. Folding
// never introduces or removes whitespace, so the token count of s is
// preserved.
func Fold(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		// The chain is total over valid UTF-8; invalid bytes pass through.
		return s
	}
	return out
}

// StripPunct removes periods, commas, and hyphens from s.
func StripPunct(s string) string {
	return punctReplacer.Replace(s)
}

// IsAlnum reports whether r is a letter or a number.
func IsAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// StripTail removes trailing runes that are neither alphanumeric nor a
// period, stopping at the first rune that is.
func StripTail(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return !IsAlnum(r) && r != '.'
	})
}
