package basename

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sells-group/basename/internal/catalog"
	"github.com/sells-group/basename/internal/normalize"
)

// marker overwrites matched spans in the working buffer. Periods cannot
// collide with retained content because punctuation is stripped from the
// folded text before the search.
const marker = '.'

// punctToken is a whitespace-split token whose punctuation-stripped form
// is empty (e.g. "&", "-"). These carry no matchable content, so they are
// set aside before matching and reinserted at their original index.
type punctToken struct {
	idx int
	tok string
}

// Clean returns name with every accepted designator occurrence removed.
// Retained tokens keep their original casing, punctuation, and order;
// trailing runes that are neither alphanumeric nor a period are trimmed.
func (c *Cleaner) Clean(name string, opts Options) string {
	name = normalize.StripTail(name)
	if name == "" {
		return name
	}

	parts := strings.Fields(name)
	var punct []punctToken
	for i, tok := range parts {
		if normalize.StripPunct(tok) == "" {
			punct = append(punct, punctToken{idx: i, tok: tok})
		}
	}

	folded := normalize.StripPunct(normalize.Fold(name))

	var accepted []catalog.Occurrence
	for _, occ := range c.catalog.Search(folded) {
		if accept(folded, occ, opts) {
			accepted = append(accepted, occ)
		}
	}
	if len(accepted) == 0 {
		return name
	}

	return rebuild(resolve(folded, accepted), parts, punct)
}

// accept applies the word-boundary and positional rules to one raw
// occurrence. A hit is only removable when it is not glued to an adjacent
// alphanumeric rune and its position is permitted by the options.
func accept(text string, occ catalog.Occurrence, opts Options) bool {
	leftOK := occ.Start == 0
	if !leftOK {
		r, _ := utf8.DecodeLastRuneInString(text[:occ.Start])
		leftOK = !normalize.IsAlnum(r)
	}
	if !leftOK {
		return false
	}

	atStart := occ.Start == 0
	atEnd := occ.End == len(text)

	if !opts.Middle {
		// Without interior removal, only hits anchored exactly at an
		// edge are eligible, gated by the matching option; the right
		// neighbor must still be non-alphanumeric so an anchored hit
		// glued to the next word is not removable.
		if !(atStart && opts.Prefix) && !(atEnd && opts.Suffix) {
			return false
		}
		if atEnd {
			return true
		}
		r, _ := utf8.DecodeRuneInString(text[occ.End:])
		return !normalize.IsAlnum(r)
	}

	if !opts.Prefix && atStart {
		return false
	}
	if !opts.Suffix && atEnd {
		return false
	}
	if atEnd {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[occ.End:])
	return !normalize.IsAlnum(r)
}

// resolve converts every accepted span in a working copy of text to
// marker bytes, leaving spaces intact so multi-word matches still split
// into empty sub-tokens instead of merging their neighbors. Spans are
// applied in ascending priority order; the overwrite itself is idempotent,
// so overlapping spans cannot corrupt each other, but the explicit order
// keeps tie-break-sensitive outputs deterministic.
func resolve(text string, accepted []catalog.Occurrence) []byte {
	slices.SortFunc(accepted, func(a, b catalog.Occurrence) int {
		if d := a.Priority - b.Priority; d != 0 {
			return d
		}
		if d := a.Start - b.Start; d != 0 {
			return d
		}
		return a.End - b.End
	})

	buf := []byte(text)
	for _, occ := range accepted {
		for i := occ.Start; i < occ.End; i++ {
			if buf[i] != ' ' {
				buf[i] = marker
			}
		}
	}
	return buf
}

// rebuild maps the surviving tokens of the marked buffer back to their
// original-cased counterparts and reassembles the cleaned name.
func rebuild(buf []byte, parts []string, punct []punctToken) string {
	toks := strings.Fields(string(buf))
	for _, p := range punct {
		idx := min(p.idx, len(toks))
		toks = slices.Insert(toks, idx, p.tok)
	}

	kept := make([]string, 0, len(toks))
	for i, tok := range toks {
		if i >= len(parts) {
			// Rare compatibility decompositions expand to phrases
			// containing spaces, adding folded tokens with no original
			// counterpart; those carry nothing worth keeping.
			break
		}
		if strings.ReplaceAll(tok, ".", "") == "" {
			continue
		}
		kept = append(kept, parts[i])
	}
	return normalize.StripTail(strings.Join(kept, " "))
}
