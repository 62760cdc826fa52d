// Package catalog builds the priority-ordered designator term catalog and
// the multi-pattern automaton used to find every term occurrence in a name
// in a single pass.
package catalog

import (
	"slices"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/rotisserie/eris"

	"github.com/sells-group/basename/internal/normalize"
)

// Term is a normalized designator as an ordered token sequence. Terms are
// immutable after catalog construction.
type Term struct {
	// Tokens is the folded, punctuation-stripped token sequence.
	Tokens []string
	// Text is the space-joined form of Tokens, the pattern searched for.
	Text string
	// Priority is the term's rank: longer terms first, lexicographically
	// earlier token sequences first among equal lengths. Lower is stronger.
	Priority int
}

// Occurrence is one raw hit of a cataloged term in normalized text.
// Start and End are byte offsets, End exclusive.
type Occurrence struct {
	Start    int
	End      int
	Priority int
	Text     string
}

// Catalog is the full ordered term collection plus its compiled automaton.
// Built once, immutable thereafter, safe for concurrent use.
type Catalog struct {
	terms []Term
	ac    *ahocorasick.Automaton
}

// New normalizes, deduplicates, and priority-orders raw terms, then compiles
// the search automaton over them. An empty input yields a valid catalog that
// matches nothing.
func New(raw []string) (*Catalog, error) {
	seen := make(map[string]struct{}, len(raw))
	terms := make([]Term, 0, len(raw))
	for _, r := range raw {
		tokens := strings.Fields(normalize.StripPunct(normalize.Fold(r)))
		if len(tokens) == 0 {
			continue
		}
		text := strings.Join(tokens, " ")
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		terms = append(terms, Term{Tokens: tokens, Text: text})
	}

	// The sort key (-token count, tokens lexicographically) is the single
	// source of determinism: priority ranks must be reproducible exactly.
	slices.SortFunc(terms, func(a, b Term) int {
		if d := len(b.Tokens) - len(a.Tokens); d != 0 {
			return d
		}
		return slices.Compare(a.Tokens, b.Tokens)
	})

	c := &Catalog{terms: terms}
	if len(terms) == 0 {
		return c, nil
	}

	patterns := make([]string, len(terms))
	for i := range terms {
		terms[i].Priority = i
		patterns[i] = terms[i].Text
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, eris.Wrap(err, "catalog: build automaton")
	}
	c.ac = ac
	return c, nil
}

// Len returns the number of cataloged terms.
func (c *Catalog) Len() int { return len(c.terms) }

// Terms returns the cataloged terms in priority order.
func (c *Catalog) Terms() []Term { return c.terms }

// Search reports every occurrence of every cataloged term in text,
// overlapping occurrences included. No ordering is guaranteed.
func (c *Catalog) Search(text string) []Occurrence {
	if c.ac == nil || text == "" {
		return nil
	}
	ms := c.ac.FindAllOverlapping([]byte(text))
	if len(ms) == 0 {
		return nil
	}
	out := make([]Occurrence, 0, len(ms))
	for _, m := range ms {
		out = append(out, Occurrence{
			Start:    m.Start,
			End:      m.End,
			Priority: m.PatternID,
			Text:     c.terms[m.PatternID].Text,
		})
	}
	return out
}
