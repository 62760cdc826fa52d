// Package basename extracts the canonical base form of an organization
// name by removing legal-entity designators ("Limited", "Inc", "GmbH")
// that appear as a prefix, suffix, or interior token sequence, while
// preserving the casing, punctuation, and spacing of every retained token.
//
// Basic usage:
//
//	out, err := basename.Clean("Daddy & Sons, Ltd.", basename.DefaultOptions())
//	// out == "Daddy & Sons"
package basename

import (
	"sync"

	"github.com/rotisserie/eris"

	"github.com/sells-group/basename/internal/catalog"
	"github.com/sells-group/basename/internal/termdata"
)

// Options selects which positions a designator may be removed from.
// All-false options match nothing; cleaning then returns the input
// unchanged apart from the trailing trim.
type Options struct {
	// Prefix accepts designators anchored at the start of the name.
	Prefix bool
	// Middle accepts designators in the interior of the name.
	Middle bool
	// Suffix accepts designators anchored at the end of the name.
	Suffix bool
}

// DefaultOptions returns the standard posture: suffix removal only.
func DefaultOptions() Options {
	return Options{Suffix: true}
}

// Cleaner removes designator terms from organization names. It is
// immutable after construction and safe for concurrent use.
type Cleaner struct {
	catalog *catalog.Catalog
}

// New builds a Cleaner over a custom raw term list. An empty list yields
// a Cleaner that removes nothing.
func New(terms []string) (*Cleaner, error) {
	c, err := catalog.New(terms)
	if err != nil {
		return nil, eris.Wrap(err, "basename: build catalog")
	}
	return &Cleaner{catalog: c}, nil
}

// Term is one cataloged designator. Lower Priority ranks stronger: longer
// terms first, lexicographically earlier token sequences first among ties.
type Term struct {
	Tokens   []string
	Text     string
	Priority int
}

// Catalog returns the cleaner's term catalog in priority order.
func (c *Cleaner) Catalog() []Term {
	src := c.catalog.Terms()
	out := make([]Term, len(src))
	for i, t := range src {
		out[i] = Term{Tokens: t.Tokens, Text: t.Text, Priority: t.Priority}
	}
	return out
}

// The default cleaner is built once on first use and shared for the life
// of the process; sync.OnceValues removes the concurrent first-build race.
var defaultCleaner = sync.OnceValues(func() (*Cleaner, error) {
	terms, err := termdata.UniqueTerms()
	if err != nil {
		return nil, eris.Wrap(err, "basename: load default terms")
	}
	if len(terms) == 0 {
		return nil, eris.New("basename: default term data is empty")
	}
	return New(terms)
})

// Default returns the process-wide Cleaner built from the union of all
// embedded entity-type and country term lists.
func Default() (*Cleaner, error) {
	return defaultCleaner()
}

// Clean removes designator terms from name using the default catalog.
func Clean(name string, opts Options) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}
	return c.Clean(name, opts), nil
}
