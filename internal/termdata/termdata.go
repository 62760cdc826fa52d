// Package termdata holds the static legal-entity designator lists, grouped
// by entity type and by country, embedded at build time.
package termdata

import (
	"embed"
	"os"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/terms_by_type.yaml data/terms_by_country.yaml
var dataFS embed.FS

type lists struct {
	byType    map[string][]string
	byCountry map[string][]string
}

var load = sync.OnceValues(func() (*lists, error) {
	byType, err := parse("data/terms_by_type.yaml")
	if err != nil {
		return nil, err
	}
	byCountry, err := parse("data/terms_by_country.yaml")
	if err != nil {
		return nil, err
	}
	return &lists{byType: byType, byCountry: byCountry}, nil
})

func parse(path string) (map[string][]string, error) {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "termdata: read %s", path)
	}
	var out map[string][]string
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, eris.Wrapf(err, "termdata: parse %s", path)
	}
	return out, nil
}

// FromFile reads extra designator terms from a YAML file holding a flat
// list of strings.
func FromFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "termdata: read %s", path)
	}
	var out []string
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, eris.Wrapf(err, "termdata: parse %s", path)
	}
	return out, nil
}

// ByType returns the designator terms grouped by entity type.
func ByType() (map[string][]string, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return l.byType, nil
}

// ByCountry returns the designator terms grouped by country.
func ByCountry() (map[string][]string, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return l.byCountry, nil
}

// UniqueTerms returns the deduplicated union of all type and country terms,
// sorted for deterministic iteration.
func UniqueTerms() ([]string, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, terms := range l.byType {
		for _, t := range terms {
			seen[t] = struct{}{}
		}
	}
	for _, terms := range l.byCountry {
		for _, t := range terms {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}
