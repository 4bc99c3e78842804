// Package search implements the multi-term weighted ranking dnfy applies on
// top of the package index: every term must match somewhere, matching in more
// places ranks a package higher.
package search

import (
	"sort"

	"github.com/samber/lo"

	"github.com/Arctize/dnfy/dnf"
)

// Index is the slice of the package-index capability the ranker consumes.
type Index interface {
	// Query matches one term against one field of every available package,
	// case-insensitively; substring by default, whole-field glob when the
	// term contains glob metacharacters.
	Query(field dnf.Field, term string) ([]dnf.Package, error)
	// Latest restricts a package list to the newest version per name.
	Latest(pkgs []dnf.Package) []dnf.Package
}

// Fields selects which package fields search terms are matched against.
// Names are always matched.
type Fields struct {
	Summary     bool
	Description bool
}

func (f Fields) enabled() []dnf.Field {
	fields := []dnf.Field{dnf.FieldName}
	if f.Summary {
		fields = append(fields, dnf.FieldSummary)
	}
	if f.Description {
		fields = append(fields, dnf.FieldDescription)
	}
	return fields
}

// match accumulates, per package, the distinct terms it matched and the total
// number of (field, term) hits. A package survives only if it matched every
// term; the hit count is its ranking weight.
type match struct {
	pkg     dnf.Package
	terms   map[string]struct{}
	weight  int
	ordinal int
}

// Rank queries the index for every term against every enabled field and
// returns the packages that matched all terms, strongest match first.
// Ties are broken by name, then repository, so output order is deterministic.
// An empty term list yields an empty result without touching the index.
func Rank(index Index, terms []string, fields Fields, latestOnly bool) ([]dnf.Package, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	matches := make(map[string]*match)

	for _, term := range terms {
		for _, field := range fields.enabled() {
			hits, err := index.Query(field, term)
			if err != nil {
				return nil, err
			}

			for _, hit := range hits {
				key := hit.Repo + "\x00" + hit.Specifier()
				m, ok := matches[key]
				if !ok {
					m = &match{
						pkg:     hit,
						terms:   make(map[string]struct{}),
						ordinal: len(matches),
					}
					matches[key] = m
				}
				m.terms[term] = struct{}{}
				m.weight++
			}
		}
	}

	distinctTerms := len(lo.Uniq(terms))

	full := lo.Filter(lo.Values(matches), func(m *match, _ int) bool {
		return len(m.terms) == distinctTerms
	})

	// Restore query order before any further filtering so Latest sees a
	// stable input.
	sort.Slice(full, func(i, j int) bool {
		return full[i].ordinal < full[j].ordinal
	})

	pkgs := lo.Map(full, func(m *match, _ int) dnf.Package {
		return m.pkg
	})

	if latestOnly {
		pkgs = index.Latest(pkgs)
	}

	weights := make(map[string]int, len(full))
	for _, m := range full {
		weights[m.pkg.Repo+"\x00"+m.pkg.Specifier()] = m.weight
	}

	sort.SliceStable(pkgs, func(i, j int) bool {
		wi := weights[pkgs[i].Repo+"\x00"+pkgs[i].Specifier()]
		wj := weights[pkgs[j].Repo+"\x00"+pkgs[j].Specifier()]
		if wi != wj {
			return wi > wj
		}
		if pkgs[i].Name != pkgs[j].Name {
			return pkgs[i].Name < pkgs[j].Name
		}
		return pkgs[i].Repo < pkgs[j].Repo
	})

	return pkgs, nil
}
