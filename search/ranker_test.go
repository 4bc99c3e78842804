package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arctize/dnfy/dnf"
	"github.com/Arctize/dnfy/search"
	"github.com/Arctize/dnfy/testutil"
)

// fakeIndex matches terms against an in-memory package list with the same
// semantics as the real index: case-insensitive substring per field, newest
// version per name for Latest.
type fakeIndex struct {
	packages []dnf.Package
	queries  int
}

func (f *fakeIndex) Query(field dnf.Field, term string) ([]dnf.Package, error) {
	f.queries++

	accessor := map[dnf.Field]func(dnf.Package) string{
		dnf.FieldName:        func(p dnf.Package) string { return p.Name },
		dnf.FieldSummary:     func(p dnf.Package) string { return p.Summary },
		dnf.FieldDescription: func(p dnf.Package) string { return p.Description },
	}[field]

	lowered := strings.ToLower(term)

	var hits []dnf.Package
	for _, pkg := range f.packages {
		if strings.Contains(strings.ToLower(accessor(pkg)), lowered) {
			hits = append(hits, pkg)
		}
	}
	return hits, nil
}

func (f *fakeIndex) Latest(pkgs []dnf.Package) []dnf.Package {
	newest := make(map[string]dnf.Package)
	for _, pkg := range pkgs {
		best, ok := newest[pkg.Name]
		if !ok || dnf.CompareEVR(pkg, best) > 0 {
			newest[pkg.Name] = pkg
		}
	}

	var latest []dnf.Package
	for _, pkg := range pkgs {
		if dnf.CompareEVR(pkg, newest[pkg.Name]) == 0 {
			latest = append(latest, pkg)
		}
	}
	return latest
}

func names(pkgs []dnf.Package) []string {
	result := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		result = append(result, pkg.Name)
	}
	return result
}

func TestRankEmptyTermsQueriesNothing(t *testing.T) {
	index := &fakeIndex{packages: testutil.RandomPackages(10)}

	ranked, err := search.Rank(index, nil, search.Fields{Summary: true}, true)
	require.NoError(t, err)

	assert.Empty(t, ranked)
	assert.Zero(t, index.queries)
}

func TestRankRequiresEveryTermToMatch(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git", testutil.WithSummary("Fast distributed version control system")),
		testutil.NewPackage("git-lfs", testutil.WithSummary("Large file support for git")),
		testutil.NewPackage("vim", testutil.WithSummary("The ubiquitous text editor")),
	}}

	ranked, err := search.Rank(index, []string{"git", "version"}, search.Fields{Summary: true}, true)
	require.NoError(t, err)

	// git-lfs matches "git" twice but never "version": AND across terms.
	assert.Equal(t, []string{"git"}, names(ranked))
}

func TestRankMatchesAcrossAnyEnabledField(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git", testutil.WithSummary("Fast distributed version control system")),
	}}

	ranked, err := search.Rank(index, []string{"control"}, search.Fields{Summary: true}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"git"}, names(ranked))

	ranked, err = search.Rank(index, []string{"control"}, search.Fields{}, true)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankDescriptionMatchingIsOptIn(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git",
			testutil.WithSummary("Version control"),
			testutil.WithDescription("Includes gitk, a history browser")),
	}}

	ranked, err := search.Rank(index, []string{"history"}, search.Fields{Summary: true}, true)
	require.NoError(t, err)
	assert.Empty(t, ranked)

	ranked, err = search.Rank(index, []string{"history"}, search.Fields{Summary: true, Description: true}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"git"}, names(ranked))
}

func TestRankOrdersByMatchWeight(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("gitk", testutil.WithSummary("Graphical history browser")),
		testutil.NewPackage("git", testutil.WithSummary("git version control")),
		testutil.NewPackage("other", testutil.WithSummary("Unrelated")),
	}}

	ranked, err := search.Rank(index, []string{"git"}, search.Fields{Summary: true}, true)
	require.NoError(t, err)

	// git hits both name and summary, gitk only the name; other is excluded.
	assert.Equal(t, []string{"git", "gitk"}, names(ranked))
}

func TestRankMultipleFieldHitsDoNotSatisfyOtherTerms(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git", testutil.WithSummary("git git git")),
	}}

	ranked, err := search.Rank(index, []string{"git", "missing"}, search.Fields{Summary: true}, true)
	require.NoError(t, err)

	assert.Empty(t, ranked)
}

func TestRankLatestOnlyRestrictsVersions(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git", testutil.WithVersion("2.44.0")),
		testutil.NewPackage("git", testutil.WithVersion("2.45.1")),
	}}

	ranked, err := search.Rank(index, []string{"git"}, search.Fields{}, true)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "2.45.1", ranked[0].Version)

	ranked, err = search.Rank(index, []string{"git"}, search.Fields{}, false)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestRankBreaksTiesDeterministically(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git-lfs"),
		testutil.NewPackage("git-core"),
		testutil.NewPackage("git-daemon"),
	}}

	ranked, err := search.Rank(index, []string{"git"}, search.Fields{}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"git-core", "git-daemon", "git-lfs"}, names(ranked))
}

func TestRankRepeatedTermsStillMatch(t *testing.T) {
	index := &fakeIndex{packages: []dnf.Package{
		testutil.NewPackage("git"),
	}}

	ranked, err := search.Rank(index, []string{"git", "git"}, search.Fields{}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"git"}, names(ranked))
}
