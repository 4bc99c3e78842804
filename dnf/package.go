// Package dnf adapts the system DNF installation as a read-only package index
// and a thin transaction driver. Repository metadata, dependency resolution
// and transaction execution all stay with dnf itself; this package only
// queries it and hands work back to it.
package dnf

import "fmt"

// Package is an immutable snapshot of one package record as reported by
// `dnf repoquery`. It is never written back.
type Package struct {
	Name        string
	Epoch       string
	Version     string
	Release     string
	Arch        string
	Repo        string
	Summary     string
	Description string
	InstallSize uint64
}

// Specifier returns the name-version-release.arch form dnf accepts on the
// command line.
func (p Package) Specifier() string {
	return fmt.Sprintf("%s-%s-%s.%s", p.Name, p.Version, p.Release, p.Arch)
}

// EVR returns the epoch:version-release form used for version comparison
// display. A zero or missing epoch is omitted, matching rpm's own output.
func (p Package) EVR() string {
	if p.Epoch == "" || p.Epoch == "0" {
		return fmt.Sprintf("%s-%s", p.Version, p.Release)
	}
	return fmt.Sprintf("%s:%s-%s", p.Epoch, p.Version, p.Release)
}

// NameArch is the identity key for cross-referencing against the installed
// set: two records describe the same installed slot iff name and arch match.
type NameArch struct {
	Name string
	Arch string
}

func (p Package) NameArch() NameArch {
	return NameArch{Name: p.Name, Arch: p.Arch}
}

// InstalledSet is a snapshot of the installed packages keyed by (name, arch).
type InstalledSet map[NameArch]Package

// Lookup returns the installed package occupying the same (name, arch) slot
// as pkg, if any.
func (s InstalledSet) Lookup(pkg Package) (Package, bool) {
	installed, ok := s[pkg.NameArch()]
	return installed, ok
}

// Field enumerates the package fields search terms can be matched against.
type Field int

const (
	FieldName Field = iota
	FieldSummary
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldSummary:
		return "summary"
	case FieldDescription:
		return "description"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// fieldAccessors maps each queryable field onto its accessor. Query dispatch
// goes through this table rather than any name-based construction.
var fieldAccessors = map[Field]func(Package) string{
	FieldName:        func(p Package) string { return p.Name },
	FieldSummary:     func(p Package) string { return p.Summary },
	FieldDescription: func(p Package) string { return p.Description },
}
