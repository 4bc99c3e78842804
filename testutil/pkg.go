// Package testutil provides package-record fixtures for tests.
package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit"

	"github.com/Arctize/dnfy/dnf"
)

// PackageOption mutates a fixture package record.
type PackageOption func(*dnf.Package)

func WithEpoch(epoch string) PackageOption {
	return func(p *dnf.Package) { p.Epoch = epoch }
}

func WithVersion(version string) PackageOption {
	return func(p *dnf.Package) { p.Version = version }
}

func WithRelease(release string) PackageOption {
	return func(p *dnf.Package) { p.Release = release }
}

func WithArch(arch string) PackageOption {
	return func(p *dnf.Package) { p.Arch = arch }
}

func WithRepo(repo string) PackageOption {
	return func(p *dnf.Package) { p.Repo = repo }
}

func WithSummary(summary string) PackageOption {
	return func(p *dnf.Package) { p.Summary = summary }
}

func WithDescription(description string) PackageOption {
	return func(p *dnf.Package) { p.Description = description }
}

func WithInstallSize(size uint64) PackageOption {
	return func(p *dnf.Package) { p.InstallSize = size }
}

// NewPackage builds a plausible Fedora package record for tests. Everything
// not overridden by options gets a fixed default so assertions stay stable.
func NewPackage(name string, opts ...PackageOption) dnf.Package {
	pkg := dnf.Package{
		Name:        name,
		Version:     "1.0.0",
		Release:     "1.fc42",
		Arch:        "x86_64",
		Repo:        "fedora",
		Summary:     name + " summary",
		Description: name + " description",
		InstallSize: 1000000,
	}

	for _, opt := range opts {
		opt(&pkg)
	}

	return pkg
}

// RandomPackages generates n distinct package records with generated
// summaries. Seeded, so output is the same on every run.
func RandomPackages(n int) []dnf.Package {
	gofakeit.Seed(0)

	pkgs := make([]dnf.Package, 0, n)
	for i := 0; i < n; i++ {
		pkgs = append(pkgs, NewPackage(
			fmt.Sprintf("%s%d", gofakeit.Word(), i),
			WithSummary(gofakeit.Sentence(6)),
			WithDescription(gofakeit.Sentence(12)),
			WithInstallSize(uint64(gofakeit.Number(1000, 100000000))),
		))
	}

	return pkgs
}
