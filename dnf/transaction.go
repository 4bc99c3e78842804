package dnf

import (
	"github.com/samber/lo"
)

// Runner runs a subprocess with inherited standard streams. It matches the
// command-runner interface the cmd package wires in, without importing it.
type Runner interface {
	Command(name string, args ...string)
	Run() error
}

// DependencyResolver is the slice of the index capability a transaction
// needs: asking dnf what else the queued specifiers pull in.
type DependencyResolver interface {
	ResolveRequires(specs ...string) ([]Package, error)
}

// Transaction drives an install through dnf in discrete steps instead of a
// single interactive `dnf install` invocation. Dependency resolution, package
// download and the actual rpm transaction still belong to dnf; this type only
// sequences them. Experimental: requires the process to already hold root.
type Transaction interface {
	Add(pkg Package)
	Resolve() ([]Package, error)
	Download() error
	Apply() error
}

type cliTransaction struct {
	dnfCommand string
	resolver   DependencyResolver
	runner     Runner
	pkgs       []Package
}

// NewTransaction returns a transaction executing through the given dnf binary.
func NewTransaction(dnfCommand string, resolver DependencyResolver, runner Runner) Transaction {
	return &cliTransaction{
		dnfCommand: dnfCommand,
		resolver:   resolver,
		runner:     runner,
	}
}

// Add queues a package for installation. Adding the same package twice is a
// no-op.
func (t *cliTransaction) Add(pkg Package) {
	duplicate := lo.ContainsBy(t.pkgs, func(p Package) bool {
		return p.Specifier() == pkg.Specifier()
	})
	if duplicate {
		return
	}
	t.pkgs = append(t.pkgs, pkg)
}

// Resolve returns the queued packages plus the not-yet-installed packages dnf
// reports as satisfying their dependencies.
func (t *cliTransaction) Resolve() ([]Package, error) {
	deps, err := t.resolver.ResolveRequires(t.specs()...)
	if err != nil {
		return nil, err
	}

	return lo.UniqBy(append(append([]Package{}, t.pkgs...), deps...), Package.Specifier), nil
}

// Download fetches the queued packages into dnf's cache without installing.
func (t *cliTransaction) Download() error {
	args := append([]string{"install", "--downloadonly", "--assumeyes"}, t.specs()...)
	t.runner.Command(t.dnfCommand, args...)
	return t.runner.Run()
}

// Apply installs the queued packages from the cache populated by Download.
func (t *cliTransaction) Apply() error {
	args := append([]string{"install", "--cacheonly", "--assumeyes"}, t.specs()...)
	t.runner.Command(t.dnfCommand, args...)
	return t.runner.Run()
}

func (t *cliTransaction) specs() []string {
	return lo.Map(t.pkgs, func(p Package, _ int) string {
		return p.Specifier()
	})
}
