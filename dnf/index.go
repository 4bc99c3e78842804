package dnf

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// CommandOutputter abstracts capturing the stdout of a subprocess.
// It exists so that index behavior can be tested without a dnf installation.
type CommandOutputter interface {
	Output(name string, args ...string) ([]byte, error)
}

type realCommandOutputter struct{}

func (realCommandOutputter) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

// Record and field separators for repoquery output. Descriptions span
// multiple lines, so records cannot be newline-delimited.
const (
	fieldSeparator  = "\x1f"
	recordSeparator = "\x1e"
)

var queryFormat = strings.Join([]string{
	"%{name}",
	"%{epoch}",
	"%{version}",
	"%{release}",
	"%{arch}",
	"%{reponame}",
	"%{installsize}",
	"%{summary}",
	"%{description}",
}, fieldSeparator) + recordSeparator

// Index is the read-only package index capability, backed by `dnf repoquery`.
// It is constructed once per run and passed down explicitly; the available
// and installed snapshots are each loaded lazily by a single subprocess
// invocation and cached for the process lifetime.
type Index struct {
	dnfCommand string
	outputter  CommandOutputter

	available       []Package
	availableLoaded bool

	installed       InstalledSet
	installedLoaded bool
}

// NewIndex returns an index that shells out to the given dnf binary.
func NewIndex(dnfCommand string) *Index {
	return NewIndexWithOutputter(dnfCommand, realCommandOutputter{})
}

// NewIndexWithOutputter allows injecting the subprocess capture for tests.
func NewIndexWithOutputter(dnfCommand string, outputter CommandOutputter) *Index {
	return &Index{
		dnfCommand: dnfCommand,
		outputter:  outputter,
	}
}

// Query returns every available package whose given field matches term,
// case-insensitively. Terms containing glob metacharacters (`*`, `?`, `[`)
// match the whole field as a glob; anything else matches as a substring.
func (ix *Index) Query(field Field, term string) ([]Package, error) {
	if err := ix.ensureAvailable(); err != nil {
		return nil, err
	}

	accessor, ok := fieldAccessors[field]
	if !ok {
		return nil, fmt.Errorf("unknown query field %v", field)
	}

	matches := matcherFor(term)

	return lo.Filter(ix.available, func(pkg Package, _ int) bool {
		return matches(accessor(pkg))
	}), nil
}

// Latest restricts pkgs to the newest version per package name. Records that
// tie with the newest version (the same package built for several
// architectures, for example) are all retained, in their original order.
func (ix *Index) Latest(pkgs []Package) []Package {
	newest := make(map[string]Package, len(pkgs))
	for _, pkg := range pkgs {
		best, ok := newest[pkg.Name]
		if !ok || CompareEVR(pkg, best) > 0 {
			newest[pkg.Name] = pkg
		}
	}

	return lo.Filter(pkgs, func(pkg Package, _ int) bool {
		return CompareEVR(pkg, newest[pkg.Name]) == 0
	})
}

// Installed returns the snapshot of installed packages keyed by (name, arch).
func (ix *Index) Installed() (InstalledSet, error) {
	if ix.installedLoaded {
		return ix.installed, nil
	}

	output, err := ix.outputter.Output(ix.dnfCommand,
		"repoquery", "-q", "--installed", "--queryformat", queryFormat)
	if err != nil {
		return nil, fmt.Errorf("listing installed packages: %w", err)
	}

	pkgs, err := parsePackages(output)
	if err != nil {
		return nil, err
	}

	ix.installed = make(InstalledSet, len(pkgs))
	for _, pkg := range pkgs {
		ix.installed[pkg.NameArch()] = pkg
	}
	ix.installedLoaded = true

	return ix.installed, nil
}

// ResolveRequires asks dnf which available packages satisfy the dependencies
// of the given specifiers. Already-installed providers are filtered out.
func (ix *Index) ResolveRequires(specs ...string) ([]Package, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	args := append([]string{
		"repoquery", "-q", "--requires", "--resolve", "--queryformat", queryFormat,
	}, specs...)

	output, err := ix.outputter.Output(ix.dnfCommand, args...)
	if err != nil {
		return nil, fmt.Errorf("resolving dependencies: %w", err)
	}

	deps, err := parsePackages(output)
	if err != nil {
		return nil, err
	}

	installed, err := ix.Installed()
	if err != nil {
		return nil, err
	}

	deps = lo.Filter(deps, func(pkg Package, _ int) bool {
		_, ok := installed.Lookup(pkg)
		return !ok
	})

	return lo.UniqBy(deps, Package.Specifier), nil
}

func (ix *Index) ensureAvailable() error {
	if ix.availableLoaded {
		return nil
	}

	output, err := ix.outputter.Output(ix.dnfCommand,
		"repoquery", "-q", "--queryformat", queryFormat)
	if err != nil {
		return fmt.Errorf("loading package index: %w", err)
	}

	pkgs, err := parsePackages(output)
	if err != nil {
		return err
	}

	ix.available = pkgs
	ix.availableLoaded = true
	return nil
}

// matcherFor returns the case-insensitive match predicate for a term:
// a whole-field glob when the term carries glob metacharacters, a substring
// check otherwise.
func matcherFor(term string) func(string) bool {
	lowered := strings.ToLower(term)

	if strings.ContainsAny(term, "*?[") {
		return func(value string) bool {
			matched, err := path.Match(lowered, strings.ToLower(value))
			return err == nil && matched
		}
	}

	return func(value string) bool {
		return strings.Contains(strings.ToLower(value), lowered)
	}
}

func parsePackages(output []byte) ([]Package, error) {
	records := strings.Split(string(output), recordSeparator)

	pkgs := make([]Package, 0, len(records))
	for _, record := range records {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}

		fields := strings.Split(record, fieldSeparator)
		if len(fields) != 9 {
			return nil, fmt.Errorf("malformed repoquery record: expected 9 fields, got %d", len(fields))
		}

		size, err := strconv.ParseUint(fields[6], 10, 64)
		if err != nil {
			// dnf reports sizes as plain integers; treat anything else as zero
			// rather than failing the whole listing.
			size = 0
		}

		epoch := fields[1]
		if epoch == "(none)" {
			epoch = ""
		}

		pkgs = append(pkgs, Package{
			Name:        fields[0],
			Epoch:       epoch,
			Version:     fields[2],
			Release:     fields[3],
			Arch:        fields[4],
			Repo:        fields[5],
			InstallSize: size,
			Summary:     fields[7],
			Description: fields[8],
		})
	}

	return pkgs, nil
}
