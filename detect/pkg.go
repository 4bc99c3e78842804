// Package detect locates the system package manager binary and the
// privilege-elevation wrapper dnfy delegates to.
package detect

import (
	"errors"
	"os"
	"os/exec"
)

// PathLookup interface abstracts the exec.LookPath functionality.
type PathLookup interface {
	LookPath(file string) (string, error)
}

// RealPathLookup is the production implementation of PathLookup.
type RealPathLookup struct{}

// LookPath implements PathLookup using the real exec.LookPath.
func (r RealPathLookup) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

const DNF5 = "dnf5"
const DNF = "dnf"
const YUM = "yum"

// ErrNoPackageManager is returned when no supported rpm package manager
// binary is found in PATH.
var ErrNoPackageManager = errors.New("no supported rpm package manager found")

// ! DNF5 must come first: on systems that ship both, dnf is a symlink shim
// ! and dnf5 is the real thing.
var SupportedPackageManagers = [3]string{DNF5, DNF, YUM}

// PackageManager returns the first supported package manager binary found in PATH.
func PackageManager(pathLookup PathLookup) (string, error) {
	for _, manager := range SupportedPackageManagers {
		if _, err := pathLookup.LookPath(manager); err == nil {
			return manager, nil
		}
	}

	return "", ErrNoPackageManager
}

const SUDO = "sudo"
const DOAS = "doas"
const PKEXEC = "pkexec"

// ErrNoPrivilegeWrapper is returned when no privilege-elevation wrapper
// is found in PATH.
var ErrNoPrivilegeWrapper = errors.New("no privilege elevation command found")

var SupportedPrivilegeWrappers = [3]string{SUDO, DOAS, PKEXEC}

// PrivilegeWrapper returns the first privilege-elevation wrapper found in PATH.
func PrivilegeWrapper(pathLookup PathLookup) (string, error) {
	for _, wrapper := range SupportedPrivilegeWrappers {
		if _, err := pathLookup.LookPath(wrapper); err == nil {
			return wrapper, nil
		}
	}

	return "", ErrNoPrivilegeWrapper
}

// ProcessInfo abstracts process identity queries for testability.
type ProcessInfo interface {
	Geteuid() int
}

// RealProcessInfo is the production implementation of ProcessInfo.
type RealProcessInfo struct{}

func (r RealProcessInfo) Geteuid() int {
	return os.Geteuid()
}

// RunningAsRoot reports whether the process holds root privileges already.
func RunningAsRoot(info ProcessInfo) bool {
	return info.Geteuid() == 0
}
