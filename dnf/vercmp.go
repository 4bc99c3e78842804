package dnf

import (
	"strconv"

	"github.com/sassoftware/go-rpmutils"
)

// CompareEVR orders two package records by epoch, then version, then release,
// using rpm's segment comparison rules for the version and release parts.
// It returns a negative value if a is older than b, zero if they are the
// same version, and a positive value if a is newer.
func CompareEVR(a, b Package) int {
	if c := compareEpoch(a.Epoch, b.Epoch); c != 0 {
		return c
	}
	if c := rpmutils.Vercmp(a.Version, b.Version); c != 0 {
		return c
	}
	return rpmutils.Vercmp(a.Release, b.Release)
}

// compareEpoch compares epochs numerically. Missing or unparsable epochs
// count as zero, which is what rpm assumes for packages built without one.
func compareEpoch(a, b string) int {
	ae := parseEpoch(a)
	be := parseEpoch(b)
	switch {
	case ae < be:
		return -1
	case ae > be:
		return 1
	}
	return 0
}

func parseEpoch(epoch string) int {
	if epoch == "" {
		return 0
	}
	n, err := strconv.Atoi(epoch)
	if err != nil {
		return 0
	}
	return n
}
