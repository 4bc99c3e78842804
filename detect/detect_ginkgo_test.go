package detect_test

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Arctize/dnfy/detect"
	"github.com/Arctize/dnfy/mock"
)

var _ = Describe("PackageManager", func() {

	var pathLookup *mock.MockPathLookup

	BeforeEach(func() {
		pathLookup = mock.NewMockPathLookup()
	})

	makeAvailable := func(names ...string) {
		for _, name := range names {
			pathLookup.ExpectedLookPathResults[name] = struct {
				Path  string
				Error error
			}{Path: "/usr/bin/" + name}
		}
	}

	It("returns an error when nothing is installed", func() {
		_, err := detect.PackageManager(pathLookup)
		assert.ErrorIs(GinkgoT(), err, detect.ErrNoPackageManager)
	})

	DescribeTable("picks the highest-priority binary available",
		func(available []string, expected string) {
			makeAvailable(available...)

			manager, err := detect.PackageManager(pathLookup)
			assert.NoError(GinkgoT(), err)
			assert.Equal(GinkgoT(), expected, manager)
		},
		Entry("only yum", []string{detect.YUM}, detect.YUM),
		Entry("dnf beats yum", []string{detect.YUM, detect.DNF}, detect.DNF),
		Entry("dnf5 beats dnf", []string{detect.DNF, detect.DNF5}, detect.DNF5),
		Entry("dnf5 beats everything", []string{detect.YUM, detect.DNF, detect.DNF5}, detect.DNF5),
	)
})

var _ = Describe("PrivilegeWrapper", func() {

	var pathLookup *mock.MockPathLookup

	BeforeEach(func() {
		pathLookup = mock.NewMockPathLookup()
	})

	makeAvailable := func(names ...string) {
		for _, name := range names {
			pathLookup.ExpectedLookPathResults[name] = struct {
				Path  string
				Error error
			}{Path: "/usr/bin/" + name}
		}
	}

	It("returns an error when no wrapper is installed", func() {
		_, err := detect.PrivilegeWrapper(pathLookup)
		assert.ErrorIs(GinkgoT(), err, detect.ErrNoPrivilegeWrapper)
	})

	DescribeTable("picks the highest-priority wrapper available",
		func(available []string, expected string) {
			makeAvailable(available...)

			wrapper, err := detect.PrivilegeWrapper(pathLookup)
			assert.NoError(GinkgoT(), err)
			assert.Equal(GinkgoT(), expected, wrapper)
		},
		Entry("only pkexec", []string{detect.PKEXEC}, detect.PKEXEC),
		Entry("doas beats pkexec", []string{detect.PKEXEC, detect.DOAS}, detect.DOAS),
		Entry("sudo beats doas", []string{detect.DOAS, detect.SUDO}, detect.SUDO),
	)
})

var _ = Describe("RunningAsRoot", func() {

	It("is true for euid zero", func() {
		assert.True(GinkgoT(), detect.RunningAsRoot(mock.MockProcessInfo{EUID: 0}))
	})

	It("is false for a regular user", func() {
		assert.False(GinkgoT(), detect.RunningAsRoot(mock.MockProcessInfo{EUID: 1000}))
	})
})
