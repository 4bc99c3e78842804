package dnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageSpecifier(t *testing.T) {
	pkg := Package{
		Name:    "git",
		Version: "2.45.1",
		Release: "1.fc40",
		Arch:    "x86_64",
	}

	assert.Equal(t, "git-2.45.1-1.fc40.x86_64", pkg.Specifier())
}

func TestPackageEVR(t *testing.T) {
	tests := []struct {
		name     string
		pkg      Package
		expected string
	}{
		{
			name:     "no epoch",
			pkg:      Package{Version: "2.45.1", Release: "1.fc40"},
			expected: "2.45.1-1.fc40",
		},
		{
			name:     "zero epoch is omitted",
			pkg:      Package{Epoch: "0", Version: "2.45.1", Release: "1.fc40"},
			expected: "2.45.1-1.fc40",
		},
		{
			name:     "nonzero epoch is shown",
			pkg:      Package{Epoch: "1", Version: "9.0", Release: "3.fc40"},
			expected: "1:9.0-3.fc40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pkg.EVR())
		})
	}
}

func TestInstalledSetLookup(t *testing.T) {
	installed := InstalledSet{
		NameArch{Name: "git", Arch: "x86_64"}: {Name: "git", Version: "2.44.0", Release: "1.fc40", Arch: "x86_64"},
	}

	t.Run("same name and arch", func(t *testing.T) {
		prev, ok := installed.Lookup(Package{Name: "git", Version: "2.45.1", Release: "1.fc40", Arch: "x86_64"})
		assert.True(t, ok)
		assert.Equal(t, "2.44.0", prev.Version)
	})

	t.Run("same name, different arch", func(t *testing.T) {
		_, ok := installed.Lookup(Package{Name: "git", Arch: "i686"})
		assert.False(t, ok)
	})

	t.Run("different name", func(t *testing.T) {
		_, ok := installed.Lookup(Package{Name: "gitk", Arch: "x86_64"})
		assert.False(t, ok)
	})
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "name", FieldName.String())
	assert.Equal(t, "summary", FieldSummary.String())
	assert.Equal(t, "description", FieldDescription.String())
}
