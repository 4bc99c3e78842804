/*
Copyright © 2025 Arctize

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Arctize/dnfy/dnf"
)

var sizeUnits = [...]string{"B", "kiB", "MB", "GB", "TB"}

// humanSize renders a byte count with SI scaling: divide by 1000 until the
// value drops below 1000 or the unit list runs out, then print two decimals.
// Zero is special-cased to "0 B".
func humanSize(bytes uint64) string {
	if bytes == 0 {
		return "0 B"
	}

	value := float64(bytes)
	i := 0
	for value >= 1000 && i < len(sizeUnits)-1 {
		value /= 1000
		i++
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[i])
}

var (
	repoFedoraStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	repoUpdatesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	repoRPMFusionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	repoDefaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	packageNameStyle   = lipgloss.NewStyle().Bold(true)
	installedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	installedOldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	summaryStyle       = lipgloss.NewStyle().Faint(true)
)

func repoStyle(repo string) lipgloss.Style {
	switch {
	case repo == "fedora":
		return repoFedoraStyle
	case repo == "updates":
		return repoUpdatesStyle
	case strings.HasPrefix(repo, "rpmfusion"):
		return repoRPMFusionStyle
	}
	return repoDefaultStyle
}

// indexWidth is the digit count of the result total; every selection index is
// right-aligned to it.
func indexWidth(resultCount int) int {
	return len(strconv.Itoa(resultCount))
}

// formatEntry renders one result as its display line plus an indented
// summary line. The index is the entry's forward 1-based selection number,
// independent of display order.
func formatEntry(index, resultCount int, pkg dnf.Package, installed dnf.InstalledSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%*d  %s  %s  %s-%s.%s  [%s]",
		indexWidth(resultCount), index,
		repoStyle(pkg.Repo).Render(pkg.Repo),
		packageNameStyle.Render(pkg.Name),
		pkg.Version, pkg.Release, pkg.Arch,
		humanSize(pkg.InstallSize),
	)

	if prev, ok := installed.Lookup(pkg); ok {
		if dnf.CompareEVR(prev, pkg) == 0 {
			b.WriteString("  " + installedStyle.Render("Installed"))
		} else {
			b.WriteString("  " + installedOldStyle.Render("Installed: "+prev.EVR()))
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", indexWidth(resultCount)+2))
	b.WriteString(summaryStyle.Render(pkg.Summary))

	return b.String()
}
