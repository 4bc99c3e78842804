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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Arctize/dnfy/dnf"
)

const selectionPrompt = "Select packages to install (e.g. 1 2 3): "

// displayResults prints every ranked result. In reverse mode the list runs
// bottom-up so the strongest match sits right above the prompt; each entry
// keeps its forward 1-based index as its selection number either way.
func displayResults(w io.Writer, ranked []dnf.Package, installed dnf.InstalledSet, reverse bool) {
	resultCount := len(ranked)

	if reverse {
		for i := resultCount - 1; i >= 0; i-- {
			fmt.Fprintln(w, formatEntry(i+1, resultCount, ranked[i], installed))
		}
		return
	}

	for i := 0; i < resultCount; i++ {
		fmt.Fprintln(w, formatEntry(i+1, resultCount, ranked[i], installed))
	}
}

// readSelection reads one line of selection input. EOF before a newline
// still yields whatever was typed.
func readSelection(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// parseSelection parses one line of whitespace-separated 1-based indices
// against a result list of the given size. Tokens that are not numbers or
// fall outside [1, resultCount] are returned separately so the caller can
// report each one; they never abort the rest of the line. The returned
// indices are deduplicated, first occurrence wins.
func parseSelection(line string, resultCount int) (indices []int, invalid []string) {
	for _, token := range strings.Fields(line) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > resultCount {
			invalid = append(invalid, token)
			continue
		}
		indices = append(indices, n)
	}

	return lo.Uniq(indices), invalid
}
