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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/Arctize/dnfy/dnf"
	"github.com/Arctize/dnfy/env"
)

// installPackages is the default install strategy: one privileged
// `dnf install` invocation with the selected specifiers, inheriting the
// terminal so dnf's own confirmation and progress take over from here.
func installPackages(runner CommandRunner, wrapper, dnfCommand string, selected []dnf.Package, goEnv env.GoEnv) error {
	specs := lo.Map(selected, func(p dnf.Package, _ int) string {
		return p.Specifier()
	})

	args := append([]string{dnfCommand, "install"}, specs...)

	goEnv.ExecuteIfModeIsProduction(func() {
		log.Info("Delegating to dnf", "command", wrapper+" "+strings.Join(args, " "))
	})

	runner.Command(wrapper, args...)
	return runner.Run()
}

// upgradeSystem runs a full system upgrade through dnf. Invoked when dnfy is
// called without search terms.
func upgradeSystem(runner CommandRunner, wrapper, dnfCommand string, goEnv env.GoEnv) error {
	goEnv.ExecuteIfModeIsProduction(func() {
		log.Info("Delegating to dnf", "command", wrapper+" "+dnfCommand+" upgrade")
	})

	runner.Command(wrapper, dnfCommand, "upgrade")
	return runner.Run()
}

// ConfirmUI is the single yes/no gate of the direct-transaction strategy.
type ConfirmUI interface {
	Run() error
	Value() bool
}

type installConfirmUI struct {
	value   bool
	confirm *huh.Confirm
}

// newInstallConfirmUI builds the transaction confirmation prompt.
// It defaults to yes, so plain Enter proceeds.
func newInstallConfirmUI() ConfirmUI {
	return &installConfirmUI{
		value: true,
		confirm: huh.NewConfirm().
			Title("Proceed with installation?").
			Affirmative("Yes").
			Negative("No"),
	}
}

func (ui *installConfirmUI) Run() error {
	return ui.confirm.Value(&ui.value).Run()
}

func (ui *installConfirmUI) Value() bool {
	return ui.value
}

// runTransaction is the experimental install strategy: drive dnf step by step
// (resolve, summarize, confirm, download, apply) instead of handing it the
// whole interaction. Needs root; a non-root process re-execs itself under the
// privilege wrapper and leaves the transaction to the elevated child. The
// parent stays alive until the child exits so the wrapper keeps the inherited
// terminal for its password prompt, but it never inspects the child's exit
// status: the child reports its own outcome on that same terminal.
func runTransaction(deps Dependencies, runner CommandRunner, wrapper, dnfCommand string, index PackageIndex, selected []dnf.Package, out io.Writer, goEnv env.GoEnv) error {
	if !deps.RunningAsRoot() {
		exe, err := os.Executable()
		if err != nil {
			return err
		}

		goEnv.ExecuteIfModeIsProduction(func() {
			log.Info("Elevating privileges", "wrapper", wrapper)
		})

		runner.Command(wrapper, append([]string{exe}, os.Args[1:]...)...)
		_ = runner.Run()
		return nil
	}

	tx := deps.NewTransaction(dnfCommand, index, runner)
	for _, pkg := range selected {
		tx.Add(pkg)
	}

	resolved, err := tx.Resolve()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nInstalling %d packages:\n", len(resolved))
	var totalSize uint64
	for _, pkg := range resolved {
		fmt.Fprintf(out, "  %s-%s\n", pkg.Name, pkg.EVR())
		totalSize += pkg.InstallSize
	}
	fmt.Fprintf(out, "Total install size: %s\n", humanSize(totalSize))

	confirm := deps.NewConfirmUI()
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirm.Value() {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if err := tx.Download(); err != nil {
		return err
	}
	return tx.Apply()
}
