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

// Package cmd provides the command-line interface of dnfy: search, ranked
// display, numbered selection and delegated installation.
package cmd

import (
	// standard library
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	// external
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/Arctize/dnfy/build_info"
	"github.com/Arctize/dnfy/custom_errors"
	"github.com/Arctize/dnfy/custom_flags"
	"github.com/Arctize/dnfy/detect"
	"github.com/Arctize/dnfy/dnf"
	"github.com/Arctize/dnfy/env"
	"github.com/Arctize/dnfy/internal/config"
	"github.com/Arctize/dnfy/search"
)

const (
	ALL_VERSIONS_FLAG = "all-versions"
	NO_REVERSE_FLAG   = "no-reverse"
	NO_SUMMARIES_FLAG = "no-summaries"
	DESCRIPTIONS_FLAG = "descriptions"
	TRANSACTION_FLAG  = "transaction"
	SUDO_COMMAND_FLAG = "sudo-command"
	DNF_COMMAND_FLAG  = "dnf-command"
	_DEBUG_FLAG       = "debug"
)

// CommandRunner Interface and its implementation
// This interface allows for mocking command execution in tests.
// **Remember:** always use `Command()` before using `Run()`.
type CommandRunner interface {
	Command(string, ...string)
	Run() error
}

type _ExecCommandFunc func(string, ...string) *exec.Cmd

type commandRunner struct {
	execCommandFunc _ExecCommandFunc
	cmd             *exec.Cmd
}

func newCommandRunner(execCommandFunc _ExecCommandFunc) CommandRunner {
	return &commandRunner{
		execCommandFunc: execCommandFunc,
	}
}

func (e *commandRunner) Command(name string, args ...string) {
	e.cmd = e.execCommandFunc(name, args...)
	e.cmd.Stdin = os.Stdin   // dnf and the privilege wrapper prompt interactively
	e.cmd.Stdout = os.Stdout // progress goes straight to the terminal
	e.cmd.Stderr = os.Stderr
}

func (e *commandRunner) Run() error {
	if e.cmd == nil {
		return fmt.Errorf("no command set to run")
	}
	return e.cmd.Run()
}

// PackageIndex is the full index capability the CLI consumes: ranking
// queries, the installed snapshot, and dependency resolution for the
// experimental transaction path. dnf.Index implements it.
type PackageIndex interface {
	Query(field dnf.Field, term string) ([]dnf.Package, error)
	Latest(pkgs []dnf.Package) []dnf.Package
	Installed() (dnf.InstalledSet, error)
	ResolveRequires(specs ...string) ([]dnf.Package, error)
}

// Dependencies holds the external dependencies for testing and real execution.
type Dependencies struct {
	CommandRunnerGetter    func() CommandRunner
	NewIndex               func(dnfCommand string) PackageIndex
	DetectPackageManager   func() (string, error)
	DetectPrivilegeWrapper func() (string, error)
	RunningAsRoot          func() bool
	NewConfirmUI           func() ConfirmUI
	NewTransaction         func(dnfCommand string, resolver dnf.DependencyResolver, runner CommandRunner) dnf.Transaction
	LoadConfig             func() (config.Config, error)
	SelectionInput         io.Reader
	Output                 io.Writer
}

// NewRootCmd creates the root command with injectable dependencies.
func NewRootCmd(deps Dependencies) *cobra.Command {
	sudoCommandFlag := custom_flags.NewExecutableFlag(SUDO_COMMAND_FLAG)
	dnfCommandFlag := custom_flags.NewExecutableFlag(DNF_COMMAND_FLAG)

	var goEnv env.GoEnv
	var cfg config.Config

	cmd := &cobra.Command{
		Use:     "dnfy [search terms...]",
		Version: build_info.CLI_VERSION.String(),
		Short:   "Interactive package search and install for DNF",
		Long: `dnfy - an interactive front-end for DNF.

Searches the package index for every given term, ranks the matches by how
many fields they hit, displays them as a numbered list and installs your
selection through dnf. Without search terms it runs a full system upgrade
instead.

Examples:
  dnfy git                # search, pick, install
  dnfy web server -d      # all terms must match; also search descriptions
  dnfy 'python3-*' -a     # glob match, show every version
  dnfy                    # full system upgrade`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,

		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			// Load .env file
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Error(err.Error())
			}

			var err error
			goEnv, err = env.NewGoEnv()
			if err != nil {
				return err
			}

			debug, err := c.Flags().GetBool(_DEBUG_FLAG)
			if err != nil {
				return err
			}

			if debug || goEnv.IsDebugMode() {
				log.SetLevel(log.DebugLevel)
			}

			cfg, err = deps.LoadConfig()
			if err != nil {
				return err
			}

			return nil
		},

		RunE: func(c *cobra.Command, args []string) error {
			flags := c.Flags()

			allVersions, err := flags.GetBool(ALL_VERSIONS_FLAG)
			if err != nil {
				return err
			}
			noReverse, err := flags.GetBool(NO_REVERSE_FLAG)
			if err != nil {
				return err
			}
			noSummaries, err := flags.GetBool(NO_SUMMARIES_FLAG)
			if err != nil {
				return err
			}
			descriptions, err := flags.GetBool(DESCRIPTIONS_FLAG)
			if err != nil {
				return err
			}
			transaction, err := flags.GetBool(TRANSACTION_FLAG)
			if err != nil {
				return err
			}

			runner := deps.CommandRunnerGetter()
			out := deps.Output

			dnfCommand := firstNonEmpty(dnfCommandFlag.String(), cfg.DNFCommand)
			if dnfCommand == "" {
				dnfCommand, err = deps.DetectPackageManager()
				if err != nil {
					return err
				}
			}
			log.Debug("Using package manager", "command", dnfCommand)

			wrapper := firstNonEmpty(sudoCommandFlag.String(), cfg.SudoCommand)
			if wrapper == "" {
				wrapper, err = deps.DetectPrivilegeWrapper()
				if err != nil {
					return err
				}
			}
			log.Debug("Using privilege wrapper", "command", wrapper)

			if len(args) == 0 {
				return upgradeSystem(runner, wrapper, dnfCommand, goEnv)
			}

			index := deps.NewIndex(dnfCommand)

			fields := search.Fields{
				Summary:     cfg.MatchSummariesEnabled() && !noSummaries,
				Description: descriptions,
			}

			ranked, err := search.Rank(index, args, fields, !allVersions)
			if err != nil {
				return err
			}

			if len(ranked) == 0 {
				fmt.Fprintln(out, "No packages found.")
				return nil
			}

			installed, err := index.Installed()
			if err != nil {
				return err
			}

			reverse := cfg.ReverseDisplayEnabled() && !noReverse
			displayResults(out, ranked, installed, reverse)

			fmt.Fprint(out, selectionPrompt)
			line, err := readSelection(deps.SelectionInput)
			if err != nil {
				return err
			}

			indices, invalid := parseSelection(line, len(ranked))
			for _, token := range invalid {
				log.Warn(custom_errors.CreateInvalidSelectionError(token, len(ranked)).Error())
			}

			if len(indices) == 0 {
				fmt.Fprintln(out, "No packages selected.")
				return nil
			}

			selected := lo.Map(indices, func(i int, _ int) dnf.Package {
				return ranked[i-1]
			})

			if transaction {
				return runTransaction(deps, runner, wrapper, dnfCommand, index, selected, out, goEnv)
			}

			return installPackages(runner, wrapper, dnfCommand, selected, goEnv)
		},
	}

	cmd.Flags().BoolP(ALL_VERSIONS_FLAG, "a", false, "Show all versions of matching packages, not just the latest")
	cmd.Flags().Bool(NO_REVERSE_FLAG, false, "Display results top-down instead of best-match-last")
	cmd.Flags().Bool(NO_SUMMARIES_FLAG, false, "Do not match search terms against package summaries")
	cmd.Flags().BoolP(DESCRIPTIONS_FLAG, "d", false, "Also match search terms against package descriptions")
	cmd.Flags().BoolP(TRANSACTION_FLAG, "t", false, "Experimental: drive the install transaction directly instead of delegating to 'dnf install'")
	cmd.Flags().Var(sudoCommandFlag, SUDO_COMMAND_FLAG, "Privilege elevation command to use (default: first of sudo, doas, pkexec found)")
	cmd.Flags().Var(dnfCommandFlag, DNF_COMMAND_FLAG, "Package manager command to use (default: first of dnf5, dnf, yum found)")
	cmd.PersistentFlags().Bool(_DEBUG_FLAG, false, "Enable debug logging")

	return cmd
}

func firstNonEmpty(values ...string) string {
	value, _ := lo.Find(values, func(v string) bool {
		return v != ""
	})
	return value
}

// Global variable for the root command, initialized in init()
var rootCmd *cobra.Command

func init() {
	// Initialize the global rootCmd with real implementations of its dependencies
	rootCmd = NewRootCmd(Dependencies{
		CommandRunnerGetter: func() CommandRunner {
			return newCommandRunner(exec.Command)
		},
		NewIndex: func(dnfCommand string) PackageIndex {
			return dnf.NewIndex(dnfCommand)
		},
		DetectPackageManager: func() (string, error) {
			return detect.PackageManager(detect.RealPathLookup{})
		},
		DetectPrivilegeWrapper: func() (string, error) {
			return detect.PrivilegeWrapper(detect.RealPathLookup{})
		},
		RunningAsRoot: func() bool {
			return detect.RunningAsRoot(detect.RealProcessInfo{})
		},
		NewConfirmUI: newInstallConfirmUI,
		NewTransaction: func(dnfCommand string, resolver dnf.DependencyResolver, runner CommandRunner) dnf.Transaction {
			return dnf.NewTransaction(dnfCommand, resolver, runner)
		},
		LoadConfig: func() (config.Config, error) {
			path, err := config.DefaultPath()
			if err != nil {
				// No config dir means no config file; not an error.
				return config.Config{}, nil
			}
			return config.Load(path)
		},
		SelectionInput: os.Stdin,
		Output:         os.Stdout,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// An interrupt at any blocking point (selection prompt, subprocess wait)
	// must terminate promptly with a clean newline. Nothing persistent is
	// mutated by dnfy itself, so there is no cleanup to run.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
