// Package mock provides mock implementations for testing dnfy.
package mock

import (
	"fmt"
	"os"
	"strings"
)

// MockPathLookup is a mock implementation of detect.PathLookup for testing.
type MockPathLookup struct {
	ExpectedLookPathResults map[string]struct {
		Path  string
		Error error
	}
}

func NewMockPathLookup() *MockPathLookup {
	return &MockPathLookup{
		ExpectedLookPathResults: make(map[string]struct {
			Path  string
			Error error
		}),
	}
}

// LookPath returns the configured result for file, or os.ErrNotExist when no
// expectation was registered.
func (m *MockPathLookup) LookPath(file string) (string, error) {
	if result, ok := m.ExpectedLookPathResults[file]; ok {
		return result.Path, result.Error
	}
	return "", os.ErrNotExist
}

// MockProcessInfo is a mock implementation of detect.ProcessInfo.
type MockProcessInfo struct {
	EUID int
}

func (m MockProcessInfo) Geteuid() int {
	return m.EUID
}

// CommandCall represents a single command call with its name and arguments.
type CommandCall struct {
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell command line.
func (c CommandCall) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RecordingCommandRunner implements the cmd.CommandRunner and dnf.Runner
// interfaces for testing purposes. It records every command instead of
// executing it, and can be told to fail specific command lines.
type RecordingCommandRunner struct {
	// CommandCalls stores all the commands that have been set up.
	CommandCalls []CommandCall
	// RunCalls counts how many times Run was invoked.
	RunCalls int
	// FailOn maps rendered command lines (CommandCall.String) that Run
	// should fail for.
	FailOn map[string]error

	current CommandCall
}

func NewRecordingCommandRunner() *RecordingCommandRunner {
	return &RecordingCommandRunner{
		FailOn: make(map[string]error),
	}
}

// Command records the command that would be executed.
func (m *RecordingCommandRunner) Command(name string, args ...string) {
	m.current = CommandCall{Name: name, Args: args}
	m.CommandCalls = append(m.CommandCalls, m.current)
}

// Run reports the configured failure for the current command, if any.
func (m *RecordingCommandRunner) Run() error {
	m.RunCalls++
	if err, ok := m.FailOn[m.current.String()]; ok {
		return err
	}
	return nil
}

// MockCommandOutputter implements dnf.CommandOutputter for testing. Outputs
// are keyed by the rendered command line; unexpected invocations fail loudly.
type MockCommandOutputter struct {
	// Outputs maps rendered command lines to the bytes Output returns.
	Outputs map[string][]byte
	// Calls records every rendered command line in invocation order.
	Calls []string
}

func NewMockCommandOutputter() *MockCommandOutputter {
	return &MockCommandOutputter{
		Outputs: make(map[string][]byte),
	}
}

func (m *MockCommandOutputter) Output(name string, args ...string) ([]byte, error) {
	line := CommandCall{Name: name, Args: args}.String()
	m.Calls = append(m.Calls, line)

	output, ok := m.Outputs[line]
	if !ok {
		return nil, fmt.Errorf("unexpected command: %s", line)
	}
	return output, nil
}
