package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
	"github.com/bird-chinese-community/bird2-autotype/internal/domain/mocks"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// swapWorkflow installs a mock workflow for the duration of one test.
func swapWorkflow(t *testing.T) *mocks.MockWorkflow {
	t.Helper()

	mw := mocks.NewMockWorkflow(t)

	old := workflow
	workflow = mw

	t.Cleanup(func() { workflow = old })

	return mw
}

// executeCommand resets flag state, runs the root command with args, and
// returns its combined output and error.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	inPlaceFlag = false
	backupFlag = false
	diffFlag = false
	listFlag = false
	parallelFlag = 0
	excludeFlags = nil
	reportsFlag = ""
	runBackupFlag = false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRootCmd_ProcessDefaults(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Process", domain.ProcessArgs{
		EstimateArgs: domain.EstimateArgs{Paths: []m.Path{"bird.conf"}},
	}).Return(nil)

	_, err := executeCommand(t, "bird.conf")
	assert.NoError(t, err)
}

func TestRootCmd_AllFlags(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Process", domain.ProcessArgs{
		EstimateArgs: domain.EstimateArgs{
			Paths:   []m.Path{"/etc/bird"},
			Exclude: []string{"generated", `\.bak$`},
		},
		InPlace: true,
		Backup:  true,
		Diff:    true,
		Threads: 4,
		Reports: "reports",
	}).Return(nil)

	_, err := executeCommand(t, "/etc/bird",
		"-i", "--backup", "--diff",
		"-p", "4",
		"-x", "generated", "-x", `\.bak$`,
		"--report", "reports")
	assert.NoError(t, err)
}

func TestRootCmd_ListFlagEstimates(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Estimate", domain.EstimateArgs{Paths: []m.Path{"bird.conf"}}).Return(nil)

	_, err := executeCommand(t, "-l", "bird.conf")
	assert.NoError(t, err)
	mw.AssertNotCalled(t, "Process", mock.Anything)
}

func TestRootCmd_RequiresAPath(t *testing.T) {
	_, err := executeCommand(t)
	assert.Error(t, err)
}

func TestRootCmd_WorkflowErrorPropagates(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Process", mock.Anything).Return(errors.New("2 file(s) reported problems"))

	_, err := executeCommand(t, "bird.conf")
	assert.EqualError(t, err, "2 file(s) reported problems")
}

func TestRunCmd(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Process", domain.ProcessArgs{
		EstimateArgs: domain.EstimateArgs{Paths: []m.Path{"a.conf", "b.conf"}},
		InPlace:      true,
		Backup:       true,
	}).Return(nil)

	_, err := executeCommand(t, "run", "--backup", "a.conf", "b.conf")
	assert.NoError(t, err)
}

func TestListCmd(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Estimate", domain.EstimateArgs{
		Paths:   []m.Path{"/etc/bird"},
		Exclude: []string{"snippets"},
	}).Return(nil)

	_, err := executeCommand(t, "list", "-x", "snippets", "/etc/bird")
	assert.NoError(t, err)
}

func TestReviewCmd(t *testing.T) {
	mw := swapWorkflow(t)

	mw.On("Review", domain.EstimateArgs{Paths: []m.Path{"bird.conf"}}).Return(nil)

	_, err := executeCommand(t, "review", "bird.conf")
	assert.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "bird2-autotype dev (commit none)")
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"a", "b"}, parsePaths([]string{"a", "b"}))
	assert.Empty(t, parsePaths(nil))
}
