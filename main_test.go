package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"payroll-avs-operator/logging"
)

func findFlag(t *testing.T, flags []cli.Flag, name string) cli.Flag {
	t.Helper()
	for _, f := range flags {
		for _, n := range f.Names() {
			if n == name {
				return f
			}
		}
	}
	require.Failf(t, "flag not found", "%s", name)
	return nil
}

func TestCommands(t *testing.T) {
	run := runCommand()
	assert.Equal(t, "run", run.Name)
	findFlag(t, run.Flags, "skip-register")

	assert.Equal(t, "register", registerCommand().Name)

	createTask := createTasksCommand()
	assert.Equal(t, "create-task", createTask.Name)
	count := findFlag(t, createTask.Flags, "count").(*cli.IntFlag)
	assert.Equal(t, 1, count.Value)
	interval := findFlag(t, createTask.Flags, "interval").(*cli.DurationFlag)
	assert.Equal(t, 15*time.Second, interval.Value)
}

func TestCreateTasks_RejectsNegativeCount(t *testing.T) {
	app := &cli.App{
		Flags:          []cli.Flag{configFlag, envFileFlag},
		Commands:       []*cli.Command{createTasksCommand()},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run([]string{"payroll-avs-operator", "create-task", "--count", "-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must not be negative")
}

func TestSyncLogger(t *testing.T) {
	logger, err := logging.NewZapLogger(logging.NewDefaultConfig(logging.OperatorProcess))
	require.NoError(t, err)

	assert.NotPanics(t, func() { syncLogger(logger) })
	assert.NotPanics(t, func() { syncLogger(logging.NewNopLogger()) })
}
