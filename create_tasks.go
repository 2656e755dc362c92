package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"payroll-avs-operator/logging"
	"payroll-avs-operator/taskgen"
)

func createTasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-task",
		Usage: "Submit synthetic payroll tasks to the service manager",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of tasks to create, 0 creates tasks until interrupted",
				Value: 1,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Delay between two tasks",
				Value: 15 * time.Second,
			},
		},
		Action: createTasks,
	}
}

func createTasks(c *cli.Context) error {
	count := c.Int("count")
	if count < 0 {
		return cli.Exit("count must not be negative", 1)
	}

	cfg, logger, err := setup(c, logging.TaskGeneratorProcess)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading config: %s", err), 1)
	}

	defer syncLogger(logger)

	ctx, cancel := signalContext(c)
	defer cancel()

	generator, err := taskgen.NewGeneratorFromConfig(ctx, cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating task generator: %s", err), 1)
	}
	defer generator.Close()

	return generator.Run(ctx, count, c.Duration("interval"))
}
