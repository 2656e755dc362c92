package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"payroll-avs-operator/config"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/metrics"
	"payroll-avs-operator/operator"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "Path to the TOML config file",
		Value:   config.DefaultConfigPath,
		EnvVars: []string{"CONFIG_PATH"},
	}
	envFileFlag = &cli.StringFlag{
		Name:  "env-file",
		Usage: "Dotenv file loaded before reading the config",
		Value: config.DefaultEnvFile,
	}
	skipRegisterFlag = &cli.BoolFlag{
		Name:  "skip-register",
		Usage: "Do not register the operator before monitoring tasks",
	}
)

func main() {
	app := &cli.App{
		Name:  "payroll-avs-operator",
		Usage: "Payroll AVS operator and task generator",
		Flags: []cli.Flag{configFlag, envFileFlag},
		Commands: []*cli.Command{
			runCommand(),
			registerCommand(),
			createTasksCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln("Application failed:", err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Register the operator and respond to new tasks",
		Flags:  []cli.Flag{skipRegisterFlag},
		Action: runOperator,
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:   "register",
		Usage:  "Register the operator with EigenLayer and the AVS",
		Action: registerOperator,
	}
}

// setup loads the env file and config, then builds the logger for process.
func setup(c *cli.Context, process logging.ProcessName) (*config.Config, logging.Logger, error) {
	if err := config.LoadEnvFile(c.String(envFileFlag.Name)); err != nil {
		return nil, nil, err
	}
	cfg, err := config.LoadConfig(c.String(configFlag.Name))
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logConfig := logging.NewDefaultConfig(process)
	logConfig.Environment = level
	logConfig.UseColors = level == logging.Development
	logger, err := logging.NewZapLogger(logConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

// syncLogger flushes buffered zap entries before the command returns.
func syncLogger(logger logging.Logger) {
	if z, ok := logger.(*logging.ZapLogger); ok {
		z.Sync()
	}
}

func signalContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
}

func runOperator(c *cli.Context) error {
	cfg, logger, err := setup(c, logging.OperatorProcess)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading config: %s", err), 1)
	}

	defer syncLogger(logger)

	ctx, cancel := signalContext(c)
	defer cancel()

	op, err := operator.NewOperatorFromConfig(ctx, cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating operator: %s", err), 1)
	}
	defer op.Close()

	if cfg.MetricsAddress != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddress, logger); err != nil {
				logger.Error("Metrics server stopped", "err", err)
			}
		}()
	}

	if !c.Bool(skipRegisterFlag.Name) {
		if err := op.RegisterOperator(ctx); err != nil {
			logger.Error("Error registering operator", "err", err)
		}
	}

	if err := op.MonitorNewTasks(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("Error monitoring tasks: %s", err), 1)
	}
	logger.Info("Operator stopped")
	return nil
}

func registerOperator(c *cli.Context) error {
	cfg, logger, err := setup(c, logging.OperatorProcess)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading config: %s", err), 1)
	}

	defer syncLogger(logger)

	ctx, cancel := signalContext(c)
	defer cancel()

	op, err := operator.NewOperatorFromConfig(ctx, cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating operator: %s", err), 1)
	}
	defer op.Close()

	if err := op.RegisterOperator(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("Error registering operator: %s", err), 1)
	}
	return nil
}
