// Package main provides the CLI entry point for calchistory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/calchistory/pkg/adapters/logger"
	"github.com/user/calchistory/pkg/adapters/osfilesystem"
	"github.com/user/calchistory/pkg/calculation"
	"github.com/user/calchistory/pkg/config"
	"github.com/user/calchistory/pkg/filestore"
	"github.com/user/calchistory/pkg/history"
	"github.com/user/calchistory/pkg/ports"
	"github.com/user/calchistory/pkg/report"
)

// CLI defines the command-line interface with subcommands.
// Pointer flags stay nil unless given, so they only override the config
// file when set.
type CLI struct {
	// Global options
	Config   string  `short:"c" help:"${help_config}"`
	File     *string `short:"f" env:"CALCHISTORY_FILE" help:"${help_file}"`
	Format   *string `help:"${help_format}"`
	LogLevel *string `short:"l" help:"${help_log_level}"`
	Quiet    bool    `short:"Q" help:"${help_quiet}"`

	List    ListCmd    `cmd:"" help:"${help_list}"`
	Add     AddCmd     `cmd:"" help:"${help_add}"`
	Undo    UndoCmd    `cmd:"" help:"${help_undo}"`
	Clear   ClearCmd   `cmd:"" help:"${help_clear}"`
	Version VersionCmd `cmd:"" help:"${help_version}"`
}

// ListCmd prints the stored calculations.
type ListCmd struct{}

// AddCmd performs a calculation and stores it.
type AddCmd struct {
	A         string `arg:"" name:"a" help:"First operand."`
	Operation string `arg:"" name:"operation" help:"add, subtract, multiply, divide or + - * x /."`
	B         string `arg:"" name:"b" help:"Second operand."`
}

// UndoCmd removes the most recent calculation.
type UndoCmd struct{}

// ClearCmd deletes the history file.
type ClearCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newParser builds the kong parser for cli. Help texts are localized.
func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("calchistory"),
		kong.Description(l10n.T("Keep a calculator history in a CSV file")),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"help_config":    l10n.T("YAML configuration file"),
			"help_file":      l10n.T("History CSV file"),
			"help_format":    l10n.T("Listing format (text, markdown)"),
			"help_log_level": l10n.T("Log level (debug, info, warn, error)"),
			"help_quiet":     l10n.T("Suppress all log output"),
			"help_list":      l10n.T("Show the stored calculations"),
			"help_add":       l10n.T("Perform a calculation and store it"),
			"help_undo":      l10n.T("Remove the most recent calculation"),
			"help_clear":     l10n.T("Delete the history file"),
			"help_version":   l10n.T("Show version information"),
		},
	}, options...)
	return kong.New(cli, options...)
}

// env holds what every command needs, built from config and flags.
type env struct {
	cfg     config.Config
	history *history.Service
}

func (cli *CLI) setup(stderr io.Writer) (*env, error) {
	cfg := config.Defaults()
	if cli.Config != "" {
		loaded, err := config.LoadFromFile(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cli.File != nil {
		cfg.File = *cli.File
	}
	if cli.Format != nil {
		cfg.Format = *cli.Format
	}
	if cli.LogLevel != nil {
		cfg.LogLevel = *cli.LogLevel
	}
	if cli.Quiet {
		cfg.Quiet = true
	}

	var log ports.Logger
	switch {
	case cfg.Quiet:
		log = logger.NewNoop()
	case stderr == io.Writer(os.Stderr):
		log = logger.NewConsole(cfg.Level())
	default:
		// stdout carries listings, so every log line goes to stderr.
		log = logger.NewWriter(cfg.Level(), stderr, stderr)
	}

	store := filestore.New[calculation.Calculation](osfilesystem.New(), log, calculation.Codec{})
	return &env{
		cfg:     cfg,
		history: history.New(store, cfg.File, log),
	}, nil
}

// Run executes the list command.
func (cmd *ListCmd) Run(cli *CLI, kctx *kong.Context) error {
	e, err := cli.setup(kctx.Stderr)
	if err != nil {
		return err
	}

	formatter, err := report.ForName(e.cfg.Format)
	if err != nil {
		return err
	}

	calcs, err := e.history.List()
	if err != nil {
		return err
	}
	return report.NewWriter(formatter, kctx.Stdout).Write(calcs)
}

// Run executes the add command.
func (cmd *AddCmd) Run(cli *CLI, kctx *kong.Context) error {
	a, err := calculation.ParseNumber(cmd.A)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	op, err := calculation.ParseOperation(cmd.Operation)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	b, err := calculation.ParseNumber(cmd.B)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	e, err := cli.setup(kctx.Stderr)
	if err != nil {
		return err
	}

	calc, err := e.history.Add(a, b, op)
	if err != nil {
		return err
	}
	fmt.Fprintln(kctx.Stdout, calc)
	return nil
}

// Run executes the undo command.
func (cmd *UndoCmd) Run(cli *CLI, kctx *kong.Context) error {
	e, err := cli.setup(kctx.Stderr)
	if err != nil {
		return err
	}

	last, ok, err := e.history.Undo()
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(kctx.Stdout, l10n.F("Undid %s", last))
	}
	return nil
}

// Run executes the clear command.
func (cmd *ClearCmd) Run(cli *CLI, kctx *kong.Context) error {
	e, err := cli.setup(kctx.Stderr)
	if err != nil {
		return err
	}

	e.history.Clear()
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run(kctx *kong.Context) error {
	fmt.Fprintln(kctx.Stdout, l10n.F("calchistory version %s", version))
	return nil
}
