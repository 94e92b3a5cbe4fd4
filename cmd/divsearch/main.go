// Command divsearch finds divider/multiplier pairs for a clock generator
// with output FRef × n / r.
//
//	divsearch best 1.21477e9 1.654321e9
//	divsearch near --min-solutions=20 1.54215e9
//	divsearch samples
//	divsearch count --r-max=100
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the command tree.
type CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"DIVSEARCH_LOG_LEVEL" help:"Log level (${enum})."`
	NoColor  bool   `name:"no-color" env:"NO_COLOR" help:"Disable colored log output."`

	Best    bestCmd    `cmd:"" help:"Best single (r, n) pair for each target."`
	Near    nearCmd    `cmd:"" help:"All realizable frequencies near each target."`
	Samples samplesCmd `cmd:"" help:"Run the built-in sample targets."`
	Count   countCmd   `cmd:"" help:"Count coprime (r, n) pairs in the K band."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "divsearch: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command. The report goes to
// stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("divsearch"),
		kong.Description("Search divider/multiplier pairs for a 40 MHz reference clock."),
		kong.Writers(stdout, stderr),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Tree: true,
		}),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	log, err := cli.logger(stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	return kctx.Run(log)
}

func (cli *CLI) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
			NoColor:    cli.NoColor,
		}),
	), nil
}
