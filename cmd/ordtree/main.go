package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.App{
		Name:      "ordtree",
		Usage:     "exercise an unbalanced ordered tree from the command line",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: debug, info, warn, error)",
			Value:   "warn",
			EnvVars: []string{"ORDTREE_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "kind",
			Usage:   "type of the values: int or word",
			Value:   "int",
			EnvVars: []string{"ORDTREE_KIND"},
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdRun,
		cmdShape,
	}
	return &app
}

func configLogger(cctx *cli.Context) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
}
