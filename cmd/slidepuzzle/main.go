// Command slidepuzzle plays the sliding tile puzzle in a terminal.
//
// The default command starts a game from a preset. Subcommands list the
// available presets and print the version. Flags can also be set through
// SLIDEPUZZLE_* environment variables, optionally loaded from a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/slidepuzzle/game/config"
	"github.com/wricardo/slidepuzzle/game/service"
	"github.com/wricardo/slidepuzzle/game/session"
	"github.com/wricardo/slidepuzzle/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Sliding Puzzle"
)

// app holds state shared by the commands
type app struct {
	log     *logrus.Logger
	logFile *os.File
}

func main() {
	log := newLogger(os.Stderr)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{log: log}
	if err := a.command().Run(ctx, os.Args); err != nil {
		log.WithError(err).Error("slidepuzzle failed")
		stop()
		os.Exit(1)
	}
}

func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

// command builds the CLI. Flags are shared by every subcommand.
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    "slidepuzzle",
		Usage:   "slide the tiles back into order",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing puzzle presets",
				Sources: cli.EnvVars("SLIDEPUZZLE_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "preset to play (default: classic)",
				Sources: cli.EnvVars("SLIDEPUZZLE_PRESET"),
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "board width and height, overrides the preset",
			},
			&cli.IntFlag{
				Name:  "shuffle",
				Usage: "number of random moves used to shuffle, overrides the preset",
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "shuffle seed for a reproducible board (0 picks one)",
				Sources: cli.EnvVars("SLIDEPUZZLE_SEED"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("SLIDEPUZZLE_DEBUG"),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs to this file instead of stderr",
			},
		},
		Before: a.setupLogging,
		After:  a.closeLog,
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game (default)",
				Action: a.play,
			},
			{
				Name:   "configs",
				Usage:  "list available presets",
				Action: a.listConfigs,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, Version)
					return err
				},
			},
		},
	}
}

func (a *app) setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return ctx, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		a.log.SetOutput(f)
		a.log.SetLevel(logrus.InfoLevel)
	}
	if cmd.Bool("debug") {
		a.log.SetLevel(logrus.DebugLevel)
	}
	return ctx, nil
}

func (a *app) closeLog(ctx context.Context, cmd *cli.Command) error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) newService(cmd *cli.Command) (service.GameService, error) {
	configs, err := config.NewManager(cmd.String("config-dir"), config.WithLogger(a.log))
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return service.NewGameService(session.NewManager(), configs, a.log), nil
}

func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.newService(cmd)
	if err != nil {
		return err
	}

	opts := service.CreateOptions{
		Size: cmd.Int("size"),
		Seed: cmd.Int64("seed"),
	}
	if cmd.IsSet("shuffle") {
		shuffle := cmd.Int("shuffle")
		opts.ShuffleMoves = &shuffle
	}

	info, err := svc.CreateSession(ctx, cmd.String("preset"), opts)
	if err != nil {
		return err
	}

	root := cmd.Root()
	keys, err := console.NewKeyReader(root.Reader)
	if err != nil {
		return fmt.Errorf("failed to prepare terminal: %w", err)
	}
	defer keys.Close()

	renderer := console.NewRenderer(root.Writer, console.WithRawTerminal(keys.Raw()))
	result, err := console.NewPlayer(svc, keys, renderer, a.log).Play(ctx, info.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	a.log.WithFields(logrus.Fields{
		"session": info.ID,
		"preset":  info.ConfigName,
		"solved":  result.Solved,
		"quit":    result.Quit,
		"moves":   result.Moves,
	}).Info("game finished")
	return nil
}

func (a *app) listConfigs(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.newService(cmd)
	if err != nil {
		return err
	}

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tSHUFFLE\tNAME\tDESCRIPTION")
	for _, c := range configs {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%s\n", c.ConfigID, c.Size, c.Size, c.ShuffleMoves, c.Name, c.Description)
	}
	return w.Flush()
}
