package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrelsec/cybuddy/ai"
	"github.com/kestrelsec/cybuddy/cli"
	"github.com/kestrelsec/cybuddy/config"
	"github.com/kestrelsec/cybuddy/dispatch"
	"github.com/kestrelsec/cybuddy/history"
	"github.com/kestrelsec/cybuddy/knowledge"
	"github.com/kestrelsec/cybuddy/logging"
	"github.com/kestrelsec/cybuddy/session"
	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/todo"
	"github.com/kestrelsec/cybuddy/transcript"
)

var (
	flagCLI bool
	flagTUI bool
)

var rootCmd = &cobra.Command{
	Use:   "cybuddy",
	Short: "Interactive cybersecurity study assistant",
	Long: `cybuddy answers questions about security tools and techniques,
quizzes you, and suggests study plans. Run without arguments for the
interactive session, or use a subcommand for one-shot lookups.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		os.Exit(runInteractive())
		return nil
	},
}

// Execute runs the command tree
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&flagCLI, "cli", false, "force plain line mode")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "force the full-screen session")
}

// appEnv bundles the collaborators every command needs
type appEnv struct {
	cfg  config.Config
	log  *slog.Logger
	disp *dispatch.Dispatcher

	// Non-fatal config load failure, surfaced to the user once
	cfgWarn error
}

func buildEnv() (appEnv, func()) {
	cfg, cfgErr := config.Load()

	log := logging.Nop()
	closeLog := func() {}
	if path, err := config.LogPath(); err == nil {
		if l, closer, err := logging.New(path); err == nil {
			log = l
			closeLog = func() { closer() }
		}
	}
	if cfgErr != nil {
		log.Warn("config load failed, using defaults", "error", cfgErr)
	}

	provider, err := ai.FromConfig(cfg)
	if err != nil && !errors.Is(err, ai.ErrNotConfigured) {
		log.Warn("ai provider unavailable", "error", err)
	}

	var todos *todo.Store
	if path, err := config.TodoPath(); err == nil {
		if store, err := todo.Open(path); err == nil {
			todos = store
		} else {
			log.Warn("todo list unavailable", "error", err)
		}
	}

	disp := dispatch.New(knowledge.New(), provider, todos, log)
	return appEnv{cfg: cfg, log: log, disp: disp, cfgWarn: cfgErr}, closeLog
}

func openHistory(env appEnv) *history.Store {
	path, err := config.HistoryPath()
	if err != nil {
		return nil
	}
	store, err := history.Open(path, env.cfg.History.MaxEntries)
	if err != nil {
		env.log.Warn("history unavailable", "error", err)
		return nil
	}
	return store
}

func runInteractive() int {
	env, closeLog := buildEnv()
	defer closeLog()

	store := openHistory(env)
	mode, reason := pickMode(env.cfg)

	if mode == cli.ModeCLI {
		if env.cfgWarn != nil {
			cli.PrintLines(os.Stdout, []transcript.Line{{
				Kind: transcript.KindWarning,
				Text: fmt.Sprintf("config file could not be read, defaults in use: %v", env.cfgWarn),
			}})
		}
		var rec cli.HistoryRecorder
		if store != nil {
			rec = store
		}
		repl := cli.NewREPL(env.disp, rec, os.Stdin, os.Stdout)
		return repl.Run(context.Background(), reason)
	}
	return runSession(env, store)
}

func pickMode(cfg config.Config) (cli.UIMode, string) {
	if flagCLI {
		return cli.ModeCLI, ""
	}
	if flagTUI {
		return cli.ModeTUI, ""
	}
	switch cfg.Session.Mode {
	case "cli":
		return cli.ModeCLI, ""
	case "tui":
		return cli.ModeTUI, ""
	}
	return cli.Detect()
}

func runSession(env appEnv, store *history.Store) (code int) {
	// A panic must never leave the terminal raw
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stderr)
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			env.log.Error("session panicked", "panic", r)
			code = 1
		}
	}()

	term := terminal.New(colorMode(env.cfg))
	svc := terminal.NewService(term)

	var histStore session.HistoryStore
	if store != nil {
		histStore = store
	}
	s := session.New(svc, env.disp, session.Options{
		Tick:    tickDuration(env.cfg),
		History: histStore,
		Logger:  env.log,
	})
	if env.cfgWarn != nil {
		s.ShowMessage("Config",
			fmt.Sprintf("config file could not be read, defaults in use: %v", env.cfgWarn),
			session.MessageWarning)
	}

	code, err := s.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "cybuddy:", err)
	}
	return code
}

func tickDuration(cfg config.Config) time.Duration {
	return time.Duration(cfg.Session.TickMillis) * time.Millisecond
}

func colorMode(cfg config.Config) terminal.ColorMode {
	switch cfg.Session.Color {
	case "256":
		return terminal.ColorMode256
	case "truecolor":
		return terminal.ColorModeTrueColor
	}
	return terminal.DetectColorMode()
}
