package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/qnkhuat/memorice/pkg/config"
	"github.com/qnkhuat/memorice/pkg/game"
	"github.com/qnkhuat/memorice/pkg/gui"
	"github.com/qnkhuat/memorice/pkg/logger"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if cfg.Headless {
		if err := printSolution(os.Stdout, cfg.Seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "failed to start memorice: non-interactive terminals are not supported")
		os.Exit(1)
	}

	closer, err := logger.Init(cfg.LogPath, "client")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	theme, err := cfg.ResolveTheme()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	session := game.NewSession(cfg.GameOptions())
	ui := gui.New(session, theme)

	defer func() {
		if r := recover(); r != nil {
			ui.App.Stop()
			log.Error().Str("stack", string(debug.Stack())).Msgf("panic: %+v", r)
			fmt.Fprintf(os.Stderr, "panic: %+v\n", r)
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc
		ui.App.Stop()
	}()

	log.Info().Int64("seed", cfg.Seed).Str("theme", theme.Name).Msg("starting memorice")
	if err := ui.Run(ctx); err != nil {
		log.Error().Err(err).Msg("memorice stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
