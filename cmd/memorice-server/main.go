package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/qnkhuat/memorice/pkg/logger"
	"github.com/qnkhuat/memorice/pkg/server"
)

var (
	listenAddressSSH string
	memoriceBinary   string
	hostKeyFile      string
	clientLogPath    string
	logLevel         string

	done = make(chan bool)
)

func init() {
	flag.StringVar(&listenAddressSSH, "listen-ssh", server.DefaultSSHAddress, "host SSH server on network address")
	flag.StringVar(&memoriceBinary, "memorice", "", "path to memorice client")
	flag.StringVar(&hostKeyFile, "host-key", "", "PEM host key file (a key is generated when empty)")
	flag.StringVar(&clientLogPath, "client-log", os.DevNull, "log file passed to every client")
	flag.StringVar(&logLevel, "log-level", "info", "server log level")
}

// findClient looks for the client next to the server binary, then in PATH.
func findClient() (string, error) {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "memorice")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return exec.LookPath("memorice")
}

func main() {
	idleTimeout := flag.Duration("idle-timeout", server.DefaultIdleTimeout, "disconnect idle sessions after")
	flag.Parse()

	logger.Console("server")
	logger.SetLevel(logLevel)

	if memoriceBinary == "" {
		path, err := findClient()
		if err != nil {
			fmt.Fprintln(os.Stderr, "memorice client not found, pass --memorice")
			os.Exit(1)
		}
		memoriceBinary = path
	}

	s, err := server.New(server.Config{
		ListenAddress: listenAddressSSH,
		Binary:        memoriceBinary,
		HostKeyFile:   hostKeyFile,
		IdleTimeout:   *idleTimeout,
		Args:          []string{"-log", clientLogPath},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	go func() {
		log.Info().Str("address", listenAddressSSH).Str("client", memoriceBinary).Msg("listening")
		if err := s.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	// Wait for teminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	s.Close()
}
