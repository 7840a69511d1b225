// Package server serves the memorice terminal client over SSH. Every session
// runs its own copy of the client binary inside a pty.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/rs/zerolog/log"
	gossh "golang.org/x/crypto/ssh"
)

const (
	DefaultIdleTimeout = 5 * time.Minute
	DefaultSSHAddress  = ":2222"
)

type Config struct {
	ListenAddress string
	Binary        string
	HostKeyFile   string
	IdleTimeout   time.Duration
	// Args are passed to the client binary of every session.
	Args []string
}

type Server struct {
	*ssh.Server
	Config Config
}

func New(cfg Config) (*Server, error) {
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultSSHAddress
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}

	s := &Server{Config: cfg}
	s.Server = &ssh.Server{
		Addr:        cfg.ListenAddress,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
	}

	if cfg.HostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("failed to load host key: %w", err)
		}
	} else {
		signer, err := EphemeralSigner()
		if err != nil {
			return nil, err
		}
		s.AddHostKey(signer)
	}

	return s, nil
}

// EphemeralSigner generates an ed25519 host key that lives as long as the
// process.
func EphemeralSigner() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate host key: %w", err)
	}

	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to create host key signer: %w", err)
	}

	return signer, nil
}

func SessionName() string {
	return petname.Generate(2, "-")
}

func (s *Server) command(ctx context.Context, term string, environ []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Config.Binary, s.Config.Args...)
	cmd.Env = append(environ, fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	name := SessionName()
	logger := log.With().Str("session", name).Str("user", sess.User()).Str("remote", sess.RemoteAddr().String()).Logger()

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		logger.Info().Msg("rejected session without pty")
		sess.Exit(1)
		return
	}

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	cmd := s.command(ctx, ptyReq.Term, sess.Environ())
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		logger.Error().Err(err).Msg("failed to start client")
		sess.Exit(1)
		return
	}
	defer f.Close()

	logger.Info().Str("term", ptyReq.Term).Msg("session started")
	started := time.Now()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				logger.Debug().Err(err).Msg("resize failed")
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	err = cmd.Wait()
	logger.Info().Err(err).Dur("duration", time.Since(started)).Msg("session ended")
	if err != nil {
		sess.Exit(1)
		return
	}
	sess.Exit(0)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
