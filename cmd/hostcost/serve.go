package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hostcost/internal/config"
	"github.com/vovakirdan/hostcost/internal/logging"
	"github.com/vovakirdan/hostcost/internal/platform/httpapi"
	"github.com/vovakirdan/hostcost/internal/platform/tui"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagNoSSH       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the estimator over SSH and/or a JSON API",
	Long: `Start an SSH server that gives every connection its own estimator form,
and optionally a JSON API for scripted quotes.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hostcost/host_key

API routes (when --http is set):
  GET /v1/rates
  GET /v1/estimate?ram=8&players=20&worlds=1&plugins=10&mods=0&servers=1
  GET /healthz

Examples:
  hostcost serve                         # SSH on :23235
  hostcost serve --ssh :2222             # SSH on port 2222
  hostcost serve --http :8080            # SSH plus the JSON API
  hostcost serve --no-ssh --http :8080   # JSON API only

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "JSON API address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting, overrides config")
	serveCmd.Flags().BoolVar(&flagNoSSH, "no-ssh", false, "Do not start the SSH server")
}

// server is the lifecycle shared by the SSH and HTTP front ends.
type server interface {
	Serve() error
	Shutdown(ctx context.Context) error
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyServeFlags(&cfg)

	logger := logging.New("hostcost", cfg.Log.Level)

	var servers []server
	if !flagNoSSH {
		sshSrv, sshErr := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     cfg.SSH.Address,
			HostKeyPath: config.ExpandHome(cfg.SSH.HostKeyPath),
			IdleTimeout: cfg.SSH.IdleTimeout(),
			Title:       cfg.UI.Title,
			Defaults:    cfg.UI.Defaults,
		}, logger.WithPrefix("hostcost-ssh"))
		if sshErr != nil {
			return fmt.Errorf("creating SSH server: %w", sshErr)
		}
		servers = append(servers, sshSrv)
	}
	if cfg.HTTP.Address != "" {
		servers = append(servers, httpapi.NewServer(cfg.HTTP.Address, pricing.New(), logger.WithPrefix("hostcost-http")))
	}
	if len(servers) == 0 {
		return errors.New("nothing to serve: SSH disabled and no --http address")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, len(servers))
	for _, s := range servers {
		s := s
		go func() {
			errs <- s.Serve()
		}()
	}

	if !flagNoSSH {
		fmt.Fprintf(cmd.OutOrStdout(), "Connect with: ssh localhost -p %s\n", portOf(cfg.SSH.Address))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("signal received")
	case serveErr = <-errs:
		if serveErr != nil {
			logger.Error("server stopped", "error", serveErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}
	return serveErr
}

// applyServeFlags lets command-line flags override the loaded config.
func applyServeFlags(cfg *config.Config) {
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHTTPAddr != "" {
		cfg.HTTP.Address = flagHTTPAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleMinutes = flagIdleTimeout
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
