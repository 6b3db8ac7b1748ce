package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/database"
	"github.com/Zachkp/portfolio/internal/handlers"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/recaptcha"
	"github.com/Zachkp/portfolio/internal/repository"
)

// visitorRetention is how long page views are kept.
const visitorRetention = 12 * 30 * 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "port to listen on")
	if err := v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	// serve is the default action
	rootCmd.RunE = runServe
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	repo := repository.New(db)
	purged, err := repo.Visitors.PurgeBefore(ctx, time.Now().UTC().Add(-visitorRetention))
	if err != nil {
		slog.Warn("visitor cleanup failed", "error", err)
	} else if purged > 0 {
		slog.Info("removed old visitor records", "rows", purged)
	}

	if cfg.RecaptchaPrivateKey == "" {
		slog.Warn("RECAPTCHA_PRIVATE_KEY not set, form submissions will be rejected")
	}
	if cfg.MailUsername == "" || cfg.MailPassword == "" {
		slog.Warn("mail credentials not set, contact messages cannot be delivered")
	}

	srv, err := handlers.New(handlers.Options{
		Config:   cfg,
		Repo:     repo,
		Verifier: recaptcha.New(cfg.RecaptchaPrivateKey, cfg.RecaptchaVerifyURL),
		Mailer: mailer.New(mailer.Config{
			Host:     cfg.MailServer,
			Port:     cfg.MailPort,
			UseTLS:   cfg.MailUseTLS,
			Username: cfg.MailUsername,
			Password: cfg.MailPassword,
		}),
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", httpServer.Addr, "env", cfg.Env, "debug", cfg.Debug)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
