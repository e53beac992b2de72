package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conorfennell/notehash/internal/auth"
	"github.com/conorfennell/notehash/internal/notes"
	"github.com/conorfennell/notehash/internal/storage"
	"github.com/conorfennell/notehash/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve notes and the quiz as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			engine, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}

			var verifier auth.Verifier
			if a.cfg.Auth.Enabled {
				v, err := auth.NewPasswordVerifier(a.cfg.Auth.User, a.cfg.Auth.Hash, a.log)
				if err != nil {
					return err
				}
				verifier = v
			}

			return a.withStore(ctx, func(db *storage.DB) error {
				svc := notes.NewService(db, a.log)
				if _, err := svc.Load(ctx); err != nil {
					return err
				}

				srv := &http.Server{
					Addr:         a.cfg.HTTP.Addr,
					Handler:      web.NewServer(svc, engine, verifier, a.log),
					ReadTimeout:  a.cfg.HTTP.Timeout,
					WriteTimeout: a.cfg.HTTP.Timeout,
				}
				return run(ctx, srv, a.log)
			})
		},
	}
}

// run serves srv until ctx is cancelled, then shuts it down gracefully.
func run(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
