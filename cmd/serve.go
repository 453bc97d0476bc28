package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/revisa-app/revisa/internal/api"
	"github.com/revisa-app/revisa/internal/cardgen"
	"github.com/revisa-app/revisa/internal/perf"
	"github.com/revisa-app/revisa/internal/review"
	"github.com/revisa-app/revisa/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the study API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	logger.Info("store opened", "path", dbPath)

	gen, err := cardgen.New(cfg.Cardgen.GeneratorConfig())
	if err != nil {
		logger.Warn("card generation not configured, using mock provider", "error", err)
		gen = cardgen.NewMockGenerator()
	}
	gen = cardgen.WithRetry(gen, cardgen.DefaultRetryConfig())

	srv := api.NewServer(api.Options{
		Review:       review.NewService(st.Records(), st.Events(), st.Catalog(), nil),
		Perf:         perf.NewService(st.Events(), st.Records(), st.Catalog(), nil),
		Catalog:      st.Catalog(),
		Generator:    gen,
		Logger:       logger,
		SessionLimit: cfg.Session.Limit,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(cfg.HTTP.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
