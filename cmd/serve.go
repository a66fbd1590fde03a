package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ai-heroes/internal/generator"
	"github.com/ziadkadry99/ai-heroes/internal/logging"
	"github.com/ziadkadry99/ai-heroes/internal/server"
	"github.com/ziadkadry99/ai-heroes/internal/views"
	"github.com/ziadkadry99/ai-heroes/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery web server",
	Long:  `Serves the landing page, gallery, character pages and the generator over HTTP, with a JSON API and a WebSocket push channel.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the gallery in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, cat, logger, err := setup()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	open, _ := cmd.Flags().GetBool("open")

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("preparing templates: %w", err)
	}
	sim := newSimulator(cfg, cat, logger)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, cat, logging.ForComponent(logger, "http"))

	site := web.New(cat, sim, renderer, filterLabels(cfg), logging.ForComponent(logger, "web"),
		web.WithPageSimulators(func() *generator.Simulator { return newSimulator(cfg, cat, logger) }),
	)
	site.RegisterRoutes(srv.Router())
	site.RegisterStreams(srv.Streams())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	logger.Info("heroes starting", "version", Version, "url", url, "characters", cat.Len(), "delay", sim.Delay())
	if open {
		openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
