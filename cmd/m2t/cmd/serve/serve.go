package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"m2t/internal/api/server"
	"m2t/internal/app"
	"m2t/internal/app/common"
	"m2t/internal/config"
)

var (
	host        string
	port        string
	environment string
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transcription pipeline over HTTP",
	Long: `Starts an HTTP server exposing POST /api/v1/transcriptions (multipart
upload or JSON URL body), plus /health and /metrics. Runs are single-flight:
a request arriving while another run is in progress gets 409.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := common.MustNewLogger(environment != "production")
		defer logger.Sync()

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		controller := app.InitializePipeline(cfg, logger, registry)

		srv := server.New(server.Config{
			Host:          host,
			Port:          port,
			ReadTimeout:   30 * time.Second,
			IdleTimeout:   2 * time.Minute,
			Environment:   environment,
			DefaultDevice: cfg.DefaultDevice,
		}, controller, registry, logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "0.0.0.0", "interface to bind")
	Cmd.Flags().StringVar(&port, "port", "8080", "port to listen on")
	Cmd.Flags().StringVar(&environment, "env", "development", "runtime environment (development|production)")
}
