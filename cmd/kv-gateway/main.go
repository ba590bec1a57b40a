package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/heysubinoy/kvgate/internal/api"
	"github.com/heysubinoy/kvgate/internal/cmdutil"
	"github.com/heysubinoy/kvgate/internal/gateway"
	"github.com/heysubinoy/kvgate/internal/tlsconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rootCmd = &cobra.Command{
	Use:   "kv-gateway",
	Short: "Serve the HTTP gateway in front of kv-backend",
	Long: cmdutil.WrapString(`Connect to kv-backend, retrying with exponential backoff, then serve
GET /health_check, GET /{key} and POST / over HTTP. The process exits when
the backend cannot be reached within the retry budget.`),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(cmdutil.InitEnv)
	cmdutil.SetupConfigFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := cmdutil.NewLogger("kv-gateway", cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "config", cfg.String())

	dialCreds, err := tlsconfig.DialOption(cfg.Backend.CAFile, cfg.Backend.ServerName)
	if err != nil {
		return fmt.Errorf("failed to load backend CA: %w", err)
	}
	serverTLS, err := tlsconfig.ServerTLSConfig(cfg.Frontend.CertFile, cfg.Frontend.KeyFile)
	if err != nil {
		return fmt.Errorf("failed to load frontend TLS material: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	set := metrics.NewSet()
	opts := append(cmdutil.GatewayOptions(cfg, logger.Named("client")),
		gateway.WithDialOptions(dialCreds),
		gateway.WithMetrics(set),
	)
	client := gateway.New(cfg.Backend.Address(), opts...)
	defer client.Close()

	if err := client.Connect(ctx); err != nil {
		var failure *gateway.ConnectFailure
		if errors.As(err, &failure) {
			logger.Error("giving up on backend", "endpoint", failure.Endpoint, "attempts", failure.Attempts)
		}
		return err
	}

	lis, err := net.Listen("tcp", cfg.Frontend.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Frontend.Address(), err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if err := cmdutil.ServeMetrics(ctx, g, cfg.Frontend.MetricsAddr, set, logger); err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           api.NewServer(client, logger.Named("http")).Handler(),
		TLSConfig:         serverTLS,
		ReadHeaderTimeout: 10 * time.Second,
	}
	cmdutil.ServeHTTP(ctx, g, srv, lis, logger)

	return g.Wait()
}
