package main

import (
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
	"github.com/heysubinoy/kvgate/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rootCmd = &cobra.Command{
	Use:          "kv-single",
	Short:        "Run the backend and the HTTP gateway in one process",
	Long:         cmdutil.WrapString(`Run kv-backend and kv-gateway side by side in one process for local development. The gateway still reaches the store over gRPC on the backend address.`),
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
	logger, err := cmdutil.NewLogger("kv-single", cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	set := metrics.NewSet()
	grpcServer := api.NewGRPCServer(store.NewInstrumentedStore(store.NewMemStore(), set), logger.Named("grpc"))

	grpcLis, err := net.Listen("tcp", cfg.Backend.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Backend.Address(), err)
	}
	g.Go(func() error {
		logger.Info("grpc server listening", "addr", grpcLis.Addr().String())
		return grpcServer.Serve(grpcLis)
	})
	g.Go(func() error {
		<-ctx.Done()
		grpcServer.GracefulStop()
		return nil
	})

	opts := append(cmdutil.GatewayOptions(cfg, logger.Named("client")), gateway.WithMetrics(set))
	client := gateway.New(grpcLis.Addr().String(), opts...)
	defer client.Close()
	if err := client.Connect(ctx); err != nil {
		stop()
		_ = g.Wait()
		return err
	}

	httpLis, err := net.Listen("tcp", cfg.Frontend.Address())
	if err != nil {
		stop()
		_ = g.Wait()
		return fmt.Errorf("failed to listen on %s: %w", cfg.Frontend.Address(), err)
	}

	mux := http.NewServeMux()
	api.NewServer(client, logger.Named("http")).RegisterRoutes(mux)
	mux.Handle("GET /metrics", api.MetricsHandler(set, true))

	srv := &http.Server{
		Handler:           api.LogRequests(logger.Named("http"), mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	cmdutil.ServeHTTP(ctx, g, srv, httpLis, logger)

	return g.Wait()
}
