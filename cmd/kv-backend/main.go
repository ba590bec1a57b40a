package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/VictoriaMetrics/metrics"
	"github.com/heysubinoy/kvgate/internal/api"
	"github.com/heysubinoy/kvgate/internal/cmdutil"
	"github.com/heysubinoy/kvgate/internal/store"
	"github.com/heysubinoy/kvgate/internal/tlsconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

var rootCmd = &cobra.Command{
	Use:   "kv-backend",
	Short: "Serve the key-value store over gRPC",
	Long: cmdutil.WrapString(`Serve the in-memory key-value store over gRPC. Settings come from the
YAML file given with --config, KVGATE_* environment variables and flags.`),
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
	logger, err := cmdutil.NewLogger("kv-backend", cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "config", cfg.String())

	var opts []grpc.ServerOption
	creds, err := tlsconfig.ServerOption(cfg.Backend.CertFile, cfg.Backend.KeyFile)
	if err != nil {
		return fmt.Errorf("failed to load backend TLS material: %w", err)
	}
	if creds != nil {
		opts = append(opts, creds)
	}

	set := metrics.NewSet()
	kvStore := store.NewInstrumentedStore(store.NewMemStore(), set)
	grpcServer := api.NewGRPCServer(kvStore, logger.Named("grpc"), opts...)

	lis, err := net.Listen("tcp", cfg.Backend.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Backend.Address(), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if err := cmdutil.ServeMetrics(ctx, g, cfg.Backend.MetricsAddr, set, logger); err != nil {
		return err
	}

	g.Go(func() error {
		logger.Info("grpc server listening", "addr", lis.Addr().String(), "tls", creds != nil)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}
