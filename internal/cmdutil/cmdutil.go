// Package cmdutil holds the flag, environment and lifecycle plumbing shared
// by the kvgate binaries.
package cmdutil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/heysubinoy/kvgate/internal/api"
	"github.com/heysubinoy/kvgate/internal/gateway"
	"github.com/heysubinoy/kvgate/internal/logging"
	"github.com/heysubinoy/kvgate/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	// Wrap is the number of characters to wrap the help text at
	Wrap int = 50

	shutdownTimeout = 5 * time.Second
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var lines []string
	var line strings.Builder

	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > Wrap {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// InitEnv loads .env files and lets KVGATE_<FLAG> variables set any flag.
func InitEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("kvgate")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// SetupConfigFlags adds the flags every binary shares. Each flag can also be
// set as KVGATE_<FLAG>, e.g. KVGATE_DIAL_TIMEOUT=2s.
func SetupConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", WrapString("Path to a YAML configuration file. Without it built-in defaults are used"))
	flags.String("log-level", "info", WrapString("Log level (trace, debug, info, warn, error)"))
	flags.Bool("log-json", false, WrapString("Emit logs as JSON"))

	flags.String("backend-host", "", WrapString("Host of the gRPC store service"))
	flags.Int("backend-port", 0, WrapString("Port of the gRPC store service"))
	flags.String("frontend-host", "", WrapString("Host the HTTP gateway listens on"))
	flags.Int("frontend-port", 0, WrapString("Port the HTTP gateway listens on"))

	flags.Int("max-attempts", gateway.DefaultMaxAttempts, WrapString("Connect retries after the first failed attempt"))
	flags.Duration("base-delay", gateway.DefaultBaseDelay, WrapString("Delay before the first connect retry, doubled on every further retry"))
	flags.Duration("dial-timeout", gateway.DefaultDialTimeout, WrapString("Timeout of a single connect attempt"))
}

// LoadConfig binds the command's flags, reads the configuration file and
// applies every flag or KVGATE_* variable that was set explicitly.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(viper.GetString("config"))
	if err != nil {
		return nil, err
	}

	overrides := map[string]func(){
		"log-level":     func() { cfg.LogLevel = viper.GetString("log-level") },
		"log-json":      func() { cfg.LogJSON = viper.GetBool("log-json") },
		"backend-host":  func() { cfg.Backend.Host = viper.GetString("backend-host") },
		"backend-port":  func() { cfg.Backend.ApplicationPort = viper.GetInt("backend-port") },
		"frontend-host": func() { cfg.Frontend.Host = viper.GetString("frontend-host") },
		"frontend-port": func() { cfg.Frontend.ApplicationPort = viper.GetInt("frontend-port") },
		"max-attempts":  func() { cfg.Connect.MaxAttempts = viper.GetInt("max-attempts") },
		"base-delay":    func() { cfg.Connect.BaseDelay = viper.GetDuration("base-delay") },
		"dial-timeout":  func() { cfg.Connect.DialTimeout = viper.GetDuration("dial-timeout") },
	}
	for key, apply := range overrides {
		if viper.IsSet(key) {
			apply()
		}
	}
	return cfg, cfg.Validate()
}

// NewLogger builds the root logger for a binary from cfg.
func NewLogger(name string, cfg *config.Config) (hclog.Logger, error) {
	return logging.New(name, logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
}

// GatewayOptions turns the connect section of cfg into client options.
func GatewayOptions(cfg *config.Config, logger hclog.Logger) []gateway.Option {
	return []gateway.Option{
		gateway.WithRetryPolicy(gateway.RetryPolicy{
			MaxAttempts: cfg.Connect.MaxAttempts,
			BaseDelay:   cfg.Connect.BaseDelay,
		}),
		gateway.WithDialTimeout(cfg.Connect.DialTimeout),
		gateway.WithLogger(logger),
	}
}

// ServeHTTP runs srv in g until ctx is done, then shuts it down. TLS is used
// when srv.TLSConfig carries certificates.
func ServeHTTP(ctx context.Context, g *errgroup.Group, srv *http.Server, lis net.Listener, logger hclog.Logger) {
	g.Go(func() error {
		logger.Info("http server listening", "addr", lis.Addr().String(), "tls", srv.TLSConfig != nil)

		var err error
		if srv.TLSConfig != nil {
			err = srv.ServeTLS(lis, "", "")
		} else {
			err = srv.Serve(lis)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// ServeMetrics exposes set on addr when addr is not empty.
func ServeMetrics(ctx context.Context, g *errgroup.Group, addr string, set *metrics.Set, logger hclog.Logger) error {
	if addr == "" {
		return nil
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	ServeHTTP(ctx, g, &http.Server{Handler: api.NewMetricsMux(set)}, lis, logger.Named("metrics"))
	return nil
}
