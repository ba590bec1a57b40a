package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/heysubinoy/kvgate/internal/cmdutil"
	"github.com/heysubinoy/kvgate/internal/gateway"
	"github.com/heysubinoy/kvgate/internal/tlsconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "kv-cli",
		Short: "Talk to kv-backend from the command line",
		Long: cmdutil.WrapString(`Read and write keys on kv-backend through the same resilient client the
gateway uses. The backend address defaults to the backend section of the configuration.`),
		SilenceUsage: true,
	}

	getCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client *gateway.Client) error {
				value, err := client.CallGet(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}

	insertCmd = &cobra.Command{
		Use:   "insert <key> <value>",
		Short: "Store value under key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client *gateway.Client) error {
				if err := client.CallInsert(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Inserted '%s' = '%s'\n", args[0], args[1])
				return nil
			})
		},
	}
)

func init() {
	cobra.OnInitialize(cmdutil.InitEnv)
	cmdutil.SetupConfigFlags(rootCmd)
	rootCmd.PersistentFlags().String("endpoint", "", cmdutil.WrapString("Backend address (host:port). Overrides the configuration file"))
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Second, cmdutil.WrapString("Timeout of a single call"))

	rootCmd.AddCommand(getCmd, insertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var notFound *gateway.NotFoundError
		if errors.As(err, &notFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func withClient(cmd *cobra.Command, fn func(ctx context.Context, client *gateway.Client) error) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := cmdutil.NewLogger("kv-cli", cfg)
	if err != nil {
		return err
	}

	endpoint := cfg.Backend.Address()
	if e := viper.GetString("endpoint"); e != "" {
		endpoint = e
	}

	creds, err := tlsconfig.DialOption(cfg.Backend.CAFile, cfg.Backend.ServerName)
	if err != nil {
		return err
	}

	opts := append(cmdutil.GatewayOptions(cfg, logger), gateway.WithDialOptions(creds))
	client := gateway.New(endpoint, opts...)
	defer client.Close()

	if err := client.Connect(cmd.Context()); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
	defer cancel()
	return fn(ctx, client)
}
