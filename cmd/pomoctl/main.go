// Package main implements pomoctl, a command line client of the pomod HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// Config holds the client settings read from the environment.
type Config struct {
	ServerAddr string `envconfig:"POMO_SERVER_ADDR" default:"http://localhost:8080"`
	UserID     string `envconfig:"POMO_USER_ID"`
	Colours    bool   `envconfig:"POMO_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

var (
	config   Config
	userFlag string
)

var rootCmd = &cobra.Command{
	Use:           "pomoctl",
	Short:         "Drive shared pomodoro sessions on a pomod server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if config, err = LoadConfig(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if userFlag != "" {
			config.UserID = userFlag
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "acting user (defaults to $POMO_USER_ID)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, newPrinter(os.Stderr, config.Colours).failure(err))
		os.Exit(1)
	}
}

// self returns the acting user or fails when none is configured.
func self() (string, error) {
	if config.UserID == "" {
		return "", fmt.Errorf("no user: set POMO_USER_ID or pass --user")
	}
	return config.UserID, nil
}

// targetOrSelf returns args[0] when present, the acting user otherwise.
func targetOrSelf(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return self()
}
