package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/portal/internal/config"
	"github.com/hms/portal/internal/hmstest"
	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/internal/platform/rest"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Hospital portal client",
	}

	rootCmd.AddCommand(appointmentsCmd())
	rootCmd.AddCommand(careTasksCmd())
	rootCmd.AddCommand(reportsCmd())
	rootCmd.AddCommand(prescriptionsCmd())
	rootCmd.AddCommand(equipmentCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(demoServerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime is the shared wiring behind every command: config, logger, the API
// client, and the caller's session.
type runtime struct {
	cfg     *config.Config
	logger  zerolog.Logger
	client  *rest.Client
	session auth.Session
}

func newRuntime() (*runtime, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	session := auth.Session{Role: auth.RoleAdmin}
	if cfg.Token != "" {
		session, err = auth.ParseSession(cfg.Token, cfg.TokenSecret)
		if err != nil {
			return nil, fmt.Errorf("parse session token: %w", err)
		}
	} else if !cfg.IsDev() {
		return nil, fmt.Errorf("PORTAL_TOKEN is required outside development")
	}

	client := rest.NewClient(rest.Options{
		BaseURL:  cfg.APIBaseURL,
		Token:    cfg.Token,
		Timeout:  time.Duration(cfg.HTTPTimeout) * time.Second,
		RetryMax: cfg.RetryMax,
		Logger:   logger,
	})

	return &runtime{cfg: cfg, logger: logger, client: client, session: session}, nil
}

// require aborts before any request when the session's role lacks the
// capability backing a command.
func (rt *runtime) require(cap auth.Capability) error {
	if !rt.session.Role.Can(cap) {
		return fmt.Errorf("role %s may not access %s", rt.session.Role, cap)
	}
	return nil
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the screens available to the signed-in role",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", rt.session.Name, rt.session.Role)
			for _, item := range auth.MenuFor(rt.session.Role) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %s\n", item.Label, item.Path)
			}
			return nil
		},
	}
}

func demoServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo-server",
		Short: "Serve a seeded in-memory hospital API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			srv := hmstest.New(hmstest.NewStore().Seed(), logger)
			addr := ":" + cfg.DemoPort
			logger.Info().Str("addr", addr).Msg("demo hospital API listening")
			return srv.Start(addr)
		},
	}
}
