package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/org-atlas/pkg/server"
	"github.com/de-tools/org-atlas/pkg/services/benchmark"
	"github.com/de-tools/org-atlas/pkg/store/runs"
)

var profilesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Org Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "",
		"Path to a benchmark policy profiles file (INI); omit to use the standard policy only")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	var registry benchmark.Registry
	if profilesPath != "" {
		var err error
		registry, err = benchmark.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load policy profiles: %w", err)
		}
		profiles, _ := registry.GetProfiles(ctx)
		logger.Info().Msgf("Policy profiles found at `%s` successfully loaded.", profilesPath)
		for _, p := range profiles {
			logger.Info().Msgf("Profile: `%s`", p)
		}
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Runs:     runs.NewStore(),
			Policies: registry,
		},
	})

	return api.Start()
}
