package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/server"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation, skill extraction, and trends endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:          servePort,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AllowedSuffix: getEnvDefault("CORS_ALLOWED_SUFFIX", ".web.app"),
		LocalDevHost:  getEnvDefault("CORS_LOCAL_DEV_HOST", "localhost:5173"),
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		Version:       Version,
	}

	srv, err := server.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
