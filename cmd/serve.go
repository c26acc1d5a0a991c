package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/skin-advisor/internal/analyze"
	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/config"
	"github.com/kozaktomas/skin-advisor/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Skin Advisor web server.
The web server provides the consultation UI and the JSON API
(quiz, face scan, product recommendations).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides WEB_PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (overrides WEB_HOST)")
	serveCmd.Flags().String("products", "", "Path to the product catalog file (overrides PRODUCT_FILE_PATH)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if port := mustGetInt(cmd, "port"); port != 0 {
		cfg.Web.Port = port
	}
	if host := mustGetString(cmd, "host"); host != "" {
		cfg.Web.Host = host
	}
	if products := mustGetString(cmd, "products"); products != "" {
		cfg.Catalog.Path = products
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}
	fmt.Printf("Loaded %d products from %s\n", cat.Len(), cfg.Catalog.Path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := analyze.NewProvider(ctx, cfg, cfg.Rules.Indicators())
	if err != nil {
		return fmt.Errorf("failed to initialize face analyzer: %w", err)
	}
	fmt.Printf("Using %s face analyzer\n", provider.Name())

	server := web.NewServer(cfg, provider, cat)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Skin Advisor on http://%s:%d\n", cfg.Web.Host, cfg.Web.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
