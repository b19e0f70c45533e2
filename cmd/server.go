package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/config"
	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/guide"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/preview"
	"github.com/easylandingweb/easylanding/internal/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the local preview server",
	Long: `Starts an HTTP server with live preview (websocket), draft storage,
generation history, downloads and the user guide.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port from config)")
	serverCmd.Flags().Bool("allow-all-origins", false, "accept cross-origin requests from anywhere")
	serverCmd.Flags().Bool("open", false, "open the preview in a browser")
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		cfg.Server.Port = p
	}
	if cmd.Flags().Changed("allow-all-origins") {
		cfg.Server.AllowAllOrigins, _ = cmd.Flags().GetBool("allow-all-origins")
	}

	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, s.db)
	registerAllRoutes(srv, s, cfg)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "easylanding server %s starting on port %d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", s.db.Path())
	fmt.Fprintf(os.Stderr, "  Preview:  %s/preview/%s\n", url, cfg.DraftKey)
	fmt.Fprintf(os.Stderr, "  Guide:    %s/docs\n", url)

	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(url + "/preview/" + cfg.DraftKey)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// registerAllRoutes wires up every feature route.
func registerAllRoutes(srv *server.Server, s *stores, cfg *config.Config) {
	r := srv.Router()

	// Drafts
	drafts.RegisterRoutes(r, s.drafts)

	// History
	history.RegisterRoutes(r, s.history)

	// Preview, download and live preview
	ph := preview.NewHandler(s.drafts, s.history, pageOptions(cfg), srv.CheckOrigin)
	ph.RegisterRoutes(r)
	ph.RegisterStreams(srv.Streams())

	// User guide
	guide.RegisterRoutes(r)
}
