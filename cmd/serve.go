package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/easylandingweb/easylanding/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing landing page generation, style resolution and template listing as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "easylanding MCP server started on stdio (data=%s)\n", cfg.DataDir)

		srv := mcpserver.NewServer(s.drafts, s.history, pageOptions(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
