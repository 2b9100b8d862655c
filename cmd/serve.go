package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing snapshot tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes snapshot
capture and inspection as tools, so AI agents can call them directly
without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uisnap serve
  uisnap serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := MCPConfig{Transport: transport, Port: port}
	srv, err := newMCPServer()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	log.Info().Str("transport", transport).Msg("starting MCP server")
	return srv.serve(cfg)
}
