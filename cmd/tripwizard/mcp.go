package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/tripwizard"
	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	var transport string
	var port int
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Exposes the current session as a read-only MCP server with a trip_summary tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}

			srv := mcp.NewServer(rt.Wizard.Aggregator(), tripwizard.Version(),
				mcp.WithCatalog(rt.Wizard.Catalog()),
				mcp.WithLogger(rt.Logger),
			)

			switch transport {
			case "stdio":
				// Ensure logs don't corrupt JSON-RPC on Stdout
				log.SetOutput(os.Stderr)
				rt.Logger.Info("Starting Tripwizard MCP Server (Stdio)")
				return srv.ServeStdio()
			case "sse":
				sigCtx := cli.NewSignalContext(cmd.Context())
				defer sigCtx.Cancel()
				return srv.ServeSSE(sigCtx, port)
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}
		},
	}
	mcpCmd.Flags().StringVarP(&transport, "transport", "t", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().IntVarP(&port, "port", "p", 8081, "Port for the sse transport")
	return mcpCmd
}
