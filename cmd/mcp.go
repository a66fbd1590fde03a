package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/ai-heroes/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the character catalog and the generator to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cat, logger, err := setup()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("heroes MCP server started on stdio", "characters", cat.Len())

		srv := mcpserver.NewServer(cat, newSimulator(cfg, cat, logger))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
