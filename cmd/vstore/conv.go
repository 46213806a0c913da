package main

import (
	"github.com/spf13/cobra"
)

var convCmd = &cobra.Command{
	Use:   "conv",
	Short: "Manage server-side conversations",
	Long: `Commands for conversation resources used by multi-turn chat.

Conversations hold message history on the provider side; chat commands
reference them by ID so follow-up questions keep their context.`,
}

func init() {
	rootCmd.AddCommand(convCmd)
}
