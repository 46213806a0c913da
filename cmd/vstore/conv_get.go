package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var convGetCmd = &cobra.Command{
	Use:   "get <conversation-id>",
	Short: "Show one conversation",
	Args:  cobra.ExactArgs(1),
	Run:   runConvGet,
}

func init() {
	convCmd.AddCommand(convGetCmd)
}

func runConvGet(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewConversationService(newBackend(cfg, logger), logger)

	conv, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printConversationHuman(conv)
		return
	}
	outputJSON(conv)
}
