package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var convDeleteCmd = &cobra.Command{
	Use:   "delete <conversation-id>",
	Short: "Delete a conversation",
	Args:  cobra.ExactArgs(1),
	Run:   runConvDelete,
}

func init() {
	convCmd.AddCommand(convDeleteCmd)
}

func runConvDelete(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewConversationService(newBackend(cfg, logger), logger)

	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("Deleted %s\n", args[0])
		return
	}
	outputJSON(StatusResponse{Status: "deleted", ID: args[0]})
}
