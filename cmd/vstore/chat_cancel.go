package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var chatCancelCmd = &cobra.Command{
	Use:   "cancel <response-id>",
	Short: "Cancel an in-flight response",
	Long: `Ask the provider to cancel a background response. Reports whether
the cancellation was confirmed; a response that already finished cannot
be cancelled.`,
	Args: cobra.ExactArgs(1),
	Run:  runChatCancel,
}

func init() {
	chatCmd.AddCommand(chatCancelCmd)
}

func runChatCancel(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewResponseRAGService(newBackend(cfg, logger), logger)

	cancelled, err := svc.Cancel(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	status := "cancelled"
	if !cancelled {
		status = "not_cancelled"
	}

	if humanOutput {
		outputHuman("%s: %s\n", args[0], status)
		return
	}
	outputJSON(StatusResponse{Status: status, ID: args[0]})
}
