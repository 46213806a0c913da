package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var chatContinueCmd = &cobra.Command{
	Use:   "continue <store-id> <conversation-id> <query>",
	Short: "Ask a follow-up question in an existing chat",
	Long: `Answer the query grounded in the store, inside the given
conversation so earlier turns stay in context.

Examples:
  vstore chat continue vs_abc123 conv_xyz789 "And what about renewals?"`,
	Args: cobra.ExactArgs(3),
	Run:  runChatContinue,
}

func init() {
	chatCmd.AddCommand(chatContinueCmd)
}

func runChatContinue(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewResponseRAGService(newBackend(cfg, logger), logger)

	answer, err := svc.Ask(cmd.Context(), args[0], args[1], args[2], chatAskOptions(cfg))
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printAnswerHuman(answer)
		return
	}
	outputJSON(answer)
}
