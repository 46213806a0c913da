package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var chatStartMeta []string

var chatStartCmd = &cobra.Command{
	Use:   "start <store-id> <query>",
	Short: "Start a new chat and ask the first question",
	Long: `Create a conversation, then answer the query grounded in the store.
The conversation ID in the output is what "chat continue" takes for
follow-up questions.

Examples:
  vstore chat start vs_abc123 "What does the contract say about termination?"
  vstore chat start vs_abc123 "Summarize the Q3 results" --model gpt-4o --top-k 5`,
	Args: cobra.ExactArgs(2),
	Run:  runChatStart,
}

func init() {
	chatStartCmd.Flags().StringArrayVar(&chatStartMeta, "meta", nil, "Conversation metadata as key=value (repeatable)")
	chatCmd.AddCommand(chatStartCmd)
}

func runChatStart(cmd *cobra.Command, args []string) {
	metadata, err := parseAttrs(chatStartMeta)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	cfg := mustLoadConfig()
	logger := newLogger()
	backend := newBackend(cfg, logger)
	convs := rag.NewConversationService(backend, logger)
	responses := rag.NewResponseRAGService(backend, logger)

	conv, err := convs.Create(cmd.Context(), metadata)
	if err != nil {
		exitWithServiceError(err)
	}

	answer, err := responses.Ask(cmd.Context(), args[0], conv.ID, args[1], chatAskOptions(cfg))
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printAnswerHuman(answer)
		return
	}
	outputJSON(answer)
}
