package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var chatGetCmd = &cobra.Command{
	Use:   "get <response-id>",
	Short: "Fetch a generated response by ID",
	Args:  cobra.ExactArgs(1),
	Run:   runChatGet,
}

func init() {
	chatCmd.AddCommand(chatGetCmd)
}

func runChatGet(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewResponseRAGService(newBackend(cfg, logger), logger)

	resp, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("%s (%s)\n", resp.ID, resp.Status)
		if text := resp.OutputText(); text != "" {
			outputHuman("%s\n", wrapText(text, AnswerWrapCols, ""))
		}
		return
	}
	outputJSON(resp)
}
