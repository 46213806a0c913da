package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var convUpdateMeta []string

var convUpdateCmd = &cobra.Command{
	Use:   "update <conversation-id>",
	Short: "Update conversation metadata",
	Long: `Replace metadata keys on a conversation.

Examples:
  vstore conv update conv_abc123 --meta status=closed`,
	Args: cobra.ExactArgs(1),
	Run:  runConvUpdate,
}

func init() {
	convUpdateCmd.Flags().StringArrayVar(&convUpdateMeta, "meta", nil, "Metadata as key=value (repeatable, required)")
	convUpdateCmd.MarkFlagRequired("meta")
	convCmd.AddCommand(convUpdateCmd)
}

func runConvUpdate(cmd *cobra.Command, args []string) {
	metadata, err := parseAttrs(convUpdateMeta)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewConversationService(newBackend(cfg, logger), logger)

	conv, err := svc.Update(cmd.Context(), args[0], metadata)
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printConversationHuman(conv)
		return
	}
	outputJSON(conv)
}
