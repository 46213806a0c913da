package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var convCreateMeta []string

var convCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a conversation",
	Long: `Create a new server-side conversation.

Examples:
  vstore conv create
  vstore conv create --meta topic=onboarding --meta owner=kim`,
	Args: cobra.NoArgs,
	Run:  runConvCreate,
}

func init() {
	convCreateCmd.Flags().StringArrayVar(&convCreateMeta, "meta", nil, "Metadata as key=value (repeatable)")
	convCmd.AddCommand(convCreateCmd)
}

func runConvCreate(cmd *cobra.Command, args []string) {
	metadata, err := parseAttrs(convCreateMeta)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewConversationService(newBackend(cfg, logger), logger)

	conv, err := svc.Create(cmd.Context(), metadata)
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printConversationHuman(conv)
		return
	}
	outputJSON(conv)
}
