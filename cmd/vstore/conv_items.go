package main

import (
	"strings"

	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var convItemsLimit int

var convItemsCmd = &cobra.Command{
	Use:   "items <conversation-id>",
	Short: "List conversation items",
	Long: `List the messages and tool calls recorded in a conversation, newest
first as the provider returns them.`,
	Args: cobra.ExactArgs(1),
	Run:  runConvItems,
}

func init() {
	convItemsCmd.Flags().IntVar(&convItemsLimit, "limit", 0, "Maximum number of items (0 uses the provider default)")
	convCmd.AddCommand(convItemsCmd)
}

func runConvItems(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewConversationService(newBackend(cfg, logger), logger)

	items, err := svc.ListItems(cmd.Context(), args[0], convItemsLimit)
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		if len(items) == 0 {
			outputHuman("No items.\n")
			return
		}
		for _, it := range items {
			var texts []string
			for _, c := range it.Content {
				if c.Text != "" {
					texts = append(texts, c.Text)
				}
			}
			label := it.Role
			if label == "" {
				label = it.Type
			}
			outputHuman("[%s] %s\n", label, truncateString(strings.Join(texts, " "), SnippetMaxLen))
		}
		return
	}
	outputJSON(items)
}
