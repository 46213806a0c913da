package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var storeFindCmd = &cobra.Command{
	Use:     "find <name>",
	Aliases: []string{"get-id-by-name"},
	Short:   "Resolve a store name to its ID",
	Long: `Find the ID of the vector store whose name matches the argument.
The comparison is case-insensitive. Exits with code 3 if no store matches.

Examples:
  vstore store find "Project Notes"
  vstore store find notes_2024 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runStoreFind,
}

func init() {
	storeCmd.AddCommand(storeFindCmd)
}

func runStoreFind(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewStoreService(newBackend(cfg, logger), logger)

	id, err := svc.GetIDByName(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("%s\n", id)
		return
	}
	outputJSON(StoreIDResponse{ID: id, Name: args[0]})
}
