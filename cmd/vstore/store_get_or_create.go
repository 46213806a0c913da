package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var storeGetOrCreateCmd = &cobra.Command{
	Use:   "get-or-create <name>",
	Short: "Return the store with this name, creating it if absent",
	Long: `Look up a vector store by standardized name and return its ID,
creating the store first if no match exists.

Examples:
  vstore store get-or-create "Project Notes"
  vstore store get-or-create research_2024 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runStoreGetOrCreate,
}

func init() {
	storeCmd.AddCommand(storeGetOrCreateCmd)
}

// StoreIDResponse is the response for commands that resolve a store ID.
type StoreIDResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func runStoreGetOrCreate(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewStoreService(newBackend(cfg, logger), logger)

	name := rag.StandardizeStoreName(args[0])
	id, err := svc.GetOrCreate(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("%s\n", id)
		return
	}
	outputJSON(StoreIDResponse{ID: id, Name: name})
}
