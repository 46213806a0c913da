package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vector stores",
	Long: `List every vector store on the account, following pagination.

Examples:
  vstore store list
  vstore store list --human`,
	Args: cobra.NoArgs,
	Run:  runStoreList,
}

func init() {
	storeCmd.AddCommand(storeListCmd)
}

func runStoreList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewStoreService(newBackend(cfg, logger), logger)

	stores, err := svc.List(cmd.Context())
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printStoreTableHuman(stores)
		return
	}
	outputJSON(stores)
}
