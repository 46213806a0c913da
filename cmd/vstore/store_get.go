package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var storeGetCmd = &cobra.Command{
	Use:   "get <store-id>",
	Short: "Show one vector store",
	Args:  cobra.ExactArgs(1),
	Run:   runStoreGet,
}

func init() {
	storeCmd.AddCommand(storeGetCmd)
}

func runStoreGet(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewStoreService(newBackend(cfg, logger), logger)

	store, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printStoreHuman(store)
		return
	}
	outputJSON(store)
}
