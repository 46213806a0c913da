package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <store-id>",
	Short: "Delete a vector store",
	Long: `Delete a vector store and all its file attachments. The uploaded
file objects themselves are not removed from the account.`,
	Args: cobra.ExactArgs(1),
	Run:  runStoreDelete,
}

func init() {
	storeCmd.AddCommand(storeDeleteCmd)
}

func runStoreDelete(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewStoreService(newBackend(cfg, logger), logger)

	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("Deleted %s\n", args[0])
		return
	}
	outputJSON(StatusResponse{Status: "deleted", ID: args[0]})
}
