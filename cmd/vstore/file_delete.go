package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var fileDeleteCmd = &cobra.Command{
	Use:   "delete <store-id> <file-id>",
	Short: "Detach a file from a store",
	Long: `Remove a file attachment from a vector store. The underlying
uploaded file object stays on the account.`,
	Args: cobra.ExactArgs(2),
	Run:  runFileDelete,
}

func init() {
	fileCmd.AddCommand(fileDeleteCmd)
}

func runFileDelete(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	if err := svc.Delete(cmd.Context(), args[0], args[1]); err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("Deleted %s\n", args[1])
		return
	}
	outputJSON(StatusResponse{Status: "deleted", ID: args[1]})
}
