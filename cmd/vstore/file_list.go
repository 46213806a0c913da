package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var fileListCmd = &cobra.Command{
	Use:   "list <store-id>",
	Short: "List files attached to a store",
	Args:  cobra.ExactArgs(1),
	Run:   runFileList,
}

func init() {
	fileCmd.AddCommand(fileListCmd)
}

func runFileList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	files, err := svc.List(cmd.Context(), args[0])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printFileTableHuman(files)
		return
	}
	outputJSON(files)
}
