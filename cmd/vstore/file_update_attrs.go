package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var fileUpdateAttrsList []string

var fileUpdateAttrsCmd = &cobra.Command{
	Use:   "update-attrs <store-id> <file-id>",
	Short: "Update attributes on a store file",
	Long: `Update custom attributes on a store file and verify the update took
effect. The command re-reads the file after writing and fails if any
requested pair is missing.

Examples:
  vstore file update-attrs vs_abc123 file_xyz --attr reviewed=yes --attr owner=kim`,
	Args: cobra.ExactArgs(2),
	Run:  runFileUpdateAttrs,
}

func init() {
	fileUpdateAttrsCmd.Flags().StringArrayVar(&fileUpdateAttrsList, "attr", nil, "Attribute as key=value (repeatable, required)")
	fileUpdateAttrsCmd.MarkFlagRequired("attr")
	fileCmd.AddCommand(fileUpdateAttrsCmd)
}

func runFileUpdateAttrs(cmd *cobra.Command, args []string) {
	attrs, err := parseAttrs(fileUpdateAttrsList)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	if err := svc.UpdateAttrs(cmd.Context(), args[0], args[1], attrs); err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("Updated %s\n", args[1])
		return
	}
	outputJSON(StatusResponse{Status: "updated", ID: args[1]})
}
