package main

import (
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage files within a vector store",
	Long: `Commands for ingesting and managing store files.

Sources may be local paths or http(s) URLs. File names are standardized
before upload (lowercased, separators collapsed to underscores) and every
file carries a file_name attribute used for name lookups.`,
}

func init() {
	rootCmd.AddCommand(fileCmd)
}
