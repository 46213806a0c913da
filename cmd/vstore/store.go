package main

import (
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage hosted vector stores",
	Long: `Commands for the vector store lifecycle.

Store names are standardized before use: lowercased, non-alphanumeric runs
replaced with underscores, and digits kept only as a trailing run
("My-Store123" becomes "my_store123", "my_1store" becomes "my_store").`,
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
