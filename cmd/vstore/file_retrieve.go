package main

import (
	"github.com/ducnh/vstore/internal/openai"
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var fileRetrieveTopK int

var fileRetrieveCmd = &cobra.Command{
	Use:     "retrieve <store-id> <query>",
	Aliases: []string{"semantic-retrieve"},
	Short:   "Retrieve ranked snippets for a query",
	Long: `Run a semantic search over the store and return the top ranked
snippets with scores and source files. No answer is generated; use
"vstore chat" for grounded answers.

Examples:
  vstore file retrieve vs_abc123 "token budget for chunking"
  vstore file retrieve vs_abc123 "quarterly revenue" --top-k 5 --human`,
	Args: cobra.ExactArgs(2),
	Run:  runFileRetrieve,
}

func init() {
	fileRetrieveCmd.Flags().IntVar(&fileRetrieveTopK, "top-k", openai.DefaultSearchLimit, "Maximum number of snippets")
	fileCmd.AddCommand(fileRetrieveCmd)
}

func runFileRetrieve(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	resp, err := svc.SemanticRetrieve(cmd.Context(), args[0], args[1], fileRetrieveTopK)
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		printSnippetsHuman(resp.Data)
		return
	}
	outputJSON(resp)
}
