package main

import (
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var fileFindCmd = &cobra.Command{
	Use:     "find <store-id> <file-name>",
	Aliases: []string{"find-id-by-name"},
	Short:   "Resolve a file name to its store file ID",
	Long: `Find the store file whose file_name attribute matches the argument
(case-insensitive). Exits with code 3 when no file matches; multiple
matches are an error listing the candidate IDs.

Examples:
  vstore file find vs_abc123 quarterly_report.pdf`,
	Args: cobra.ExactArgs(2),
	Run:  runFileFind,
}

func init() {
	fileCmd.AddCommand(fileFindCmd)
}

// FileIDResponse is the response for commands that resolve a file ID.
type FileIDResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
}

func runFileFind(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	id, err := svc.FindIDByName(cmd.Context(), args[0], args[1])
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("%s\n", id)
		return
	}
	outputJSON(FileIDResponse{ID: id, FileName: args[1]})
}
