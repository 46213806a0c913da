package main

import (
	"os"

	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var (
	fileUploadAttrs        []string
	fileUploadMaxChunkSize int
	fileUploadChunkOverlap int
)

var fileUploadCmd = &cobra.Command{
	Use:     "upload <store-id> <source>...",
	Aliases: []string{"upload-and-add"},
	Short:   "Upload sources and attach them to a store",
	Long: `Upload one or more sources (local paths or URLs) and attach them to
the vector store with a static chunking strategy. A source whose
standardized name already exists in the store is rejected.

With multiple sources, uploads run concurrently and each source reports
its own outcome; one failure does not abort the batch.

Examples:
  vstore file upload vs_abc123 notes.pdf
  vstore file upload vs_abc123 a.md b.md --attr project=demo
  vstore file upload vs_abc123 https://example.com/paper.pdf --max-chunk-size 1200 --chunk-overlap 300`,
	Args: cobra.MinimumNArgs(2),
	Run:  runFileUpload,
}

func init() {
	fileUploadCmd.Flags().StringArrayVar(&fileUploadAttrs, "attr", nil, "File attribute as key=value (repeatable)")
	fileUploadCmd.Flags().IntVar(&fileUploadMaxChunkSize, "max-chunk-size", rag.DefaultMaxChunkSize, "Max tokens per chunk (100-4096)")
	fileUploadCmd.Flags().IntVar(&fileUploadChunkOverlap, "chunk-overlap", rag.DefaultChunkOverlap, "Token overlap between chunks (at most half the chunk size)")
	fileCmd.AddCommand(fileUploadCmd)
}

func runFileUpload(cmd *cobra.Command, args []string) {
	attrs, err := parseAttrs(fileUploadAttrs)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	cfg := mustLoadConfig()
	logger := newLogger()
	svc := rag.NewFileService(newBackend(cfg, logger), logger)

	storeID, sources := args[0], args[1:]

	if len(sources) == 1 {
		attached, err := svc.UploadAndAdd(cmd.Context(), storeID, sources[0], attrs, fileUploadMaxChunkSize, fileUploadChunkOverlap)
		if err != nil {
			exitWithServiceError(err)
		}
		if humanOutput {
			outputHuman("Attached %s (%s)\n", attached.ID, attached.Status)
			return
		}
		outputJSON(attached)
		return
	}

	results := svc.UploadAndAddAll(cmd.Context(), storeID, sources, attrs, fileUploadMaxChunkSize, fileUploadChunkOverlap)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	if humanOutput {
		for _, r := range results {
			if r.Error != "" {
				outputHuman("FAIL  %s: %s\n", r.Source, r.Error)
			} else {
				outputHuman("ok    %s -> %s (%s)\n", r.Source, r.StoreFileID, r.Status)
			}
		}
		outputHuman("\n%d of %d sources attached\n", len(results)-failed, len(results))
	} else {
		outputJSON(results)
	}

	if failed == len(results) {
		os.Exit(ExitError)
	}
}
