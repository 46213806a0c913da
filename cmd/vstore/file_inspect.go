package main

import (
	"github.com/ducnh/vstore/internal/inspect"
	"github.com/spf13/cobra"
)

var fileInspectAlgo string

var fileInspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Inspect a local file before upload",
	Long: `Report a local file's size, detected MIME type, content digest,
line count (text) or page count (PDF), and whether the type is
supported for indexing. Runs entirely offline.

Examples:
  vstore file inspect notes.md
  vstore file inspect paper.pdf --algo blake2b --human`,
	Args: cobra.ExactArgs(1),
	Run:  runFileInspect,
}

func init() {
	fileInspectCmd.Flags().StringVar(&fileInspectAlgo, "algo", inspect.AlgoSHA256, "Digest algorithm (sha256 or blake2b)")
	fileCmd.AddCommand(fileInspectCmd)
}

func runFileInspect(cmd *cobra.Command, args []string) {
	report, err := inspect.File(args[0], fileInspectAlgo)
	if err != nil {
		exitWithServiceError(err)
	}

	if humanOutput {
		outputHuman("%s\n", report.Path)
		outputHuman("  Name: %s\n", report.Name)
		outputHuman("  Size: %s\n", formatBytes(report.SizeBytes))
		outputHuman("  Type: %s\n", report.MIME)
		outputHuman("  %s: %s\n", report.Algorithm, report.Digest)
		if report.Pages > 0 {
			outputHuman("  Pages: %d\n", report.Pages)
		} else {
			outputHuman("  Lines: %d\n", report.Lines)
		}
		outputHuman("  Indexable: %v\n", report.Indexable)
		return
	}
	outputJSON(report)
}
