package main

import (
	"github.com/ducnh/vstore/internal/config"
	"github.com/ducnh/vstore/internal/openai"
	"github.com/ducnh/vstore/internal/rag"
	"github.com/spf13/cobra"
)

var (
	chatModel          string
	chatTopK           int
	chatScoreThreshold float64
	chatInstructions   string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask grounded questions over a store",
	Long: `Commands for question answering grounded in a vector store.

Answers cite the files they draw from. "chat start" opens a new
conversation; "chat continue" keeps asking within an existing one.`,
}

func init() {
	chatCmd.PersistentFlags().StringVar(&chatModel, "model", "", "Model for answer generation (defaults to config or "+openai.DefaultModel+")")
	chatCmd.PersistentFlags().IntVar(&chatTopK, "top-k", 0, "Maximum snippets fed to the model (0 uses the provider default)")
	chatCmd.PersistentFlags().Float64Var(&chatScoreThreshold, "score-threshold", 0, "Minimum ranking score for retrieved snippets")
	chatCmd.PersistentFlags().StringVar(&chatInstructions, "instructions", "", "Override the default grounding instructions")
	rootCmd.AddCommand(chatCmd)
}

// chatAskOptions builds AskOptions from the chat flags and config.
func chatAskOptions(cfg *config.Config) rag.AskOptions {
	model := chatModel
	if model == "" {
		model = cfg.Model
	}
	return rag.AskOptions{
		Model:          model,
		TopK:           chatTopK,
		ScoreThreshold: chatScoreThreshold,
		Instructions:   chatInstructions,
	}
}
