package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skin-advisor",
	Short: "A skincare consultation service with AI face analysis",
	Long: `Skin Advisor serves a browser-based skincare consultation: a short quiz,
a face photo scan that detects visible skin issues, and product
recommendations matched against those issues.

The scan can run on a local heuristic or delegate to an AI vision model
(OpenAI, Gemini, Ollama).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
