package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kozaktomas/skin-advisor/internal/client"
	"github.com/kozaktomas/skin-advisor/internal/recommend"
)

var consultCmd = &cobra.Command{
	Use:   "consult <photo-path>",
	Short: "Run a consultation from the terminal",
	Long: `Run a full skincare consultation against a running Skin Advisor server:
answer the opening question, upload a face photo for analysis, answer the
follow-up questions and get product recommendations.

Example:
  skin-advisor consult face.jpg
  skin-advisor consult --server http://advisor.example.com face.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runConsult,
}

func init() {
	rootCmd.AddCommand(consultCmd)
	consultCmd.Flags().String("server", "http://localhost:8000", "Base URL of the Skin Advisor server")
}

// readPhoto reads the photo file with a byte progress bar.
func readPhoto(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open photo %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("cannot stat photo %s: %w", path, err)
	}

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetDescription("Reading photo"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), file); err != nil {
		return nil, fmt.Errorf("cannot read photo %s: %w", path, err)
	}
	fmt.Println()
	return buf.Bytes(), nil
}

// promptAnswer asks one follow-up question until the input resolves to a
// valid answer. An empty line skips the question.
func promptAnswer(reader *bufio.Reader, text string, options []string) (string, bool) {
	for {
		fmt.Printf("\n%s\n", text)
		if len(options) > 0 {
			fmt.Printf("  Options: %s\n", strings.Join(options, ", "))
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Println("Skipped.")
			return "", false
		}

		if len(options) == 0 {
			return line, true
		}
		if answer, ok := client.MatchOption(options, line); ok {
			return answer, true
		}
		fmt.Printf("Please answer with one of: %s\n", strings.Join(options, ", "))
	}
}

func runConsult(cmd *cobra.Command, args []string) error {
	photoPath := args[0]
	server := mustGetString(cmd, "server")

	api := client.NewAPI(server)
	state := client.NewState()
	reader := bufio.NewReader(os.Stdin)
	title := cases.Title(language.English)
	ctx := cmd.Context()

	question, err := api.StartQuiz(ctx)
	if err != nil {
		return fmt.Errorf("failed to start the quiz: %w", err)
	}

	fmt.Printf("%s\n> ", question)
	concern, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	concern = strings.TrimSpace(concern)

	state, err = client.SubmitConcern(state, concern)
	if err != nil {
		return err
	}

	imageData, err := readPhoto(photoPath)
	if err != nil {
		return err
	}

	fmt.Println("Analyzing photo...")
	result, err := api.Scan(ctx, filepath.Base(photoPath), imageData)
	if err != nil {
		return fmt.Errorf("face scan failed: %w", err)
	}

	state, err = client.ApplyScanResult(state, result)
	if err != nil {
		return err
	}

	fmt.Printf("\nDetected issues:\n")
	for _, issue := range result.Issues {
		fmt.Printf("  - %s\n", title.String(issue))
	}

	for _, q := range result.Questions {
		answer, ok := promptAnswer(reader, q.Text, q.Options)
		if !ok {
			continue
		}

		state, err = state.AnswerQuestion(q.ID, answer)
		if err != nil {
			fmt.Printf("Answer not recorded: %v\n", err)
		}
	}

	products, err := api.Recommend(ctx, recommend.Request{
		Issues:  result.Issues,
		Answers: state.Answers,
	})
	if err != nil {
		return fmt.Errorf("failed to get recommendations: %w", err)
	}

	state, err = client.ApplyRecommendations(state, products)
	if err != nil {
		return err
	}

	if len(state.Products) == 0 {
		fmt.Println("\nNo matching products found.")
		return nil
	}

	fmt.Printf("\nRecommended products:\n")
	for i, product := range state.Products {
		fmt.Printf("%d. %s\n", i+1, product.Name)
		if len(product.ConcernTags) > 0 {
			fmt.Printf("   Targets: %s\n", strings.Join(product.ConcernTags, ", "))
		}
		if product.URL != "" {
			fmt.Printf("   %s\n", product.URL)
		}
	}
	return nil
}
