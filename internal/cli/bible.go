package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/llm"
	"github.com/divinelang/divinepl/internal/pipeline"
	"github.com/divinelang/divinepl/internal/scripture"
)

var (
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// bibleCmd represents the bible command
var bibleCmd = &cobra.Command{
	Use:   "bible <topic>...",
	Short: "Search the scriptures for divine programming guidance",
	Long: `Bible searches the verse corpus for a topic and prints the canonical
programming guidance that goes with it. With --llm, additional
inspiration is revealed through a language model. Inspiration is flavor
only and never affects confession or judgment.

Example:
  divinepl bible errors
  divinepl bible "infinite loops"
  divinepl bible functions --llm --llm-provider openai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBible,
}

func init() {
	rootCmd.AddCommand(bibleCmd)

	bibleCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable model-generated inspiration")
	bibleCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "inspiration provider (openai, anthropic, ollama)")
	bibleCmd.Flags().StringVar(&llmModel, "llm-model", "", "model name (provider default if empty)")
}

func runBible(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	cfg := buildConfig()

	runtime := pipeline.NewRuntime(cfg)
	console := runtime.Console()

	console.SearchHeader(topic)

	matches := scripture.Search(topic)
	var verseLines []string
	if len(matches) == 0 {
		console.NoVerse()
	}
	for _, match := range matches {
		exact := match.Topic == strings.ToLower(topic)
		console.Verse(match.Topic, match.Verse, exact)
		verseLines = append(verseLines, fmt.Sprintf("[%s] %s", match.Topic, match.Verse))
	}

	guidance := scripture.Guidance(topic)
	console.Guidance(guidance)

	if !llmEnabled {
		return nil
	}

	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LLM.Timeout)*time.Second)
	defer cancel()

	resp, err := provider.Inspire(ctx, llm.InspireRequest{
		Topic:    topic,
		Verses:   verseLines,
		Guidance: guidance,
		Model:    cfg.LLM.Model,
	})
	if err != nil {
		// Inspiration is optional; the search already succeeded
		console.Notef("Inspiration could not be revealed: %v", err)
		return nil
	}

	console.Inspiration(resp.Inspiration, resp.Model)
	return nil
}
