// Package llm generates optional divine inspiration for the bible command.
// Inspirations are flavor only: they never influence classification,
// commandment checking, or confession.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for inspiration providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Inspire generates divine coding inspiration for a topic
	Inspire(ctx context.Context, req InspireRequest) (*InspireResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// InspireRequest contains the input for inspiration generation
type InspireRequest struct {
	// Topic the developer asked about
	Topic string

	// Verses found for the topic, already rendered as display lines
	Verses []string

	// Guidance is the fixed programming guidance for the topic
	Guidance []string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// InspireResponse contains the provider's output
type InspireResponse struct {
	// Inspiration is the generated text
	Inspiration string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds inspiration provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 500,
	}
}

const systemPrompt = "You are the voice of DivinePL, a liturgical programming language. " +
	"You give short, practical programming advice in the register of the King James Bible. " +
	"You never invent new language keywords beyond bless, genesis, miracle, covenant, confess, and revelation."

// BuildPrompt constructs the default inspiration prompt for a topic
func BuildPrompt(req InspireRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A developer seeks divine guidance on the topic %q.\n\n", req.Topic)

	if len(req.Verses) > 0 {
		b.WriteString("Scripture already found for this topic:\n")
		for _, verse := range req.Verses {
			fmt.Fprintf(&b, "- %s\n", verse)
		}
		b.WriteString("\n")
	}

	if len(req.Guidance) > 0 {
		b.WriteString("Canonical DivinePL guidance:\n")
		for _, line := range req.Guidance {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("Offer 2-3 sentences of additional inspiration that build on the canon above. " +
		"Do not contradict the canonical guidance, and do not claim to lint or judge any code.")

	return b.String()
}
