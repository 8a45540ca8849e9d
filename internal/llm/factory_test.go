package llm

import (
	"strings"
	"testing"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider with empty provider: %v", err)
	}
	if provider != nil {
		t.Error("expected nil provider when no provider is configured")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "oracle-of-delphi"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "oracle-of-delphi") {
		t.Errorf("error should name the unknown provider, got: %v", err)
	}
}

func TestNewProviderAnthropicRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Provider: "anthropic"})
	if err == nil {
		t.Fatal("expected error when Anthropic API key is missing")
	}
}

func TestNewProviderOllamaNeedsNoKey(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("NewProvider(ollama): %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("provider name = %q, want ollama", provider.Name())
	}
}

func TestBuildPromptIncludesTopicAndCanon(t *testing.T) {
	prompt := BuildPrompt(InspireRequest{
		Topic:    "patience",
		Verses:   []string{"Be patient in tribulation"},
		Guidance: []string{"Wait upon asynchronous operations with await"},
	})

	if !strings.Contains(prompt, `"patience"`) {
		t.Error("prompt should quote the topic")
	}
	if !strings.Contains(prompt, "Be patient in tribulation") {
		t.Error("prompt should include found verses")
	}
	if !strings.Contains(prompt, "Wait upon asynchronous operations") {
		t.Error("prompt should include canonical guidance")
	}
}

func TestBuildPromptOmitsEmptySections(t *testing.T) {
	prompt := BuildPrompt(InspireRequest{Topic: "silence"})

	if strings.Contains(prompt, "Scripture already found") {
		t.Error("prompt should omit the verses section when none were found")
	}
	if strings.Contains(prompt, "Canonical DivinePL guidance") {
		t.Error("prompt should omit the guidance section when none applies")
	}
}
