package translation

import (
	"context"
	"fmt"
	"strings"

	"wordsaver/internal/domain"

	"github.com/sashabaranov/go-openai"
)

// OpenAITranslator translates words with a chat completion model
type OpenAITranslator struct {
	client *openai.Client
	model  string
	source string
	target string
}

// NewOpenAITranslator creates a translator from an OpenAI client config
func NewOpenAITranslator(cfg openai.ClientConfig, model, source, target string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		source: source,
		target: target,
	}
}

// Translate returns the model's translation of word
func (t *OpenAITranslator) Translate(ctx context.Context, word string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the word '%s' from language code %s to language code %s. Respond with only the translation, nothing else.",
					word, t.source, t.target,
				),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI API error: %v", domain.ErrTranslation, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no translation returned", domain.ErrTranslation)
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("%w: empty translation", domain.ErrTranslation)
	}
	return translation, nil
}
