package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig configures the OpenAI-backed provider. BaseURL supports
// OpenAI-compatible gateways.
type OpenAIConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	SpeechToTextModel string
	MaxTokens         int
	Timeout           time.Duration
}

// OpenAIProvider implements Provider using the OpenAI SDK: chat completions
// with JSON-schema response format for generation, Whisper for transcription.
type OpenAIProvider struct {
	client            *openai.Client
	model             string
	speechToTextModel string
	maxTokens         int
	timeout           time.Duration
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenAIProvider{
		client:            openai.NewClientWithConfig(config),
		model:             cfg.Model,
		speechToTextModel: cfg.SpeechToTextModel,
		maxTokens:         cfg.MaxTokens,
		timeout:           timeout,
	}, nil
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string, schema SchemaKind) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: p.maxTokens,
	}

	if def := schemaFor(schema); def != nil {
		schemaBytes, err := json.Marshal(def.Definition)
		if err != nil {
			return "", fmt.Errorf("marshal schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   def.Name,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) TranscribeAudio(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.speechToTextModel,
		FilePath: path,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if resp.Text == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("empty transcription")}
	}
	return resp.Text, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrProviderUnavailable{Err: fmt.Errorf("rate limited: %w", err)}
	}
	return &ErrProviderUnavailable{Err: err}
}
