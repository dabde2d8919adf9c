package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nhasan-dev/finarch/internal/ledger"
)

// Fallback is shown whenever the advice path fails for any reason. Advice is
// decorative, never load-bearing.
const Fallback = "The market is quiet. Continue your strategic transaction tracking."

// adviceWindow caps how many trailing transactions are sent upstream.
const adviceWindow = 10

const systemPrompt = "You are the Personal Finance Architect. Be concise, professional, and strategic. Focus on wealth optimization and asset allocation."

// ErrUnavailable is returned by Parse when no API credential is configured.
var ErrUnavailable = errors.New("advice service not configured")

// Completer is the slice of the chat-completion client the service needs.
// *openai.Client satisfies it.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient builds a chat-completion client for the configured endpoint.
// Returns nil when no credential is set; the service then degrades to the
// fallback text.
func NewClient(apiKey, baseURL string) Completer {
	if apiKey == "" {
		slog.Warn("advice API key not configured; advice and parsing disabled")
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return openai.NewClientWithConfig(cfg)
}

type Service struct {
	client Completer
	model  string
}

func NewService(client Completer, model string) *Service {
	return &Service{client: client, model: model}
}

// Advise sends a trailing window of transactions upstream and returns the
// model's free-text response. Any failure yields the fixed fallback string;
// this method never returns an error.
func (s *Service) Advise(ctx context.Context, txs []*ledger.Transaction) string {
	if s.client == nil {
		return Fallback
	}

	window := txs
	if len(window) > adviceWindow {
		window = window[len(window)-adviceWindow:]
	}

	payload, err := json.Marshal(window)
	if err != nil {
		slog.Error("encoding advice payload", "error", err)
		return Fallback
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Analyze these transactions and provide architectural financial advice: %s", payload),
			},
		},
	})
	if err != nil {
		slog.Error("advice request failed", "error", err)
		return Fallback
	}

	if len(resp.Choices) == 0 {
		return Fallback
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Fallback
	}

	return text
}

// ParsedEntry is the structured guess the model extracts from raw text.
// Amount is a display-currency value, same as manual form input.
type ParsedEntry struct {
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Kind        ledger.Kind `json:"kind"`
	Category    string      `json:"category"`
}

var parseSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"description": {"type": "string"},
		"amount": {"type": "number"},
		"kind": {"type": "string", "enum": ["INCOME", "EXPENSE"]},
		"category": {"type": "string"}
	},
	"required": ["description", "amount", "kind", "category"],
	"additionalProperties": false
}`)

// Parse asks the model to extract a transaction from free text. A malformed
// or non-JSON response is total failure: nil result, error returned.
func (s *Service) Parse(ctx context.Context, text string) (*ParsedEntry, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}

	prompt := fmt.Sprintf(
		"Parse the following financial transaction text: %q. "+
			"Extract the amount, description, and determine if it is an INCOME or an EXPENSE. "+
			"Current date is %s.",
		text, time.Now().UTC().Format(time.DateOnly),
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "transaction",
				Schema: parseSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		slog.Error("parse request failed", "error", err)
		return nil, fmt.Errorf("parse request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("parse request: empty response")
	}

	var entry ParsedEntry
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &entry); err != nil {
		slog.Error("parse response is not valid JSON", "error", err)
		return nil, fmt.Errorf("decoding parse response: %w", err)
	}

	if entry.Kind != ledger.KindIncome && entry.Kind != ledger.KindExpense {
		return nil, fmt.Errorf("parse response: unknown kind %q", entry.Kind)
	}

	return &entry, nil
}
