package gateway

import (
	"context"
	"encoding/json"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client talks to the Gemini API. It implements Gateway.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a Gemini-backed gateway client.
func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (client *Client, err error) {
	if apiKey == "" {
		err = errors.New("gemini api key is required")
		return client, err
	}

	if model == "" {
		model = DefaultModel
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	var inner *genai.Client
	inner, err = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create genai client")
		return client, err
	}

	client = &Client{
		client: inner,
		model:  model,
		logger: logger,
	}
	return client, err
}

// GenerateStructured sends a prompt with a response schema and returns the
// raw JSON text the model produced.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (raw json.RawMessage, err error) {
	c.logger.Debug("structured generation request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	var resp *genai.GenerateContentResponse
	resp, err = c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		err = &RemoteError{Op: "structured generation failed", Cause: err}
		return raw, err
	}

	text := resp.Text()
	if text == "" {
		err = &RemoteError{Op: "structured generation returned an empty response"}
		return raw, err
	}

	raw = json.RawMessage(text)
	return raw, err
}

// GenerateGrounded sends a prompt through Google Search grounding and
// returns the response text plus any web citations attached to it.
func (c *Client) GenerateGrounded(ctx context.Context, prompt string) (text string, sources []career.Source, err error) {
	c.logger.Debug("grounded generation request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	thinkingBudget := int32(0)

	var resp *genai.GenerateContentResponse
	resp, err = c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingBudget:  &thinkingBudget,
		},
	})
	if err != nil {
		err = &RemoteError{Op: "grounded generation failed", Cause: err}
		return text, sources, err
	}

	text = resp.Text()
	if text == "" {
		err = &RemoteError{Op: "grounded generation returned an empty response"}
		return text, sources, err
	}

	sources = extractGroundingSources(resp)

	c.logger.Debug("grounded generation response",
		zap.Int("text_len", len(text)),
		zap.Int("sources", len(sources)))

	return text, sources, err
}

// NewChatSession establishes a Gemini chat scoped by a system instruction.
func (c *Client) NewChatSession(ctx context.Context, systemInstruction string) (session ChatSession, err error) {
	var chat *genai.Chat
	chat, err = c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}, nil)
	if err != nil {
		err = &RemoteError{Op: "failed to create chat session", Cause: err}
		return session, err
	}

	session = &genaiChatSession{chat: chat, logger: c.logger}
	return session, err
}

// genaiChatSession adapts a genai chat to the ChatSession interface.
type genaiChatSession struct {
	chat   *genai.Chat
	logger *zap.Logger
}

// SendMessageStream streams the model's reply, invoking onDelta for each
// text chunk in arrival order. Deltas already delivered stay delivered even
// when the stream fails partway through.
func (s *genaiChatSession) SendMessageStream(ctx context.Context, message string, onDelta func(delta string)) (err error) {
	for resp, streamErr := range s.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
		if streamErr != nil {
			err = &RemoteError{Op: "chat stream failed", Cause: streamErr}
			return err
		}

		delta := resp.Text()
		if delta != "" {
			onDelta(delta)
		}
	}

	return err
}

// extractGroundingSources pulls web citations out of grounding metadata,
// skipping chunks without both a title and a URI.
func extractGroundingSources(resp *genai.GenerateContentResponse) (sources []career.Source) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}

	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		sources = append(sources, career.Source{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}

	return sources
}
