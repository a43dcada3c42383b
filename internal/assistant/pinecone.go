package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/manualdesk/nexon-assist/internal/prompt"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// streamBuffer bounds how far chunk production may run ahead of the consumer.
const streamBuffer = 16

// PineconeClient talks to a hosted Pinecone Assistant. Chat goes through the
// assistant's OpenAI-compatible completions endpoint; file uploads use the
// assistant file API directly.
type PineconeClient struct {
	llm    llms.Model
	apiKey string
	name   string
	host   string
	http   *http.Client
	logger *zap.Logger
}

// NewPinecone builds the real client. The credential is required; callers
// should fall back to degraded mode (or the mock) when this fails.
func NewPinecone(apiKey, host, name, model string, logger *zap.Logger) (*PineconeClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(fmt.Sprintf("%s/assistant/chat/%s", host, name)),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("assistant client initialized",
		zap.String("assistant", name),
		zap.String("model", model))

	return &PineconeClient{
		llm:    llm,
		apiKey: apiKey,
		name:   name,
		host:   host,
		http:   &http.Client{Timeout: 5 * time.Minute},
		logger: logger,
	}, nil
}

// Chat sends a single enhanced question and blocks for the complete answer.
// The raw response is returned; callers normalize it with ExtractContent.
func (c *PineconeClient) Chat(ctx context.Context, message string) (any, error) {
	enhanced := prompt.Enhance(message)
	c.logger.Info("sending message",
		zap.String("preview", preview(message)),
		zap.Int("prompt_tokens", prompt.CountTokens(enhanced)))

	return c.generate(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, enhanced),
	})
}

// ChatWithHistory forwards the ordered conversation untouched: no reordering,
// no dedup, no truncation, and no prompt enhancement.
func (c *PineconeClient) ChatWithHistory(ctx context.Context, messages []string) (any, error) {
	c.logger.Info("sending conversation", zap.Int("messages", len(messages)))
	return c.generate(ctx, toContent(messages))
}

func (c *PineconeClient) ChatStream(ctx context.Context, message string) (<-chan Chunk, error) {
	enhanced := prompt.Enhance(message)
	c.logger.Info("sending streaming message",
		zap.String("preview", preview(message)),
		zap.Int("prompt_tokens", prompt.CountTokens(enhanced)))

	return c.stream(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, enhanced),
	}), nil
}

func (c *PineconeClient) ChatWithHistoryStream(ctx context.Context, messages []string) (<-chan Chunk, error) {
	c.logger.Info("sending streaming conversation", zap.Int("messages", len(messages)))
	return c.stream(ctx, toContent(messages)), nil
}

func (c *PineconeClient) generate(ctx context.Context, msgs []llms.MessageContent) (any, error) {
	resp, err := c.llm.GenerateContent(ctx, msgs)
	if err != nil {
		return nil, &UpstreamError{Op: "chat", Message: err.Error()}
	}
	return resp, nil
}

// stream relays vendor chunks into a bounded channel and appends the
// DoneSentinel once the vendor's sequence is exhausted. Consumer cancellation
// stops production.
func (c *PineconeClient) stream(ctx context.Context, msgs []llms.MessageContent) <-chan Chunk {
	out := make(chan Chunk, streamBuffer)

	go func() {
		defer close(out)

		_, err := c.llm.GenerateContent(ctx, msgs,
			llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				select {
				case out <- Chunk{Content: string(chunk)}:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			}))

		if ctx.Err() != nil {
			// Nobody is listening anymore; stop quietly.
			return
		}
		if err != nil {
			c.logger.Error("streaming chat failed", zap.Error(err))
			select {
			case out <- Chunk{Err: &UpstreamError{Op: "chat", Message: err.Error()}}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case out <- Chunk{Content: DoneSentinel}:
		case <-ctx.Done():
		}
	}()

	return out
}

// UploadFile sends a local file to the assistant's file endpoint. The path is
// checked locally first; vendor failures surface verbatim and are not retried.
func (c *PineconeClient) UploadFile(ctx context.Context, path string) (*UploadOutcome, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing upload form: %w", err)
	}

	url := fmt.Sprintf("%s/assistant/files/%s", c.host, c.name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Info("uploading file", zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "upload", Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Op:      "upload",
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var outcome UploadOutcome
	if err := json.Unmarshal(respBody, &outcome); err != nil {
		return nil, &UpstreamError{Op: "upload", Message: "unparseable response: " + string(respBody)}
	}

	c.logger.Info("file uploaded",
		zap.String("vendor_id", outcome.ID),
		zap.String("status", outcome.Status))
	return &outcome, nil
}

func toContent(messages []string) []llms.MessageContent {
	parts := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, llms.TextParts(schema.ChatMessageTypeHuman, m))
	}
	return parts
}

func preview(message string) string {
	if len(message) > 50 {
		return message[:50] + "..."
	}
	return message
}
