// Package assistant wraps the hosted document-assistant vendor behind one
// interface with a real and a mock implementation.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// DoneSentinel is the terminal chunk content on every stream. It is appended
// exactly once by the client, never by the vendor.
const DoneSentinel = "[DONE]"

// Chunk is one unit of incremental answer text. A non-nil Err means the
// stream died upstream; no further chunks follow it.
type Chunk struct {
	Content string
	Err     error
}

// UploadOutcome is the vendor's acknowledgement of a file upload.
type UploadOutcome struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Client is the assistant contract shared by the real and mock
// implementations. Streaming channels are always closed after the
// DoneSentinel chunk (or an error chunk).
type Client interface {
	UploadFile(ctx context.Context, path string) (*UploadOutcome, error)
	Chat(ctx context.Context, message string) (any, error)
	ChatStream(ctx context.Context, message string) (<-chan Chunk, error)
	ChatWithHistory(ctx context.Context, messages []string) (any, error)
	ChatWithHistoryStream(ctx context.Context, messages []string) (<-chan Chunk, error)
}

var (
	// ErrNotConfigured means no vendor credential was available at startup.
	ErrNotConfigured = errors.New("assistant not configured")

	// ErrFileNotFound means the local upload path did not exist, checked
	// before any vendor call is attempted.
	ErrFileNotFound = errors.New("file not found")
)

// UpstreamError carries a vendor-side failure verbatim. Upstream calls are
// never retried.
type UpstreamError struct {
	Op      string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("assistant %s failed: %s", e.Op, e.Message)
}

// ExtractContent reduces the vendor's dynamically shaped chat responses to a
// plain string. It understands the keyed-map form ({"message": {"content":
// ...}} or flat {"content": ...}) and the SDK's attribute form, and falls
// back to a stringified representation. It never fails.
func ExtractContent(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]any:
		if msg, ok := v["message"].(map[string]any); ok {
			if s, ok := msg["content"].(string); ok {
				return s
			}
		}
		if s, ok := v["content"].(string); ok {
			return s
		}
	case *llms.ContentResponse:
		if v != nil && len(v.Choices) > 0 {
			return v.Choices[0].Content
		}
	}
	return fmt.Sprintf("%v", raw)
}
