package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Canned answers served by the mock, one per keyword family.
var mockResponses = []string{
	"Hello! I'm your TATA Nexon expert assistant. I'm here to help you with everything about your SUV - from safety features to maintenance schedules, engine specifications, and troubleshooting. What would you like to know?",

	"The TATA Nexon has earned a 5-Star NCAP rating with comprehensive safety features including 6 airbags, ABS with EBD, Electronic Stability Control (ESC), Rear Parking Sensors, and much more. Would you like detailed information about any specific safety feature?",

	"TATA Nexon offers both petrol and diesel engine options. The 1.2L Revotron petrol engine delivers 120 PS power and 170 Nm torque, while the 1.5L Revotorq diesel engine provides 110 PS power and 260 Nm torque. Both engines come with manual and AMT transmission options.",

	"The recommended maintenance schedule for TATA Nexon includes service every 10,000 km or 12 months. Regular maintenance includes engine oil change, filter replacements, brake inspection, and comprehensive vehicle check-up. Following the schedule ensures optimal performance and warranty coverage.",
}

// MockClient is the offline stand-in for the real assistant. It answers from
// a fixed set of canned texts and simulates streaming by word-chunking them,
// so everything downstream of the Client interface behaves identically.
type MockClient struct {
	logger *zap.Logger
}

func NewMock(logger *zap.Logger) *MockClient {
	logger.Info("mock assistant initialized")
	return &MockClient{logger: logger}
}

// Chat returns the canned answer in the vendor's keyed-map response shape so
// it exercises the same ExtractContent path as a real response.
func (c *MockClient) Chat(ctx context.Context, message string) (any, error) {
	c.logger.Info("mock chat", zap.String("preview", preview(message)))
	return map[string]any{"content": c.pick(message)}, nil
}

func (c *MockClient) ChatWithHistory(ctx context.Context, messages []string) (any, error) {
	return c.Chat(ctx, lastMessage(messages))
}

func (c *MockClient) ChatStream(ctx context.Context, message string) (<-chan Chunk, error) {
	c.logger.Info("mock streaming chat", zap.String("preview", preview(message)))
	return c.stream(ctx, c.pick(message)), nil
}

func (c *MockClient) ChatWithHistoryStream(ctx context.Context, messages []string) (<-chan Chunk, error) {
	return c.ChatStream(ctx, lastMessage(messages))
}

// UploadFile is a stub: the local path is still validated, but nothing is
// sent anywhere.
func (c *MockClient) UploadFile(ctx context.Context, path string) (*UploadOutcome, error) {
	c.logger.Info("mock upload", zap.String("path", path))
	return &UploadOutcome{ID: "mock-file", Name: path, Status: "MockProcessed"}, nil
}

// stream yields the answer one space-prefixed word at a time (first word
// unprefixed), then the DoneSentinel, so concatenating chunk contents
// reproduces the answer exactly.
func (c *MockClient) stream(ctx context.Context, text string) <-chan Chunk {
	out := make(chan Chunk, streamBuffer)

	go func() {
		defer close(out)
		for i, word := range strings.Fields(text) {
			// Checked before each send so cancellation wins even when the
			// consumer is still draining buffered chunks.
			if ctx.Err() != nil {
				return
			}
			chunk := word
			if i > 0 {
				chunk = " " + word
			}
			select {
			case out <- Chunk{Content: chunk}:
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
		select {
		case out <- Chunk{Content: DoneSentinel}:
		case <-ctx.Done():
		}
	}()

	return out
}

// pick routes the message through the same keyword families the classifier
// uses, falling back to an echo-style answer.
func (c *MockClient) pick(message string) string {
	lower := strings.ToLower("TATA Nexon Query: " + message)

	switch {
	case containsAny(lower, "safety", "airbag", "ncap", "protection"):
		return mockResponses[1]
	case containsAny(lower, "engine", "petrol", "diesel", "performance", "power"):
		return mockResponses[2]
	case containsAny(lower, "maintenance", "service", "schedule", "oil"):
		return mockResponses[3]
	case containsAny(lower, "hello", "hi", "help", "start"):
		return mockResponses[0]
	default:
		return fmt.Sprintf("Thank you for your question about '%s...'. As your TATA Nexon expert, I'd be happy to help! This is a mock response for deployment testing. The full AI assistant will provide comprehensive, detailed answers about all aspects of your TATA Nexon SUV including specifications, features, maintenance, troubleshooting, and more.", preview50(message))
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func lastMessage(messages []string) string {
	if len(messages) == 0 {
		return "Hello"
	}
	return messages[len(messages)-1]
}

func preview50(message string) string {
	if len(message) > 50 {
		return message[:50]
	}
	return message
}
