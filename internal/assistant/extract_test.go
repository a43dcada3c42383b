package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestExtractContentShapes(t *testing.T) {
	keyed := map[string]any{
		"message": map[string]any{"content": "the answer"},
	}
	flat := map[string]any{"content": "the answer"}
	attr := &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "the answer"}},
	}

	// Equivalent content extracts to the same string regardless of shape.
	assert.Equal(t, "the answer", ExtractContent(keyed))
	assert.Equal(t, "the answer", ExtractContent(flat))
	assert.Equal(t, "the answer", ExtractContent(attr))
	assert.Equal(t, "the answer", ExtractContent("the answer"))
}

func TestExtractContentUnknownShape(t *testing.T) {
	// Unrecognized shapes stringify instead of failing.
	assert.NotEmpty(t, ExtractContent(struct{ X int }{42}))
	assert.NotEmpty(t, ExtractContent(nil))
	assert.NotEmpty(t, ExtractContent(map[string]any{"unexpected": true}))
	assert.NotEmpty(t, ExtractContent(&llms.ContentResponse{}))
}
