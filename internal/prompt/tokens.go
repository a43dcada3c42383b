package prompt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encOnce sync.Once
	encoder *tiktoken.Tiktoken
)

// CountTokens returns the cl100k_base token count of text, for logging what a
// composed prompt costs upstream. Returns 0 when the encoding is unavailable
// (first use downloads the BPE ranks).
func CountTokens(text string) int {
	encOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoder = enc
		}
	})
	if encoder == nil {
		return 0
	}
	return len(encoder.Encode(text, nil, nil))
}
