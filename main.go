// Connectivity smoke test: asks the configured assistant one question end to
// end and prints the answer. Run with ASSISTANT_MOCK=true for an offline check.
package main

import (
	"context"
	"fmt"

	"github.com/manualdesk/nexon-assist/internal/assistant"
	"github.com/manualdesk/nexon-assist/internal/config"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	var client assistant.Client
	if cfg.UseMock {
		client = assistant.NewMock(logger)
	} else {
		real, err := assistant.NewPinecone(cfg.APIKey, cfg.AssistantHost, cfg.AssistantName, cfg.Model, logger)
		if err != nil {
			logger.Fatal("failed to initialize assistant", zap.Error(err))
		}
		client = real
	}

	ctx := context.Background()

	resp, err := client.Chat(ctx, "What is the service schedule for the Nexon?")
	if err != nil {
		logger.Fatal("chat failed", zap.Error(err))
	}
	fmt.Println(assistant.ExtractContent(resp))

	fmt.Println("\n--- streaming ---")
	chunks, err := client.ChatStream(ctx, "What safety features does it have?")
	if err != nil {
		logger.Fatal("failed to open stream", zap.Error(err))
	}
	for chunk := range chunks {
		if chunk.Err != nil {
			logger.Fatal("stream failed", zap.Error(chunk.Err))
		}
		if chunk.Content == assistant.DoneSentinel {
			break
		}
		fmt.Print(chunk.Content)
	}
	fmt.Println()
}
