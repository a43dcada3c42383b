package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/manualdesk/nexon-assist/internal/assistant"
	"go.uber.org/zap"
)

// recordingClient captures upload paths so tests can observe forwarding.
type recordingClient struct {
	mu    sync.Mutex
	paths []string
}

func (c *recordingClient) UploadFile(ctx context.Context, path string) (*assistant.UploadOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
	return &assistant.UploadOutcome{ID: "rec-1", Status: "Processing"}, nil
}

func (c *recordingClient) uploaded() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func (c *recordingClient) Chat(ctx context.Context, message string) (any, error) { return "", nil }
func (c *recordingClient) ChatWithHistory(ctx context.Context, messages []string) (any, error) {
	return "", nil
}
func (c *recordingClient) ChatStream(ctx context.Context, message string) (<-chan assistant.Chunk, error) {
	ch := make(chan assistant.Chunk)
	close(ch)
	return ch, nil
}
func (c *recordingClient) ChatWithHistoryStream(ctx context.Context, messages []string) (<-chan assistant.Chunk, error) {
	return c.ChatStream(ctx, "")
}

func TestWatcherCreation(t *testing.T) {
	w, err := New(&recordingClient{}, nil, zap.NewNop(), []string{".pdf"})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()
}

func TestWatcherDefaultExtensions(t *testing.T) {
	w, _ := New(&recordingClient{}, nil, zap.NewNop(), nil)
	defer w.Stop()

	if len(w.extensions) != 3 {
		t.Errorf("expected 3 default extensions, got %d", len(w.extensions))
	}
	if w.settle != defaultSettleWindow {
		t.Errorf("expected settle window %v, got %v", defaultSettleWindow, w.settle)
	}
}

func TestWatcherForwardsNewFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	client := &recordingClient{}

	w, err := New(client, nil, zap.NewNop(), []string{".pdf"})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()
	w.settle = 100 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go w.Run(ctx, dir)

	// Give Run time to create and register the directory.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "manual.pdf"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(client.uploaded()) > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	uploads := client.uploaded()
	if len(uploads) == 0 {
		t.Fatal("timeout waiting for auto-upload")
	}
	if filepath.Base(uploads[0]) != "manual.pdf" {
		t.Errorf("expected manual.pdf, got %s", uploads[0])
	}
}

func TestWatcherWaitsForSlowCopyToSettle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	client := &recordingClient{}

	w, err := New(client, nil, zap.NewNop(), []string{".pdf"})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()
	w.settle = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go w.Run(ctx, dir)

	time.Sleep(200 * time.Millisecond)

	// Simulate a slow copy: create, then keep appending inside the settle
	// window. No upload may happen until the writes go quiet.
	path := filepath.Join(dir, "manual.pdf")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := f.Write([]byte("chunk ")); err != nil {
			t.Fatalf("failed to write chunk: %v", err)
		}
		time.Sleep(150 * time.Millisecond)
		if n := len(client.uploaded()); n != 0 {
			t.Fatalf("uploaded %d time(s) while the copy was still in progress", n)
		}
	}
	f.Close()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(client.uploaded()) > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	uploads := client.uploaded()
	if len(uploads) != 1 {
		t.Fatalf("expected exactly one upload after settling, got %d", len(uploads))
	}
	if filepath.Base(uploads[0]) != "manual.pdf" {
		t.Errorf("expected manual.pdf, got %s", uploads[0])
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	client := &recordingClient{}

	w, err := New(client, nil, zap.NewNop(), []string{".pdf"})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	go w.Run(ctx, dir)

	time.Sleep(200 * time.Millisecond)
	os.WriteFile(filepath.Join(dir, "notes.tmp"), []byte("hi"), 0o644)

	<-ctx.Done()
	if len(client.uploaded()) != 0 {
		t.Errorf("expected no uploads, got %v", client.uploaded())
	}
}
