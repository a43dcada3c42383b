// Package watch forwards files dropped into the uploads directory to the
// assistant without going through the HTTP API.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/manualdesk/nexon-assist/internal/assistant"
	"github.com/manualdesk/nexon-assist/internal/db"
	"github.com/manualdesk/nexon-assist/internal/models"
	"go.uber.org/zap"
)

// defaultSettleWindow is how long a path must go without events before it is
// forwarded, so a file still being copied is not uploaded half-written.
const defaultSettleWindow = 2 * time.Second

type Watcher struct {
	client     assistant.Client
	registry   *db.Database // nil disables bookkeeping, uploads still happen
	logger     *zap.Logger
	extensions []string
	watcher    *fsnotify.Watcher
	settle     time.Duration
}

func New(client assistant.Client, registry *db.Database, logger *zap.Logger, extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = []string{".pdf", ".txt", ".md"}
	}

	return &Watcher{
		client:     client,
		registry:   registry,
		logger:     logger,
		extensions: extensions,
		watcher:    fsw,
		settle:     defaultSettleWindow,
	}, nil
}

// Run watches dir until ctx is cancelled. Each new or rewritten file with a
// watched extension is forwarded to the assistant once its event burst has
// settled: the upload happens only after the path has seen no create/write
// events for the settle window.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("watching uploads directory", zap.String("dir", dir))

	ready := make(chan string, 64)
	pending := map[string]*time.Timer{}

	for {
		select {
		case <-ctx.Done():
			for _, timer := range pending {
				timer.Stop()
			}
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.isWatchedExtension(event.Name) {
				continue
			}
			if timer, held := pending[event.Name]; held {
				timer.Reset(w.settle)
				continue
			}
			path := event.Name
			pending[path] = time.AfterFunc(w.settle, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})
		case path := <-ready:
			delete(pending, path)
			w.forward(ctx, path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) forward(ctx context.Context, path string) {
	outcome, err := w.client.UploadFile(ctx, path)

	rec := &models.UploadRecord{Filename: filepath.Base(path)}
	if err != nil {
		w.logger.Error("auto-upload failed", zap.String("path", path), zap.Error(err))
		rec.Status = "failed"
		rec.Detail = err.Error()
	} else {
		w.logger.Info("auto-upload complete",
			zap.String("path", path),
			zap.String("vendor_id", outcome.ID))
		rec.VendorID = outcome.ID
		rec.Status = outcome.Status
		rec.Detail = "forwarded by watcher"
	}

	if w.registry != nil {
		if err := w.registry.RecordUpload(rec); err != nil {
			w.logger.Warn("failed to record upload", zap.Error(err))
		}
	}
}

func (w *Watcher) isWatchedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
