package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/manualdesk/nexon-assist/internal/assistant"
	"github.com/manualdesk/nexon-assist/internal/db"
	"github.com/manualdesk/nexon-assist/internal/models"
	"github.com/manualdesk/nexon-assist/internal/store"
	"go.uber.org/zap"
)

// Handler owns the process-wide assistant client and file store. A nil client
// means the process runs degraded: health says so and assistant-dependent
// routes return 503 before any dispatch.
type Handler struct {
	client   assistant.Client
	store    *store.FileStore
	registry *db.Database // nil when the registry could not be opened
	logger   *zap.Logger
}

func NewHandler(client assistant.Client, fileStore *store.FileStore, registry *db.Database, logger *zap.Logger) *Handler {
	return &Handler{
		client:   client,
		store:    fileStore,
		registry: registry,
		logger:   logger,
	}
}

// Register wires all API routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/upload", h.HandleUpload)
	mux.HandleFunc("/chat", h.HandleChat)
	mux.HandleFunc("/chat/stream", h.HandleChatStream)
	mux.HandleFunc("/chat/history", h.HandleChatHistory)
	mux.HandleFunc("/files", h.HandleFiles)
	mux.HandleFunc("/files/", h.HandleFileDelete)
	mux.HandleFunc("/uploads", h.HandleUploadHistory)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	available := h.client != nil

	status := "healthy"
	message := "Assistant ready"
	if !available {
		status = "degraded"
		message = "Assistant initialization failed - check API key"
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":              status,
		"assistant_available": available,
		"message":             message,
	})
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.client == nil {
		h.unavailable(w)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	size, err := h.store.Save(header.Filename, file)
	if err != nil {
		h.logger.Error("failed to save upload", zap.Error(err), zap.String("filename", header.Filename))
		h.writeJSON(w, http.StatusOK, models.UploadResponse{
			Filename: header.Filename,
			Success:  false,
			Message:  "Upload failed",
			Error:    err.Error(),
		})
		return
	}

	outcome, err := h.client.UploadFile(r.Context(), h.store.Path(header.Filename))
	h.recordUpload(header.Filename, outcome, err)
	if err != nil {
		h.logger.Error("vendor upload failed", zap.Error(err), zap.String("filename", header.Filename))
		h.writeJSON(w, http.StatusOK, models.UploadResponse{
			Filename: header.Filename,
			Success:  false,
			Message:  "Upload failed",
			Error:    err.Error(),
		})
		return
	}

	h.logger.Info("file uploaded",
		zap.String("filename", header.Filename),
		zap.Int64("bytes", size))

	h.writeJSON(w, http.StatusOK, models.UploadResponse{
		Filename: header.Filename,
		Success:  true,
		Message:  "File uploaded and processed successfully",
	})
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.client == nil {
		h.unavailable(w)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	raw, err := h.client.Chat(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("chat failed", zap.Error(err))
		h.writeJSON(w, http.StatusOK, models.ChatResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: assistant.ExtractContent(raw),
		Success:  true,
	})
}

func (h *Handler) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.client == nil {
		h.unavailable(w)
		return
	}

	var req models.ChatHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		http.Error(w, "messages must not be empty", http.StatusBadRequest)
		return
	}

	raw, err := h.client.ChatWithHistory(r.Context(), req.Messages)
	if err != nil {
		h.logger.Error("chat with history failed", zap.Error(err))
		h.writeJSON(w, http.StatusOK, models.ChatResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: assistant.ExtractContent(raw),
		Success:  true,
	})
}

// HandleChatStream relays the assistant's chunk stream as SSE-style lines.
// The first chunk is inspected before the response commits so an immediate
// upstream failure can still become a 500; after that, a dropped connection
// or mid-stream error just stops production.
func (h *Handler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.client == nil {
		h.unavailable(w)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	chunks, err := h.client.ChatStream(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("failed to open stream", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	first, open := <-chunks
	if open && first.Err != nil {
		h.logger.Error("stream failed before first chunk", zap.Error(first.Err))
		http.Error(w, first.Err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if open {
		h.writeChunk(w, flusher, first.Content)
	}

	for chunk := range chunks {
		if r.Context().Err() != nil {
			// Client went away; stop relaying, the producer sees the same ctx.
			return
		}
		if chunk.Err != nil {
			h.logger.Error("stream interrupted", zap.Error(chunk.Err))
			return
		}
		h.writeChunk(w, flusher, chunk.Content)
	}
}

func (h *Handler) HandleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	files, err := h.store.List()
	if err != nil {
		h.logger.Error("failed to list files", zap.Error(err))
		h.writeJSON(w, http.StatusOK, map[string]any{"files": []models.StoredFile{}, "error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

func (h *Handler) HandleFileDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, "/files/")
	if filename == "" {
		http.Error(w, "Filename required", http.StatusBadRequest)
		return
	}

	removed, err := h.store.Delete(filename)
	if err != nil {
		h.logger.Error("failed to delete file", zap.Error(err), zap.String("filename", filename))
		h.writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": err.Error()})
		return
	}

	if !removed {
		h.writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "File not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("File %s deleted", filename),
	})
}

func (h *Handler) HandleUploadHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.registry == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"uploads": []models.UploadRecord{}})
		return
	}

	records, err := h.registry.RecentUploads(50)
	if err != nil {
		h.logger.Error("failed to read upload registry", zap.Error(err))
		h.writeJSON(w, http.StatusOK, map[string]any{"uploads": []models.UploadRecord{}, "error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"uploads": records})
}

func (h *Handler) recordUpload(filename string, outcome *assistant.UploadOutcome, err error) {
	if h.registry == nil {
		return
	}

	rec := &models.UploadRecord{Filename: filename}
	if err != nil {
		rec.Status = "failed"
		rec.Detail = err.Error()
	} else {
		rec.VendorID = outcome.ID
		rec.Status = outcome.Status
	}

	if err := h.registry.RecordUpload(rec); err != nil {
		h.logger.Warn("failed to record upload", zap.Error(err))
	}
}

func (h *Handler) writeChunk(w http.ResponseWriter, flusher http.Flusher, content string) {
	data, _ := json.Marshal(map[string]string{"content": content})
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

func (h *Handler) unavailable(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"detail": "Assistant not available"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
