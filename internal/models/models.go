package models

// ChatRequest is a single-turn chat message from the UI.
type ChatRequest struct {
	Message string `json:"message"`
	Stream  bool   `json:"stream,omitempty"`
}

// ChatHistoryRequest carries a full conversation, oldest message first.
type ChatHistoryRequest struct {
	Messages []string `json:"messages"`
	Stream   bool     `json:"stream,omitempty"`
}

// ChatResponse is the envelope for non-streaming chat answers. Exactly one of
// a successful Response or a populated Error is set.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
}

// StoredFile describes one entry in the uploads directory.
type StoredFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"` // epoch seconds
}

// UploadRecord is one vendor upload attempt, as kept in the registry.
type UploadRecord struct {
	ID        int64  `json:"id"`
	Filename  string `json:"filename"`
	VendorID  string `json:"vendor_id,omitempty"`
	Status    string `json:"status"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}
