package api

const (
	statusSuccess = "success"
	statusError   = "error"

	// serviceOnline is the per-feature state reported by /status.
	serviceOnline = "online"
)

// ChunkResponse is the envelope returned by the chunk endpoints
type ChunkResponse struct {
	Status  string   `json:"status"`
	Chunks  []string `json:"chunks"`
	Message string   `json:"message"`
}

// UploadResponse is returned by /upload
type UploadResponse struct {
	Status    string   `json:"status"`
	ImagePath []string `json:"image_path"`
	Message   string   `json:"message"`
}

// StatusResponse reports which features are available
type StatusResponse struct {
	Encoding string `json:"encoding"`
	Decoding string `json:"decoding"`
	Metadata string `json:"metadata"`
}

// EncodeRequest hides Message in a new chunk of ChunkType
type EncodeRequest struct {
	Path      string `json:"path"`
	ChunkType string `json:"chunk_type"`
	Message   string `json:"message"`
}

// DecodeRequest reads the message of the first ChunkType chunk
type DecodeRequest struct {
	Path      string `json:"path"`
	ChunkType string `json:"chunk_type"`
}

// PrintRequest lists the chunks of an image
type PrintRequest struct {
	Path string `json:"path"`
}

// RemoveRequest deletes the first ChunkType chunk
type RemoveRequest struct {
	Path      string `json:"path"`
	ChunkType string `json:"chunk_type"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Addr           string
	APIKey         string // Empty disables authentication
	MaxUploadBytes int64
	AllowedOrigins []string
}
