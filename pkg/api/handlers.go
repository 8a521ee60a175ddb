package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	"github.com/ssargent/stega/pkg/codec"
	"github.com/ssargent/stega/pkg/stega"
	"github.com/ssargent/stega/pkg/storage"
)

// ChunkService is the set of image operations the API exposes
type ChunkService interface {
	Print(ctx context.Context, name string) ([]string, error)
	Inspect(ctx context.Context, name string) ([]stega.ChunkInfo, error)
	Encode(ctx context.Context, name, chunkType, message string) error
	Decode(ctx context.Context, name, chunkType string) (string, error)
	Remove(ctx context.Context, name, chunkType string) error
	Upload(ctx context.Context, data []byte) (string, error)
	Download(ctx context.Context, name string) ([]byte, error)
}

// InspectResponse lists chunk details for one image
type InspectResponse struct {
	Status  string            `json:"status"`
	Chunks  []stega.ChunkInfo `json:"chunks"`
	Message string            `json:"message"`
}

// Server holds the API server state
type Server struct {
	service ChunkService
	config  ServerConfig
	metrics *Metrics
	logger  zerolog.Logger
}

// NewServer creates a new API server. A nil metrics gets a private registry.
func NewServer(service ChunkService, config ServerConfig, metrics *Metrics, logger zerolog.Logger) *Server {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}
	return &Server{
		service: service,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// statusFor maps a command error to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidName),
		errors.Is(err, codec.ErrInvalidSignature),
		errors.Is(err, codec.ErrTruncatedRecord),
		errors.Is(err, codec.ErrChecksumMismatch),
		errors.Is(err, codec.ErrTrailingBytes),
		errors.Is(err, codec.ErrInvalidTypeCodeLength),
		errors.Is(err, codec.ErrInvalidEncoding),
		errors.Is(err, codec.ErrChunkNotFound),
		errors.Is(err, stega.ErrInvalidChunkType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) record(operation string, err error, start time.Time) {
	s.metrics.RecordChunkOperation(operation, err == nil, time.Since(start))
}

func (s *Server) fail(w http.ResponseWriter, operation string, err error, chunkType string) {
	status := statusFor(err)
	event := s.logger.Warn()
	if status >= 500 {
		event = s.logger.Error()
	}
	event.Err(err).Str("operation", operation).Str("chunk_type", chunkType).Msg("chunk operation failed")

	message := stega.Message(err, chunkType)
	if operation == "remove" {
		message = stega.RemoveMessage(err, chunkType)
	}
	sendError(w, message, status)
}

// decodeBody reads a JSON request body and checks the image name
func decodeBody(r *http.Request, v interface{}, path func() string) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return storage.ValidateName(path())
}

// handleIndex godoc
//
//	@Summary		Index
//	@Description	Reports that the server is up
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/ [get]
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello, stega!")
}

// handleStatus godoc
//
//	@Summary		Feature status
//	@Description	Get the status of encoding, decoding and metadata features
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/status [get]
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, StatusResponse{
		Encoding: serviceOnline,
		Decoding: serviceOnline,
		Metadata: serviceOnline,
	}, http.StatusOK)
}

// handleEncode godoc
//
//	@Summary		Encode a message
//	@Description	Hide a message in a new chunk, keeping IEND last
//	@Tags			chunks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		EncodeRequest	true	"Encode request"
//	@Success		200		{object}	ChunkResponse
//	@Failure		400		{object}	ChunkResponse
//	@Failure		404		{object}	ChunkResponse
//	@Router			/encode [post]
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req EncodeRequest
	if err := decodeBody(r, &req, func() string { return req.Path }); err != nil {
		s.record("encode", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := s.service.Encode(r.Context(), req.Path, req.ChunkType, req.Message)
	s.record("encode", err, start)
	if err != nil {
		s.fail(w, "encode", err, req.ChunkType)
		return
	}

	s.logger.Info().Str("path", req.Path).Str("chunk_type", req.ChunkType).Msg("message encoded")
	sendSuccess(w, []string{req.ChunkType}, "Encoding successful!")
}

// handleDecode godoc
//
//	@Summary		Decode a message
//	@Description	Read the message held in the first chunk of a type
//	@Tags			chunks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DecodeRequest	true	"Decode request"
//	@Success		200		{object}	ChunkResponse
//	@Failure		400		{object}	ChunkResponse
//	@Failure		404		{object}	ChunkResponse
//	@Router			/decode [post]
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DecodeRequest
	if err := decodeBody(r, &req, func() string { return req.Path }); err != nil {
		s.record("decode", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := s.service.Decode(r.Context(), req.Path, req.ChunkType)
	s.record("decode", err, start)
	if err != nil {
		s.fail(w, "decode", err, req.ChunkType)
		return
	}

	sendSuccess(w, []string{req.ChunkType}, message)
}

// handlePrint godoc
//
//	@Summary		List chunks
//	@Description	List the chunk types of an image in order
//	@Tags			chunks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PrintRequest	true	"Print request"
//	@Success		200		{object}	ChunkResponse
//	@Failure		400		{object}	ChunkResponse
//	@Failure		404		{object}	ChunkResponse
//	@Router			/print [post]
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PrintRequest
	if err := decodeBody(r, &req, func() string { return req.Path }); err != nil {
		s.record("print", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	chunks, err := s.service.Print(r.Context(), req.Path)
	s.record("print", err, start)
	if err != nil {
		s.fail(w, "print", err, "")
		return
	}

	sendSuccess(w, chunks, fmt.Sprintf("found %d chunks", len(chunks)))
}

// handleRemove godoc
//
//	@Summary		Remove a chunk
//	@Description	Remove the first chunk of a type
//	@Tags			chunks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RemoveRequest	true	"Remove request"
//	@Success		200		{object}	ChunkResponse
//	@Failure		400		{object}	ChunkResponse
//	@Failure		404		{object}	ChunkResponse
//	@Router			/remove [post]
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req RemoveRequest
	if err := decodeBody(r, &req, func() string { return req.Path }); err != nil {
		s.record("remove", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := s.service.Remove(r.Context(), req.Path, req.ChunkType)
	s.record("remove", err, start)
	if err != nil {
		s.fail(w, "remove", err, req.ChunkType)
		return
	}

	s.logger.Info().Str("path", req.Path).Str("chunk_type", req.ChunkType).Msg("chunk removed")
	sendSuccess(w, []string{req.ChunkType}, fmt.Sprintf("Chunk %s removal successful!", req.ChunkType))
}

// handleInspect godoc
//
//	@Summary		Inspect chunks
//	@Description	Get type, length, crc and property flags of every chunk
//	@Tags			chunks
//	@Produce		json
//	@Param			name	path		string	true	"Image name"
//	@Success		200		{object}	InspectResponse
//	@Failure		400		{object}	ChunkResponse
//	@Failure		404		{object}	ChunkResponse
//	@Router			/chunks/{name} [get]
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	if err := storage.ValidateName(name); err != nil {
		s.record("inspect", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	infos, err := s.service.Inspect(r.Context(), name)
	s.record("inspect", err, start)
	if err != nil {
		s.fail(w, "inspect", err, "")
		return
	}

	sendJSON(w, InspectResponse{
		Status:  statusSuccess,
		Chunks:  infos,
		Message: fmt.Sprintf("found %d chunks", len(infos)),
	}, http.StatusOK)
}

// handleUpload godoc
//
//	@Summary		Upload an image
//	@Description	Store a PNG sent as the multipart field "image"
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"PNG image"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	UploadResponse
//	@Failure		413		{object}	UploadResponse
//	@Router			/upload [post]
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	uploadError := func(message string, status int) {
		sendJSON(w, UploadResponse{Status: statusError, Message: message}, status)
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	file, _, err := r.FormFile("image")
	if err != nil {
		s.record("upload", err, start)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadError("Image exceeds upload limit", http.StatusRequestEntityTooLarge)
			return
		}
		uploadError("Missing image field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.record("upload", err, start)
		uploadError("Failed to read image", http.StatusBadRequest)
		return
	}

	name, err := s.service.Upload(r.Context(), data)
	s.record("upload", err, start)
	if err != nil {
		s.logger.Warn().Err(err).Msg("upload rejected")
		uploadError(stega.Message(err, ""), statusFor(err))
		return
	}

	s.metrics.RecordUpload(len(data))
	s.logger.Info().Str("path", name).Int("bytes", len(data)).Msg("image uploaded")
	sendJSON(w, UploadResponse{
		Status:    statusSuccess,
		ImagePath: []string{name},
		Message:   "Upload successful!",
	}, http.StatusOK)
}

// handleDownload godoc
//
//	@Summary		Download an image
//	@Description	Get the raw bytes of a stored image
//	@Tags			images
//	@Produce		png
//	@Param			name	path		string	true	"Image name"
//	@Success		200		{file}		binary
//	@Success		304
//	@Failure		404		{object}	ChunkResponse
//	@Router			/download/{name} [get]
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	if err := storage.ValidateName(name); err != nil {
		s.record("download", err, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := s.service.Download(r.Context(), name)
	s.record("download", err, start)
	if err != nil {
		s.fail(w, "download", err, "")
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxh3.Hash(data))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
