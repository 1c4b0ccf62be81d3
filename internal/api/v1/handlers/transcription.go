// Package handlers implements the v1 HTTP handlers.
package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"m2t/internal/api/v1/dto"
	"m2t/internal/app/model"
)

// PipelineRunner is the slice of the pipeline controller the API needs.
type PipelineRunner interface {
	Run(ctx context.Context, source model.MediaSource, device string) model.TranscriptionResult
}

// TranscriptionHandler serves synchronous transcription requests. A mutex
// keeps runs single-flight: the pipeline shares one download directory and
// must not be entered concurrently.
type TranscriptionHandler struct {
	pipeline      PipelineRunner
	defaultDevice string
	logger        *zap.Logger
	busy          sync.Mutex
}

// NewTranscriptionHandler creates the handler.
func NewTranscriptionHandler(pipeline PipelineRunner, defaultDevice string, logger *zap.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		pipeline:      pipeline,
		defaultDevice: defaultDevice,
		logger:        logger,
	}
}

// Create handles POST /api/v1/transcriptions. Multipart requests carry an
// uploaded file; JSON requests carry a remote URL.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	source, device, ok := h.parseRequest(c)
	if !ok {
		return
	}
	if device == "" {
		device = h.defaultDevice
	}

	if !h.busy.TryLock() {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: "a transcription is already running",
		})
		return
	}
	defer h.busy.Unlock()

	h.logger.Info("starting transcription run",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("device", device))

	result := h.pipeline.Run(c.Request.Context(), source, device)
	if !result.OK() {
		c.JSON(statusFor(result.Failure.Code), dto.ErrorResponse{
			Stage:   result.Failure.Stage,
			Code:    string(result.Failure.Code),
			Message: result.Failure.Message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Text: result.Text})
}

func (h *TranscriptionHandler) parseRequest(c *gin.Context) (model.MediaSource, string, bool) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    string(model.CodeMissingInput),
				Message: "multipart field 'file' is required",
			})
			return model.MediaSource{}, "", false
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "cannot open uploaded file"})
			return model.MediaSource{}, "", false
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "cannot read uploaded file"})
			return model.MediaSource{}, "", false
		}

		return model.UploadSource(fileHeader.Filename, data), c.PostForm("device"), true
	}

	var req dto.CreateTranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    string(model.CodeMissingInput),
			Message: "body must provide a valid 'url'",
		})
		return model.MediaSource{}, "", false
	}
	return model.RemoteSource(req.URL), req.Device, true
}

// statusFor maps pipeline failure codes to HTTP statuses. Upstream tool
// failures are gateway errors; bad input is the client's fault.
func statusFor(code model.FailureCode) int {
	switch code {
	case model.CodeMissingInput:
		return http.StatusBadRequest
	case model.CodeUnsupportedFormat:
		return http.StatusUnprocessableEntity
	case model.CodeDownloadUnavailable, model.CodeDownloadFailed,
		model.CodeTranscoderUnavailable, model.CodeTranscodeFailed,
		model.CodeInvocationFailed, model.CodeResultMissing:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
