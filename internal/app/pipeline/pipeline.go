// Package pipeline sequences media acquisition, audio normalization and
// speech-engine invocation into a single run with unified failure handling
// and intermediate-file cleanup.
package pipeline

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"m2t/internal/app/api"
	"m2t/internal/app/metrics"
	"m2t/internal/app/model"
)

// Stage identifiers carried on failures.
const (
	StageAcquire    = "acquire"
	StageNormalize  = "normalize"
	StageTranscribe = "transcribe"
)

// MediaAcquirer obtains a local media file from a source.
type MediaAcquirer interface {
	Acquire(ctx context.Context, source model.MediaSource) (model.MediaFile, error)
}

// AudioNormalizer ensures a media file is in the canonical audio format.
type AudioNormalizer interface {
	Normalize(ctx context.Context, file model.MediaFile) (model.MediaFile, error)
}

// Controller runs the three stages in strict sequence. It is re-entrant
// across sequential calls but performs no locking: overlapping runs against
// the same download directory need an external mutex.
type Controller struct {
	acquirer    MediaAcquirer
	normalizer  AudioNormalizer
	transcriber api.Transcriber
	recorder    *metrics.Recorder
	logger      *zap.Logger
}

// NewController wires the pipeline stages together.
func NewController(
	acquirer MediaAcquirer,
	normalizer AudioNormalizer,
	transcriber api.Transcriber,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		acquirer:    acquirer,
		normalizer:  normalizer,
		transcriber: transcriber,
		recorder:    recorder,
		logger:      logger,
	}
}

// Run executes one transcription. Every stage failure is converted into a
// failure result; nothing here escalates to the hosting process. Stage
// intermediates (the downloaded file, the transcoded sibling) are deleted
// best-effort once the run concludes; the written upload and the transcript
// txt are not touched.
func (c *Controller) Run(ctx context.Context, source model.MediaSource, device string) model.TranscriptionResult {
	start := time.Now()
	result := c.run(ctx, source, device)

	if result.OK() {
		c.recorder.ObserveSuccess(time.Since(start))
	} else {
		c.recorder.ObserveFailure(result.Failure.Stage, string(result.Failure.Code), time.Since(start))
		c.logger.Warn("pipeline run failed",
			zap.String("stage", result.Failure.Stage),
			zap.String("code", string(result.Failure.Code)),
			zap.String("message", result.Failure.Message))
	}
	return result
}

func (c *Controller) run(ctx context.Context, source model.MediaSource, device string) model.TranscriptionResult {
	if source.Empty() {
		return model.FailureResult(StageAcquire, model.ErrMissingInput)
	}

	var intermediates []string
	defer func() { c.cleanup(intermediates) }()

	acquired, err := c.acquirer.Acquire(ctx, source)
	if err != nil {
		return model.FailureResult(StageAcquire, err)
	}
	// A downloaded file is stage-created, not user-supplied, so the
	// controller owns its deletion. A saved upload stays.
	if source.Kind() == model.SourceRemoteURL {
		intermediates = append(intermediates, acquired.Path)
	}

	normalized, err := c.normalizer.Normalize(ctx, acquired)
	if err != nil {
		return model.FailureResult(StageNormalize, err)
	}
	if normalized.Path != acquired.Path {
		intermediates = append(intermediates, normalized.Path)
	}

	text, err := c.transcriber.Transcribe(ctx, normalized.Path, device)
	if err != nil {
		return model.FailureResult(StageTranscribe, err)
	}

	return model.SuccessResult(text)
}

// cleanup deletes intermediates best-effort. Failures are logged and
// swallowed so cleanup never masks the run's primary result.
func (c *Controller) cleanup(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			c.logger.Warn("failed to delete intermediate file",
				zap.String("path", path), zap.Error(err))
		}
	}
}
