// Package audio normalizes media files to the wav format the speech engine
// consumes, delegating the actual conversion to an external transcoder.
package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"m2t/internal/app/execx"
	"m2t/internal/app/model"
	"m2t/internal/app/util/files"
	"m2t/internal/config"
)

// CanonicalFormat is the only format the speech engine accepts.
const CanonicalFormat = "wav"

// supportedFormats is the input whitelist: the canonical format plus the
// common audio/video containers the transcoder can read.
var supportedFormats = []string{CanonicalFormat, "mp3", "mp4", "m4a"}

// Normalizer converts whitelisted media files to canonical wav.
type Normalizer struct {
	transcoderPath string
	runner         execx.Runner
	logger         *zap.Logger
}

// NewNormalizer creates a Normalizer from the application config.
func NewNormalizer(cfg *config.Config, runner execx.Runner, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		transcoderPath: cfg.TranscoderBinary,
		runner:         runner,
		logger:         logger,
	}
}

// Normalize returns a wav MediaFile for the given input. A wav input is
// returned unchanged without spawning any process; other whitelisted formats
// are transcoded to a sibling file with the video stream dropped.
func (n *Normalizer) Normalize(ctx context.Context, in model.MediaFile) (model.MediaFile, error) {
	if !lo.Contains(supportedFormats, in.Format) {
		return model.MediaFile{}, fmt.Errorf("%w: .%s not in [%s]",
			model.ErrUnsupportedFormat, in.Format, strings.Join(supportedFormats, ","))
	}

	if in.Format == CanonicalFormat {
		return in, nil
	}

	outputPath := strings.TrimSuffix(in.Path, filepath.Ext(in.Path)) + "." + CanonicalFormat
	n.logger.Info("converting to wav", zap.String("input", in.Path), zap.String("output", outputPath))

	// -y overwrites stale artifacts from earlier aborted runs.
	res, err := n.runner.Run(ctx, execx.Command{
		Name: n.transcoderPath,
		Args: []string{"-y", "-i", in.Path, "-vn", outputPath},
	})
	if err != nil && execx.IsNotFound(err) {
		return model.MediaFile{}, fmt.Errorf("%w: %s", model.ErrTranscoderUnavailable, n.transcoderPath)
	}
	if err != nil || !files.Exists(outputPath) {
		// Drop any partially written output before reporting.
		_ = os.Remove(outputPath)
		diag := res.Diagnostic()
		if diag == "" {
			diag = "transcoder failed with an unknown error"
		}
		return model.MediaFile{}, fmt.Errorf("%w: %s", model.ErrTranscodeFailed, diag)
	}

	return model.NewMediaFile(outputPath), nil
}
