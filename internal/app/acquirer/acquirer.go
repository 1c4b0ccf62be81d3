// Package acquirer turns a media source into a local file: uploads are
// written verbatim, remote URLs go through an external downloader that
// extracts the audio track as wav.
package acquirer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"m2t/internal/app/execx"
	"m2t/internal/app/model"
	"m2t/internal/app/util/files"
	"m2t/internal/config"
)

// Acquirer obtains local media files for the pipeline.
type Acquirer struct {
	downloaderPath string
	downloadDir    string
	runner         execx.Runner
	logger         *zap.Logger
}

// New creates an Acquirer from the application config.
func New(cfg *config.Config, runner execx.Runner, logger *zap.Logger) *Acquirer {
	return &Acquirer{
		downloaderPath: cfg.DownloaderBinary,
		downloadDir:    cfg.DownloadDir,
		runner:         runner,
		logger:         logger,
	}
}

// Acquire resolves the source to a file inside the download directory.
// Exactly one file is created per successful call.
func (a *Acquirer) Acquire(ctx context.Context, source model.MediaSource) (model.MediaFile, error) {
	switch source.Kind() {
	case model.SourceUpload:
		return a.saveUpload(source)
	case model.SourceRemoteURL:
		return a.download(ctx, source.URL())
	default:
		return model.MediaFile{}, model.ErrMissingInput
	}
}

// saveUpload writes the payload under its original base name. The name is
// deterministic, so re-uploading the same file lands on the same path.
func (a *Acquirer) saveUpload(source model.MediaSource) (model.MediaFile, error) {
	if err := files.EnsureDir(a.downloadDir); err != nil {
		return model.MediaFile{}, fmt.Errorf("%w: cannot create %s: %v", model.ErrWrite, a.downloadDir, err)
	}

	path := filepath.Join(a.downloadDir, filepath.Base(source.Filename()))
	if err := os.WriteFile(path, source.Data(), 0o644); err != nil {
		return model.MediaFile{}, fmt.Errorf("%w: %v", model.ErrWrite, err)
	}

	a.logger.Info("saved uploaded file",
		zap.String("path", path),
		zap.Int("bytes", len(source.Data())))
	return model.NewMediaFile(path), nil
}

// download invokes the external downloader, writing the extracted audio to
// a collision-free wav path.
func (a *Acquirer) download(ctx context.Context, url string) (model.MediaFile, error) {
	if err := files.EnsureDir(a.downloadDir); err != nil {
		return model.MediaFile{}, fmt.Errorf("%w: cannot create %s: %v", model.ErrWrite, a.downloadDir, err)
	}

	name := fmt.Sprintf("media_%s.wav", strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	outputPath := filepath.Join(a.downloadDir, name)

	a.logger.Info("downloading remote media", zap.String("url", url), zap.String("output", outputPath))

	res, err := a.runner.Run(ctx, execx.Command{
		Name: a.downloaderPath,
		Args: []string{"-x", "--audio-format", "wav", "-o", outputPath, url},
	})
	if err != nil {
		if execx.IsNotFound(err) {
			return model.MediaFile{}, fmt.Errorf("%w: %s", model.ErrDownloadUnavailable, a.downloaderPath)
		}
		return model.MediaFile{}, downloadError(res)
	}
	if !files.Exists(outputPath) {
		return model.MediaFile{}, fmt.Errorf("%w: downloader exited cleanly but %s was not created", model.ErrDownloadFailed, outputPath)
	}

	return model.NewMediaFile(outputPath), nil
}

func downloadError(res execx.Result) error {
	diag := res.Diagnostic()
	if diag == "" {
		diag = "downloader failed with an unknown error"
	}
	return fmt.Errorf("%w: %s", model.ErrDownloadFailed, diag)
}
