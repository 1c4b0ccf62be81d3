// Package whisper_cpp drives a local whisper.cpp style engine binary.
package whisper_cpp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"m2t/internal/app/execx"
	"m2t/internal/app/model"
	"m2t/internal/app/util/files"
	"m2t/internal/config"
)

// LocalTranscriber implements api.Transcriber with a local engine binary.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	runner     execx.Runner
	logger     *zap.Logger
}

// NewLocalTranscriber creates a transcriber from the application config.
func NewLocalTranscriber(cfg *config.Config, runner execx.Runner, logger *zap.Logger) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: cfg.EngineBinary,
		modelPath:  cfg.ModelPath,
		language:   cfg.Language,
		runner:     runner,
		logger:     logger,
	}
}

// Transcribe runs the engine against audioPath and reads the transcript from
// the sibling txt file the engine writes. Engine failures and a missing
// result file are recoverable errors, never panics. The txt file is left on
// disk for inspection.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, audioPath string, device string) (string, error) {
	args := []string{
		"-m", lt.modelPath,
		"-f", audioPath,
		"-l", lt.language,
		"-otxt",
	}

	cmd := execx.Command{Name: lt.binaryPath, Args: args}
	if device != "" {
		cmd.ExtraEnv = []string{"CUDA_VISIBLE_DEVICES=" + device}
	}

	lt.logger.Info("running speech engine",
		zap.String("audio", audioPath),
		zap.String("device", device))

	res, err := lt.runner.Run(ctx, cmd)
	if err != nil {
		diag := res.Diagnostic()
		if diag == "" {
			diag = "speech engine failed with an unknown error"
		}
		return "", fmt.Errorf("%w: %s", model.ErrInvocationFailed, diag)
	}

	// -otxt writes the transcript next to the audio file.
	txtPath := audioPath + ".txt"
	if !files.Exists(txtPath) {
		return "", fmt.Errorf("%w: %s", model.ErrResultMissing, txtPath)
	}

	text, err := files.ReadOutputFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s: %v", model.ErrResultMissing, txtPath, err)
	}
	return text, nil
}
