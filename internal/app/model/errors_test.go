package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureCode
	}{
		{"missing_input", ErrMissingInput, CodeMissingInput},
		{"write_error", ErrWrite, CodeWriteError},
		{"unsupported_format", ErrUnsupportedFormat, CodeUnsupportedFormat},
		{"download_unavailable", ErrDownloadUnavailable, CodeDownloadUnavailable},
		{"download_failed", ErrDownloadFailed, CodeDownloadFailed},
		{"transcoder_unavailable", ErrTranscoderUnavailable, CodeTranscoderUnavailable},
		{"transcode_failed", ErrTranscodeFailed, CodeTranscodeFailed},
		{"invocation_failed", ErrInvocationFailed, CodeInvocationFailed},
		{"result_missing", ErrResultMissing, CodeResultMissing},
		{"unknown_error", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestCodeOf_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: ffmpeg said no", ErrTranscodeFailed)
	assert.Equal(t, CodeTranscodeFailed, CodeOf(wrapped))
}

func TestFailureResult(t *testing.T) {
	res := FailureResult("normalize", fmt.Errorf("%w: .flac", ErrUnsupportedFormat))

	assert.False(t, res.OK())
	assert.Empty(t, res.Text)
	assert.Equal(t, "normalize", res.Failure.Stage)
	assert.Equal(t, CodeUnsupportedFormat, res.Failure.Code)
	assert.Contains(t, res.Failure.Message, ".flac")
}

func TestSuccessResult_EmptyTextIsStillSuccess(t *testing.T) {
	res := SuccessResult("")
	assert.True(t, res.OK())
	assert.Nil(t, res.Failure)
}

func TestMediaSource_Empty(t *testing.T) {
	assert.True(t, MediaSource{}.Empty())
	assert.True(t, UploadSource("", nil).Empty())
	assert.True(t, UploadSource("a.wav", nil).Empty())
	assert.True(t, RemoteSource("  ").Empty())
	assert.False(t, UploadSource("a.wav", []byte{1}).Empty())
	assert.False(t, RemoteSource("https://example.com/x").Empty())
}

func TestNewMediaFile_FormatInference(t *testing.T) {
	assert.Equal(t, "wav", NewMediaFile("/tmp/a.WAV").Format)
	assert.Equal(t, "mp4", NewMediaFile("clip.mp4").Format)
	assert.Equal(t, "", NewMediaFile("noext").Format)
}
