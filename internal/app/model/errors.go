package model

import "errors"

// Sentinel errors form the closed failure set of the pipeline. Stages wrap
// them with %w and a diagnostic, so callers can match with errors.Is while
// still surfacing the captured tool output.
var (
	ErrMissingInput          = errors.New("no file or URL supplied")
	ErrWrite                 = errors.New("cannot write media file")
	ErrUnsupportedFormat     = errors.New("unsupported media format")
	ErrDownloadUnavailable   = errors.New("downloader executable not found")
	ErrDownloadFailed        = errors.New("media download failed")
	ErrTranscoderUnavailable = errors.New("transcoder executable not found")
	ErrTranscodeFailed       = errors.New("audio conversion failed")
	ErrInvocationFailed      = errors.New("speech engine failed")
	ErrResultMissing         = errors.New("transcription result file missing")
)

// FailureCode tags a pipeline failure for API responses and metrics.
type FailureCode string

const (
	CodeMissingInput          FailureCode = "missing_input"
	CodeWriteError            FailureCode = "write_error"
	CodeUnsupportedFormat     FailureCode = "unsupported_format"
	CodeDownloadUnavailable   FailureCode = "download_unavailable"
	CodeDownloadFailed        FailureCode = "download_failed"
	CodeTranscoderUnavailable FailureCode = "transcoder_unavailable"
	CodeTranscodeFailed       FailureCode = "transcode_failed"
	CodeInvocationFailed      FailureCode = "invocation_failed"
	CodeResultMissing         FailureCode = "result_missing"
	CodeInternal              FailureCode = "internal"
)

// CodeOf maps an error to its failure code. Errors outside the closed set
// are tagged internal.
func CodeOf(err error) FailureCode {
	switch {
	case errors.Is(err, ErrMissingInput):
		return CodeMissingInput
	case errors.Is(err, ErrWrite):
		return CodeWriteError
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrDownloadUnavailable):
		return CodeDownloadUnavailable
	case errors.Is(err, ErrDownloadFailed):
		return CodeDownloadFailed
	case errors.Is(err, ErrTranscoderUnavailable):
		return CodeTranscoderUnavailable
	case errors.Is(err, ErrTranscodeFailed):
		return CodeTranscodeFailed
	case errors.Is(err, ErrInvocationFailed):
		return CodeInvocationFailed
	case errors.Is(err, ErrResultMissing):
		return CodeResultMissing
	default:
		return CodeInternal
	}
}
