package model

// Failure describes which stage a run died in and why.
type Failure struct {
	Stage   string      `json:"stage"`
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
}

// TranscriptionResult is the outcome of one pipeline run. Exactly one of
// Text and Failure is populated.
type TranscriptionResult struct {
	Text    string
	Failure *Failure
}

// OK reports whether the run produced a transcription.
func (r TranscriptionResult) OK() bool { return r.Failure == nil }

// SuccessResult wraps a transcription text. An empty text is still a
// successful run (silent audio transcribes to nothing).
func SuccessResult(text string) TranscriptionResult {
	return TranscriptionResult{Text: text}
}

// FailureResult wraps a stage error into a result.
func FailureResult(stage string, err error) TranscriptionResult {
	return TranscriptionResult{Failure: &Failure{
		Stage:   stage,
		Code:    CodeOf(err),
		Message: err.Error(),
	}}
}
