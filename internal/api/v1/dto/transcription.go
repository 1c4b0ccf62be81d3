// Package dto defines the request/response payloads of the v1 API.
package dto

// CreateTranscriptionRequest is the JSON body for URL-based transcriptions.
// Uploads use multipart form fields instead ("file", optional "device").
type CreateTranscriptionRequest struct {
	URL    string `json:"url" binding:"required,url"`
	Device string `json:"device"`
}

// TranscriptionResponse carries a successful transcription.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// ErrorResponse carries a failed run or a rejected request.
type ErrorResponse struct {
	Stage   string `json:"stage,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
