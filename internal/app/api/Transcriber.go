package api

import "context"

// Transcriber converts a normalized audio file to text. The device selector
// pins which accelerator the engine runs on; implementations must confine it
// to the spawned process and never mutate the parent environment.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, device string) (string, error)
}
