package model

import (
	"path/filepath"
	"strings"
)

// SourceKind discriminates the two ways media can enter the pipeline.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourceUpload
	SourceRemoteURL
)

// MediaSource is the immutable input of one pipeline run: either an uploaded
// payload with its original filename, or a remote media URL.
type MediaSource struct {
	kind     SourceKind
	filename string
	data     []byte
	url      string
}

// UploadSource builds a MediaSource from an uploaded file payload.
func UploadSource(filename string, data []byte) MediaSource {
	return MediaSource{
		kind:     SourceUpload,
		filename: filename,
		data:     data,
	}
}

// RemoteSource builds a MediaSource from a remote media URL.
func RemoteSource(url string) MediaSource {
	return MediaSource{
		kind: SourceRemoteURL,
		url:  url,
	}
}

func (s MediaSource) Kind() SourceKind { return s.kind }
func (s MediaSource) Filename() string { return s.filename }
func (s MediaSource) Data() []byte     { return s.data }
func (s MediaSource) URL() string      { return s.url }

// Empty reports whether the source carries no usable input.
func (s MediaSource) Empty() bool {
	switch s.kind {
	case SourceUpload:
		return strings.TrimSpace(s.filename) == "" || len(s.data) == 0
	case SourceRemoteURL:
		return strings.TrimSpace(s.url) == ""
	default:
		return true
	}
}

// MediaFile is a file on disk plus its extension-derived format ("wav",
// "mp4", ...). Ownership transfers stage to stage, with the controller
// claiming intermediates for cleanup.
type MediaFile struct {
	Path   string
	Format string
}

// NewMediaFile infers the format from the path's extension.
func NewMediaFile(path string) MediaFile {
	return MediaFile{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
}
