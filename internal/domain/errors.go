package domain

import "errors"

var (
	// ErrManifestMissing is returned when the dependency manifest does not exist.
	ErrManifestMissing = errors.New("requirements manifest not found")
	// ErrNoFile is returned when an upload carries no file part.
	ErrNoFile = errors.New("no file in request")
	// ErrEmptyFilename is returned when the uploaded file has no name.
	ErrEmptyFilename = errors.New("empty filename")
	// ErrNotEPUB is returned when a file name lacks the .epub extension.
	ErrNotEPUB = errors.New("file is not an .epub")
	// ErrBadZip is returned when an EPUB container cannot be read as a zip archive.
	ErrBadZip = errors.New("not an EPUB (corrupt zip)")
	// ErrBadFlash is returned when a flash cookie fails authentication.
	ErrBadFlash = errors.New("flash cookie rejected")
	// ErrNoRecord is returned when no launch record has been written yet.
	ErrNoRecord = errors.New("no launch record")
)
