package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrUnreadableFile  = errors.New("unreadable file")
)

// InvalidFileError marks an upload whose declared media type does not match
// the category its route expects.
type InvalidFileError struct {
	Filename string
	Category FileCategory
}

func (e *InvalidFileError) Error() string {
	if e.Category == CategoryImage {
		return fmt.Sprintf("File %s must be a JPG or PNG image.", e.Filename)
	}
	return fmt.Sprintf("File %s is not a valid PDF.", e.Filename)
}

func (e *InvalidFileError) Unwrap() error { return ErrInvalidFileType }

// UnreadableFileError marks an upload that passed type validation but could
// not be decoded. Err keeps the decoder failure for logging; the user-visible
// message only names the file.
type UnreadableFileError struct {
	Filename string
	Err      error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("File %s could not be processed.", e.Filename)
}

func (e *UnreadableFileError) Unwrap() error { return ErrUnreadableFile }
