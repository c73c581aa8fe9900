package pdf

import (
	"strings"

	"pdf-hero/internal/domain"
)

// validateFiles checks every declared media type before any file is touched,
// so one bad upload fails the whole batch with no partial work.
func validateFiles(files []domain.UploadedFile, category domain.FileCategory) error {
	for _, f := range files {
		if err := validateFile(f, category); err != nil {
			return err
		}
	}
	return nil
}

func validateFile(f domain.UploadedFile, category domain.FileCategory) error {
	switch category {
	case domain.CategoryImage:
		if !domain.AllowedImageTypes[f.ContentType] {
			return &domain.InvalidFileError{Filename: f.Filename, Category: category}
		}
	default:
		if !strings.Contains(f.ContentType, domain.PDFContentToken) {
			return &domain.InvalidFileError{Filename: f.Filename, Category: category}
		}
	}
	return nil
}
