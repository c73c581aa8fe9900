package pdf

import (
	"context"

	"pdf-hero/internal/domain"
)

type pdfUsecase interface {
	Compress(ctx context.Context, file domain.UploadedFile) ([]byte, domain.CompressionStats, error)
	Merge(ctx context.Context, files []domain.UploadedFile) ([]byte, error)
	ConvertImages(ctx context.Context, files []domain.UploadedFile) ([]byte, error)
}
