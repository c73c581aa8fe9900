package pdf

import (
	"context"

	"pdf-hero/internal/domain"
)

type documentCompressor interface {
	Compress(ctx context.Context, input []byte) ([]byte, error)
}

type documentMerger interface {
	Merge(ctx context.Context, files []domain.UploadedFile) ([]byte, error)
}

type imageConverter interface {
	Convert(ctx context.Context, files []domain.UploadedFile) ([]byte, error)
}
