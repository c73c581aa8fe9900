package pdf

import (
	"context"
	"errors"
	"fmt"

	"pdf-hero/internal/domain"
	"pdf-hero/internal/usecase/processor/ghostscript"

	"github.com/wb-go/wbf/zlog"
)

// PDFUsecase validates uploads and dispatches them to one of the three
// processors. Each call is one self-contained job: it produces either a
// result or an error, never both.
type PDFUsecase struct {
	compressor documentCompressor
	merger     documentMerger
	converter  imageConverter
	logger     *zlog.Zerolog
}

func NewPDFUsecase(compressor documentCompressor, merger documentMerger, converter imageConverter, logger *zlog.Zerolog) *PDFUsecase {
	return &PDFUsecase{
		compressor: compressor,
		merger:     merger,
		converter:  converter,
		logger:     logger,
	}
}

// Compress shrinks a single PDF. When Ghostscript is not installed the
// original bytes come back unchanged: a degraded success, visible to the
// caller only through zero reduction in the stats.
func (u *PDFUsecase) Compress(ctx context.Context, file domain.UploadedFile) ([]byte, domain.CompressionStats, error) {
	if err := validateFiles([]domain.UploadedFile{file}, domain.CategoryDocument); err != nil {
		return nil, domain.CompressionStats{}, err
	}

	out, err := u.compressor.Compress(ctx, file.Data)
	if err != nil {
		if !errors.Is(err, ghostscript.ErrNotAvailable) {
			return nil, domain.CompressionStats{}, fmt.Errorf("failed to compress %s: %w", file.Filename, err)
		}
		u.logger.Warn().Err(err).Str("filename", file.Filename).Msg("Ghostscript unavailable, returning original file")
		out = file.Data
	}

	stats := domain.NewCompressionStats(file.Size, int64(len(out)))
	u.logger.Info().
		Str("filename", file.Filename).
		Int64("original_size", stats.OriginalSize).
		Int64("compressed_size", stats.CompressedSize).
		Float64("reduction_percent", stats.ReductionPercent).
		Msg("PDF compressed")

	return out, stats, nil
}

func (u *PDFUsecase) Merge(ctx context.Context, files []domain.UploadedFile) ([]byte, error) {
	if err := validateFiles(files, domain.CategoryDocument); err != nil {
		return nil, err
	}

	out, err := u.merger.Merge(ctx, files)
	if err != nil {
		return nil, err
	}

	u.logger.Info().Int("file_count", len(files)).Int("merged_size", len(out)).Msg("PDFs merged")
	return out, nil
}

func (u *PDFUsecase) ConvertImages(ctx context.Context, files []domain.UploadedFile) ([]byte, error) {
	if err := validateFiles(files, domain.CategoryImage); err != nil {
		return nil, err
	}

	out, err := u.converter.Convert(ctx, files)
	if err != nil {
		return nil, err
	}

	u.logger.Info().Int("image_count", len(files)).Int("document_size", len(out)).Msg("Images converted to PDF")
	return out, nil
}
