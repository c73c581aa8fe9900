package pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"pdf-hero/internal/domain"
	"pdf-hero/internal/usecase/processor/ghostscript"

	"github.com/wb-go/wbf/zlog"
)

type stubCompressor struct {
	out []byte
	err error
}

func (s *stubCompressor) Compress(_ context.Context, _ []byte) ([]byte, error) {
	return s.out, s.err
}

type stubMerger struct {
	out []byte
	err error
}

func (s *stubMerger) Merge(_ context.Context, _ []domain.UploadedFile) ([]byte, error) {
	return s.out, s.err
}

type stubConverter struct {
	out []byte
	err error
}

func (s *stubConverter) Convert(_ context.Context, _ []domain.UploadedFile) ([]byte, error) {
	return s.out, s.err
}

func testLogger() *zlog.Zerolog {
	zlog.Init()
	return &zlog.Logger
}

func pdfUpload(filename string, data []byte) domain.UploadedFile {
	return domain.UploadedFile{
		FieldName:   domain.FieldFile,
		Filename:    filename,
		ContentType: "application/pdf",
		Size:        int64(len(data)),
		Data:        data,
	}
}

func TestCompressSuccess(t *testing.T) {
	original := bytes.Repeat([]byte("x"), 1000)
	compressed := bytes.Repeat([]byte("y"), 400)

	uc := NewPDFUsecase(&stubCompressor{out: compressed}, &stubMerger{}, &stubConverter{}, testLogger())

	out, stats, err := uc.Compress(context.Background(), pdfUpload("doc.pdf", original))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(out, compressed) {
		t.Error("Expected compressed bytes back")
	}
	if stats.OriginalSize != 1000 || stats.CompressedSize != 400 {
		t.Errorf("Unexpected stats sizes: %+v", stats)
	}
	if stats.ReductionPercent != 60.00 {
		t.Errorf("Expected 60.00 reduction, got %v", stats.ReductionPercent)
	}
}

func TestCompressFallsBackWhenToolMissing(t *testing.T) {
	original := bytes.Repeat([]byte("x"), 500)

	uc := NewPDFUsecase(&stubCompressor{err: ghostscript.ErrNotAvailable}, &stubMerger{}, &stubConverter{}, testLogger())

	out, stats, err := uc.Compress(context.Background(), pdfUpload("doc.pdf", original))
	if err != nil {
		t.Fatalf("Expected degraded success, got error %v", err)
	}
	if !bytes.Equal(out, original) {
		t.Error("Expected original bytes back when the tool is missing")
	}
	if stats.ReductionPercent != 0 {
		t.Errorf("Expected zero reduction on fallback, got %v", stats.ReductionPercent)
	}
}

func TestCompressExecutionErrorPropagates(t *testing.T) {
	execErr := ghostscript.ErrExec

	uc := NewPDFUsecase(&stubCompressor{err: execErr}, &stubMerger{}, &stubConverter{}, testLogger())

	_, _, err := uc.Compress(context.Background(), pdfUpload("doc.pdf", []byte("data")))
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if !errors.Is(err, ghostscript.ErrExec) {
		t.Errorf("Expected ErrExec in chain, got %v", err)
	}
}

func TestCompressRejectsWrongType(t *testing.T) {
	uc := NewPDFUsecase(&stubCompressor{}, &stubMerger{}, &stubConverter{}, testLogger())

	file := domain.UploadedFile{Filename: "pic.png", ContentType: "image/png", Data: []byte("png")}
	_, _, err := uc.Compress(context.Background(), file)
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Fatalf("Expected ErrInvalidFileType, got %v", err)
	}
}

func TestMergeValidatesAllInputs(t *testing.T) {
	uc := NewPDFUsecase(&stubCompressor{}, &stubMerger{out: []byte("merged")}, &stubConverter{}, testLogger())

	files := []domain.UploadedFile{
		pdfUpload("a.pdf", []byte("a")),
		{Filename: "b.png", ContentType: "image/png", Data: []byte("b")},
	}

	_, err := uc.Merge(context.Background(), files)
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Fatalf("Expected ErrInvalidFileType, got %v", err)
	}
}

func TestMergeDelegates(t *testing.T) {
	merged := []byte("merged-output")
	uc := NewPDFUsecase(&stubCompressor{}, &stubMerger{out: merged}, &stubConverter{}, testLogger())

	files := []domain.UploadedFile{
		pdfUpload("a.pdf", []byte("a")),
		pdfUpload("b.pdf", []byte("b")),
	}

	out, err := uc.Merge(context.Background(), files)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(out, merged) {
		t.Error("Expected merger output back")
	}
}

func TestConvertImagesValidatesTypes(t *testing.T) {
	uc := NewPDFUsecase(&stubCompressor{}, &stubMerger{}, &stubConverter{out: []byte("pdf")}, testLogger())

	files := []domain.UploadedFile{
		{Filename: "a.gif", ContentType: "image/gif", Data: []byte("gif")},
	}

	_, err := uc.ConvertImages(context.Background(), files)
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Fatalf("Expected ErrInvalidFileType, got %v", err)
	}
}
