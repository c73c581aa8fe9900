package operations

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pdf-hero/internal/domain"

	"github.com/google/uuid"
	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
	"github.com/lvillar/gofpdf/reader"
	"github.com/wb-go/wbf/zlog"
)

// A4 in points, used when a source page reports no usable MediaBox.
const (
	fallbackPageWidth  = 595.28
	fallbackPageHeight = 841.89
)

// Merger concatenates the pages of several PDFs into one document, keeping
// input order across files and page order within each file.
type Merger struct {
	logger *zlog.Zerolog
}

func NewMerger(logger *zlog.Zerolog) *Merger {
	return &Merger{logger: logger}
}

func (m *Merger) Merge(ctx context.Context, files []domain.UploadedFile) ([]byte, error) {
	dir := filepath.Join(os.TempDir(), "pdfhero-merge-"+uuid.New().String())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, file := range files {
		// Parse check first: a broken input must fail the whole job with
		// a message naming the file. Encrypted documents the reader can
		// open with an empty password are still merged.
		doc, err := reader.ReadFrom(bytes.NewReader(file.Data))
		if err != nil {
			m.logger.Warn().Err(err).Str("filename", file.Filename).Msg("Unreadable PDF in merge input")
			return nil, &domain.UnreadableFileError{Filename: file.Filename, Err: err}
		}

		srcPath := filepath.Join(dir, fmt.Sprintf("%02d.pdf", i))
		if err := os.WriteFile(srcPath, file.Data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to stage %s: %w", file.Filename, err)
		}

		if err := appendPages(pdf, srcPath, doc.NumPages()); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", file.Filename, err)
		}
	}

	pdf.SetProducer(domain.Producer, true)
	pdf.SetCreator(domain.CreatorMerge, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write merged document: %w", err)
	}
	return buf.Bytes(), nil
}

func appendPages(pdf *gofpdf.Fpdf, srcPath string, pageCount int) error {
	imp := gofpdi.NewImporter()

	for n := 1; n <= pageCount; n++ {
		tplID := imp.ImportPage(pdf, srcPath, n, "/MediaBox")

		w, h := importedPageSize(imp, n)
		if w == 0 || h == 0 {
			w = fallbackPageWidth
			h = fallbackPageHeight
		}

		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	}

	return pdf.Error()
}

func importedPageSize(imp *gofpdi.Importer, pageNum int) (w, h float64) {
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	return
}
