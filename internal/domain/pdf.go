package domain

import "math"

// UploadedFile is one multipart part, fully read into memory. It lives only
// for the duration of the request that carried it.
type UploadedFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type FileCategory string

const (
	CategoryDocument FileCategory = "document"
	CategoryImage    FileCategory = "image"
)

type OperationType string

const (
	OpCompress    OperationType = "compress"
	OpMerge       OperationType = "merge"
	OpImagesToPDF OperationType = "jpg-to-pdf"
)

// CompressionPreset is one Ghostscript configuration to try. Presets run in
// declaration order and the smallest output wins.
type CompressionPreset struct {
	Name string
	Args []string
}

func CompressionPresets() []CompressionPreset {
	return []CompressionPreset{
		{
			Name: "screen",
			Args: []string{"-dPDFSETTINGS=/screen"},
		},
		{
			Name: "ebook",
			Args: []string{"-dPDFSETTINGS=/ebook"},
		},
		{
			Name: "aggressive",
			Args: []string{
				"-dPDFSETTINGS=/screen",
				"-dDownsampleColorImages=true",
				"-dColorImageDownsampleType=/Bicubic",
				"-dColorImageResolution=72",
				"-dDownsampleGrayImages=true",
				"-dGrayImageDownsampleType=/Bicubic",
				"-dGrayImageResolution=72",
				"-dDownsampleMonoImages=true",
				"-dMonoImageDownsampleType=/Bicubic",
				"-dMonoImageResolution=72",
			},
		},
	}
}

type CompressionStats struct {
	OriginalSize     int64   `json:"originalSize"`
	CompressedSize   int64   `json:"compressedSize"`
	ReductionPercent float64 `json:"reductionPercent"`
}

// NewCompressionStats computes the size reduction as a percentage rounded to
// two decimals. A zero original size yields a zero reduction.
func NewCompressionStats(originalSize, compressedSize int64) CompressionStats {
	var reduction float64
	if originalSize > 0 {
		reduction = (1 - float64(compressedSize)/float64(originalSize)) * 100
		reduction = math.Round(reduction*100) / 100
	}
	return CompressionStats{
		OriginalSize:     originalSize,
		CompressedSize:   compressedSize,
		ReductionPercent: reduction,
	}
}

const (
	FieldFile   = "file"
	FieldFiles  = "files"
	FieldImages = "images"
)

const (
	MaxFileSize        = 20 << 20
	MaxFilesPerRequest = 10
)

const (
	PDFContentType  = "application/pdf"
	PDFContentToken = "pdf"
)

// AllowedImageTypes is the declared-type allow-list for image uploads.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

const (
	PxToPt        = 72.0 / 96.0
	MinPageSizePt = 100.0
	JPEGQuality   = 82
)

const (
	Producer           = "PDF Hero"
	CreatorMerge       = "PDF Hero Merge"
	CreatorImagesToPDF = "PDF Hero JPG to PDF"
)
