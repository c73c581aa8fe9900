package operations

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"

	"pdf-hero/internal/domain"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/wb-go/wbf/zlog"
	xdraw "golang.org/x/image/draw"
)

// Converter turns a batch of raster images into one PDF with a full-bleed
// page per image. Page dimensions follow the pixel dimensions at 96 DPI.
type Converter struct {
	logger *zlog.Zerolog
}

func NewConverter(logger *zlog.Zerolog) *Converter {
	return &Converter{logger: logger}
}

func (c *Converter) Convert(ctx context.Context, files []domain.UploadedFile) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, file := range files {
		img, _, err := image.Decode(bytes.NewReader(file.Data))
		if err != nil {
			c.logger.Warn().Err(err).Str("filename", file.Filename).Msg("Undecodable image input")
			return nil, &domain.UnreadableFileError{Filename: file.Filename, Err: err}
		}

		rgba := normalizeOrientation(toRGBA(img), file.Data)

		widthPx := rgba.Bounds().Dx()
		heightPx := rgba.Bounds().Dy()

		pageW := math.Max(domain.MinPageSizePt, float64(widthPx)*domain.PxToPt)
		pageH := math.Max(domain.MinPageSizePt, float64(heightPx)*domain.PxToPt)

		// Re-encode everything as JPEG so every page embeds the same way
		// regardless of the original format.
		var jpegBuf bytes.Buffer
		if err := jpeg.Encode(&jpegBuf, rgba, &jpeg.Options{Quality: domain.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("failed to re-encode %s: %w", file.Filename, err)
		}

		name := fmt.Sprintf("image-%d", i)
		opts := gofpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, &jpegBuf)
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})
		pdf.ImageOptions(name, 0, 0, pageW, pageH, false, opts, 0, "")

		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("failed to place %s: %w", file.Filename, err)
		}
	}

	pdf.SetProducer(domain.Producer, true)
	pdf.SetCreator(domain.CreatorImagesToPDF, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst
}

// normalizeOrientation applies the EXIF orientation tag, if any, so the
// produced page matches how the photo is meant to be viewed. Images without
// readable metadata pass through unchanged.
func normalizeOrientation(img *image.RGBA, raw []byte) *image.RGBA {
	meta, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return img
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orientation {
	case 2:
		return flipHorizontal(img)
	case 3:
		return rotate180(img)
	case 4:
		return flipVertical(img)
	case 5:
		// Transpose.
		return flipHorizontal(rotate90(img))
	case 6:
		return rotate90(img)
	case 7:
		// Transverse.
		return flipHorizontal(rotate270(img))
	case 8:
		return rotate270(img)
	default:
		return img
	}
}

func flipHorizontal(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Dx()-1-x, y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func flipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(x, b.Dy()-1-y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func rotate180(src *image.RGBA) *image.RGBA {
	return flipHorizontal(flipVertical(src))
}

// rotate90 rotates a quarter turn clockwise.
func rotate90(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Dy()-1-y, x, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// rotate270 rotates a quarter turn counter-clockwise.
func rotate270(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(y, b.Dx()-1-x, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
