// Package images generates responsive image variants for the site's
// photography and builds the srcset strings templates embed.
package images

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultWidths is the responsive ladder used for site imagery. It matches
// the breakpoints the stylesheets are written against.
var DefaultWidths = []int{320, 640, 960, 1280, 1920}

// JPEGQuality is the encode quality for generated variants.
const JPEGQuality = 85

// =============================================================================
// Variant Generation
// =============================================================================

// Variant is one resized rendition of a source image.
type Variant struct {
	Width  int
	Height int
	Data   []byte
}

// Processor resizes source images into the responsive ladder.
type Processor interface {
	// GenerateVariants decodes the source and produces one JPEG variant per
	// requested width, preserving aspect ratio. Widths larger than the
	// source are skipped so images are never upscaled.
	GenerateVariants(src io.Reader, widths []int) ([]Variant, error)
}

// imagingProcessor implements Processor using the imaging library.
type imagingProcessor struct{}

// NewProcessor creates a variant processor.
func NewProcessor() Processor {
	return &imagingProcessor{}
}

func (p *imagingProcessor) GenerateVariants(src io.Reader, widths []int) ([]Variant, error) {
	if len(widths) == 0 {
		widths = DefaultWidths
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()

	sorted := make([]int, len(widths))
	copy(sorted, widths)
	sort.Ints(sorted)

	var variants []Variant
	for _, w := range sorted {
		if w > originalWidth {
			continue
		}

		resized := imaging.Resize(img, w, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
			return nil, fmt.Errorf("failed to encode %dw variant: %w", w, err)
		}

		variants = append(variants, Variant{
			Width:  w,
			Height: resized.Bounds().Dy(),
			Data:   buf.Bytes(),
		})
	}

	if len(variants) == 0 {
		// Source narrower than the smallest rung: keep one full-size variant.
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
			return nil, fmt.Errorf("failed to encode original: %w", err)
		}
		variants = append(variants, Variant{
			Width:  originalWidth,
			Height: bounds.Dy(),
			Data:   buf.Bytes(),
		})
	}

	return variants, nil
}

// =============================================================================
// Srcset Helpers
// =============================================================================

// VariantName returns the file name for a variant of base at width,
// e.g. VariantName("hero", 640) -> "hero-640w.jpg".
func VariantName(base string, width int) string {
	return fmt.Sprintf("%s-%dw.jpg", base, width)
}

// SrcSet builds an HTML srcset attribute value for base across widths,
// rooted at urlPrefix, e.g.
// "/static/images/hero-320w.jpg 320w, /static/images/hero-640w.jpg 640w".
func SrcSet(urlPrefix, base string, widths []int) string {
	if len(widths) == 0 {
		widths = DefaultWidths
	}

	urlPrefix = strings.TrimSuffix(urlPrefix, "/")
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, fmt.Sprintf("%s/%s %dw", urlPrefix, VariantName(base, w), w))
	}
	return strings.Join(parts, ", ")
}

// Sizes returns a default sizes attribute: full width on small screens,
// capped at the content column on large ones.
func Sizes() string {
	return "(max-width: 960px) 100vw, 960px"
}
