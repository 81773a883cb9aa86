package images

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// encodeTestImage produces an in-memory JPEG of the given dimensions.
func encodeTestImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := imaging.New(width, height, image.White.C)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return &buf
}

func TestGenerateVariants(t *testing.T) {
	p := NewProcessor()

	src := encodeTestImage(t, 1000, 500)
	variants, err := p.GenerateVariants(src, []int{320, 640, 960, 1280})
	if err != nil {
		t.Fatalf("GenerateVariants: %v", err)
	}

	// 1280 exceeds the 1000px source and must be skipped.
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}

	wantWidths := []int{320, 640, 960}
	for i, v := range variants {
		if v.Width != wantWidths[i] {
			t.Errorf("variant %d width = %d, want %d", i, v.Width, wantWidths[i])
		}
		// 2:1 aspect ratio must be preserved.
		if v.Height != wantWidths[i]/2 {
			t.Errorf("variant %d height = %d, want %d", i, v.Height, wantWidths[i]/2)
		}
		if len(v.Data) == 0 {
			t.Errorf("variant %d has no data", i)
		}
	}
}

func TestGenerateVariants_TinySource(t *testing.T) {
	p := NewProcessor()

	src := encodeTestImage(t, 100, 100)
	variants, err := p.GenerateVariants(src, DefaultWidths)
	if err != nil {
		t.Fatalf("GenerateVariants: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected single full-size variant, got %d", len(variants))
	}
	if variants[0].Width != 100 {
		t.Errorf("expected original width 100, got %d", variants[0].Width)
	}
}

func TestGenerateVariants_InvalidInput(t *testing.T) {
	p := NewProcessor()
	if _, err := p.GenerateVariants(strings.NewReader("not an image"), nil); err == nil {
		t.Fatal("expected decode error for garbage input")
	}
}

func TestSrcSet(t *testing.T) {
	got := SrcSet("/static/images/", "hero", []int{320, 640})
	want := "/static/images/hero-320w.jpg 320w, /static/images/hero-640w.jpg 640w"
	if got != want {
		t.Errorf("SrcSet = %q, want %q", got, want)
	}
}

func TestVariantName(t *testing.T) {
	if got := VariantName("clinic-exterior", 960); got != "clinic-exterior-960w.jpg" {
		t.Errorf("VariantName = %q", got)
	}
}
