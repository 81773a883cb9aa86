package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/static",
	}, testLogger())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s
}

func TestLocalStorage_PutGetRoundTrip(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	key := VariantKey("hero", 640)
	if err := s.Put(ctx, key, strings.NewReader("jpeg bytes"), PutOptions{}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, info, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "jpeg bytes" {
		t.Errorf("content = %q", data)
	}
	if info.Size != int64(len("jpeg bytes")) {
		t.Errorf("size = %d", info.Size)
	}
	if info.ContentType != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg from .jpg extension", info.ContentType)
	}
}

func TestLocalStorage_PutWithoutOverwriteFails(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	key := VariantKey("hero", 320)
	if err := s.Put(ctx, key, strings.NewReader("a"), PutOptions{}); err != nil {
		t.Fatalf("first Put: %v", err)
	}

	err := s.Put(ctx, key, strings.NewReader("b"), PutOptions{})
	if err == nil {
		t.Fatal("expected ErrKeyExists")
	}
	if !errors.Is(err, ErrKeyExists) {
		t.Errorf("err = %v, want ErrKeyExists", err)
	}

	// Overwrite enabled succeeds.
	if err := s.Put(ctx, key, strings.NewReader("b"), PutOptions{Overwrite: true}); err != nil {
		t.Errorf("overwrite Put: %v", err)
	}
}

func TestLocalStorage_MaxSize(t *testing.T) {
	s := newTestLocal(t)

	err := s.Put(context.Background(), "images/big.jpg", strings.NewReader("0123456789"), PutOptions{MaxSize: 5})
	if err == nil {
		t.Fatal("expected ErrTooLarge")
	}
}

func TestLocalStorage_GetMissing(t *testing.T) {
	s := newTestLocal(t)

	_, _, err := s.Get(context.Background(), "images/nope.jpg")
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestLocal(t)

	for _, key := range []string{"", "../etc/passwd", "images/../../escape.jpg"} {
		if err := s.Put(context.Background(), key, strings.NewReader("x"), PutOptions{}); err == nil {
			t.Errorf("key %q should be rejected", key)
		}
	}
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	if err := s.Delete(ctx, "images/never-existed.jpg"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestLocalStorage_URL(t *testing.T) {
	s := newTestLocal(t)

	url, err := s.URL(context.Background(), VariantKey("hero", 960), 0)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	want := "http://localhost:8080/static/images/hero-960w.jpg"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

func TestVariantKey(t *testing.T) {
	if got := VariantKey("clinic", 1280); got != "images/clinic-1280w.jpg" {
		t.Errorf("VariantKey = %q", got)
	}
	if got := OriginalKey("clinic", ".png"); got != "images/originals/clinic.png" {
		t.Errorf("OriginalKey = %q", got)
	}
}

func TestIsAllowedImageType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"IMAGE/PNG", true},
		{"image/webp; charset=binary", true},
		{"image/gif", false},
		{"application/pdf", false},
	}
	for _, tt := range tests {
		if got := IsAllowedImageType(tt.contentType); got != tt.want {
			t.Errorf("IsAllowedImageType(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
