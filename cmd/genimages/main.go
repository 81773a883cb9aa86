// Command genimages resizes source photography into the responsive variant
// ladder and uploads the results to the configured storage backend.
//
// Usage:
//
//	genimages -src ./photos [-overwrite] [-originals]
//
// Each source image foo.jpg produces images/foo-320w.jpg through
// images/foo-1920w.jpg (widths larger than the source are skipped). With
// -originals the untouched source is stored under images/originals/ too.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mediweb/website/internal"
	"github.com/mediweb/website/internal/images"
	"github.com/mediweb/website/internal/storage"
)

func run() error {
	srcDir := flag.String("src", "", "directory of source photographs (required)")
	overwrite := flag.Bool("overwrite", false, "replace existing variants")
	originals := flag.Bool("originals", false, "also store the untouched sources")
	flag.Parse()

	if *srcDir == "" {
		flag.Usage()
		return fmt.Errorf("-src is required")
	}

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	store, err := newStorage(cfg, logger)
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	logger.Info("Storage ready", "provider", cfg.StorageProvider)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	processor := images.NewProcessor()

	entries, err := os.ReadDir(*srcDir)
	if err != nil {
		return fmt.Errorf("read source directory: %w", err)
	}

	var processed, skipped int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(*srcDir, name)

		contentType := storage.DetectContentType("", name, nil)
		if !storage.IsAllowedImageType(contentType) {
			logger.Warn("skipping unsupported file", "file", name, "content_type", contentType)
			skipped++
			continue
		}

		if err := processFile(ctx, processor, store, path, *overwrite, *originals, logger); err != nil {
			return fmt.Errorf("process %s: %w", name, err)
		}
		processed++
	}

	logger.Info("Done", "processed", processed, "skipped", skipped)
	return nil
}

// processFile generates and stores every variant for one source image.
func processFile(ctx context.Context, processor images.Processor, store storage.Storage, path string, overwrite, keepOriginal bool, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	variants, err := processor.GenerateVariants(bytes.NewReader(data), images.DefaultWidths)
	if err != nil {
		return err
	}

	for _, v := range variants {
		key := storage.VariantKey(base, v.Width)
		err := store.Put(ctx, key, bytes.NewReader(v.Data), storage.PutOptions{
			ContentType: "image/jpeg",
			Overwrite:   overwrite,
			Public:      true,
		})
		if err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		logger.Info("variant stored", "key", key, "width", v.Width, "height", v.Height, "bytes", len(v.Data))
	}

	if keepOriginal {
		key := storage.OriginalKey(base, strings.ToLower(ext))
		err := store.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
			Overwrite: overwrite,
			Public:    false,
		})
		if err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		logger.Info("original stored", "key", key, "bytes", len(data))
	}

	return nil
}

// newStorage builds the backend named by STORAGE_PROVIDER.
func newStorage(cfg *internal.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageProvider {
	case storage.ProviderR2:
		return storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		}, logger)
	default:
		return storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
