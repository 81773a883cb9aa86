package storage

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DetectContentType determines the MIME type of a file.
//
// Detection priority:
// 1. providedType, if non-empty
// 2. extension lookup via mime.TypeByExtension
// 3. sniffing the first 512 bytes of data, if available
// 4. "application/octet-stream"
func DetectContentType(providedType, filename string, data io.Reader) string {
	if providedType != "" {
		return providedType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if data != nil {
		buffer := make([]byte, 512)
		n, err := io.ReadFull(data, buffer)
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return http.DetectContentType(buffer[:n])
		}
	}

	return "application/octet-stream"
}

// AllowedImageTypes are the MIME types accepted for source photography fed
// to the variant generator.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedImageType checks if a content type is an accepted source image
// format. Parameters like charset are ignored.
func IsAllowedImageType(contentType string) bool {
	baseType := strings.Split(contentType, ";")[0]
	baseType = strings.TrimSpace(strings.ToLower(baseType))
	return AllowedImageTypes[baseType]
}
