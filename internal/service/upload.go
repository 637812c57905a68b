package service

import (
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// MaxUploadSize はアップロード 1 ファイルあたりの上限 (5MB)
const MaxUploadSize int64 = 5 << 20

// allowedImageTypes is the MIME allow-list for uploaded images.
var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// FileUpload is a single file received from a multipart form.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// checkImage enforces the MIME allow-list and size ceiling and returns the
// extension to use for the object key.
func checkImage(f FileUpload) (string, error) {
	if f.Data == nil {
		return "", invalid("file is required")
	}
	ct, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return "", invalid("invalid file type")
	}
	ext, ok := allowedImageTypes[strings.ToLower(ct)]
	if !ok {
		return "", invalid("invalid file type: only JPEG, PNG, GIF, WebP and SVG are allowed")
	}
	if f.Size > MaxUploadSize {
		return "", invalid("file too large: maximum size is 5MB")
	}
	// 元のファイル名の拡張子が許可リストと一致するならそれを使う
	if orig := strings.ToLower(filepath.Ext(f.Filename)); orig != "" {
		for _, allowed := range allowedImageTypes {
			if orig == allowed || (orig == ".jpeg" && allowed == ".jpg") {
				return orig, nil
			}
		}
	}
	return ext, nil
}
