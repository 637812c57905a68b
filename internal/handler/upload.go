package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/rtaweb/backend/internal/service"
)

// multipart のオーバーヘッド分だけ上限に余裕を持たせる
const maxMultipartBody = service.MaxUploadSize + 1<<20

// readUpload parses a multipart form and returns its "file" part. The caller
// must close the returned file.
func readUpload(w http.ResponseWriter, r *http.Request) (service.FileUpload, multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "file too large: maximum size is 5MB")
			return service.FileUpload{}, nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return service.FileUpload{}, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return service.FileUpload{}, nil, false
	}
	return service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	}, file, true
}
