// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/storage"
)

// maxUploadSize is the maximum allowed image upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedImageTypes defines MIME types accepted for post images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Upload handles multipart image uploads to S3.
type Upload struct {
	storage *storage.Client
}

// NewUpload creates the upload handler. storageClient may be nil when S3
// is not configured; uploads then return 503.
func NewUpload(storageClient *storage.Client) *Upload {
	return &Upload{storage: storageClient}
}

// Image handles POST /api/upload. The object key is
// posts/<unix-ms>-<random>.<ext> and the response carries the public URL.
func (h *Upload) Image(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeJSON(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "object storage is not configured"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, envelope{Success: false, Message: "file too large, maximum size is 10 MB"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondBadRequest(w, "no image file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeJSON(w, http.StatusRequestEntityTooLarge, envelope{Success: false, Message: "file too large, maximum size is 10 MB"})
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		respondError(w, "upload read", err)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedImageTypes[contentType] {
		respondBadRequest(w, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, "upload seek", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extForType(contentType)
	}
	key := fmt.Sprintf("posts/%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		respondError(w, "upload", err)
		return
	}

	respondData(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": h.storage.FileURL(key),
	})
}

// extForType maps an allowed MIME type to a file extension, for uploads
// whose filename carries none.
func extForType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
