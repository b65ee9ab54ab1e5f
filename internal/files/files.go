package files

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/logger"
)

// allowedTypes is the attachment allow-list: common images, PDF, Word,
// Excel, PowerPoint, and plain text.
var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/plain": true,
}

// IsValidContentType reports whether the MIME type is on the allow-list.
func IsValidContentType(contentType string) bool {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return allowedTypes[strings.TrimSpace(contentType)]
}

// IsValidFileType reports whether the file's extension maps to an allowed
// MIME type.
func IsValidFileType(name string) bool {
	return IsValidContentType(ContentTypeFor(name))
}

// ContentTypeFor derives the MIME type from the file extension.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".ppt":
		return "application/vnd.ms-powerpoint"
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".txt":
		return "text/plain"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// IsValidFileSize reports whether size fits within maxMB megabytes.
func IsValidFileSize(size int64, maxMB int) bool {
	return size <= int64(maxMB)*1024*1024
}

// FormatFileSize renders a byte count for CLI output.
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMG"[exp])
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}

// ObjectName generates a collision-resistant storage name preserving the
// original extension: "<unix millis>-<random suffix><ext>".
func ObjectName(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(6), strings.ToLower(filepath.Ext(original)))
}

// Adapter uploads and deletes binary attachments against the gateway's
// storage namespace. All operations degrade to failure results when the
// gateway is unavailable; nothing here panics or throws past its boundary.
type Adapter struct {
	cfg  gateway.Config
	http *http.Client
}

// NewAdapter creates a file transfer adapter. A nil httpClient selects a
// default with a transfer timeout.
func NewAdapter(cfg gateway.Config, httpClient *http.Client) *Adapter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Adapter{
		cfg:  cfg,
		http: httpClient,
	}
}

// Available reports whether uploads can reach the remote store.
func (a *Adapter) Available() bool {
	return a.cfg.Available()
}

// Upload validates and transfers one local file, returning its durable
// public URL. Validation failures are reported before any I/O with messages
// distinct from transfer failures.
func (a *Adapter) Upload(ctx context.Context, path string) (string, error) {
	if !a.cfg.Available() {
		return "", gateway.ErrNotConfigured
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", filepath.Base(path), err)
	}

	name := filepath.Base(path)
	if !IsValidFileType(name) {
		return "", fmt.Errorf("%s: file type not allowed (images, PDF, Office documents, and plain text only)", name)
	}
	if !IsValidFileSize(info.Size(), constants.MaxUploadSizeMB) {
		return "", fmt.Errorf("%s: file exceeds %d MB limit (%s)", name, constants.MaxUploadSizeMB, FormatFileSize(info.Size()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", name, err)
	}

	objectPath := constants.AttachmentFolder + "/" + ObjectName(name)
	endpoint := strings.TrimSuffix(a.cfg.URL, "/") + "/storage/v1/object/" + constants.StorageBucket + "/" + objectPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", a.cfg.Key)
	req.Header.Set("Authorization", "Bearer "+a.cfg.Key)
	req.Header.Set("Content-Type", ContentTypeFor(name))
	req.Header.Set("Cache-Control", "3600")

	resp, err := a.http.Do(req)
	if err != nil {
		logger.Error("Upload failed", "file", name, "error", err)
		return "", fmt.Errorf("%s: upload failed", name)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Upload rejected", "file", name, "status", resp.StatusCode, "detail", strings.TrimSpace(string(detail)))
		return "", fmt.Errorf("%s: upload failed", name)
	}

	return strings.TrimSuffix(a.cfg.URL, "/") + "/storage/v1/object/public/" + constants.StorageBucket + "/" + objectPath, nil
}

// UploadBatch transfers the given files sequentially so that results are
// deterministic and each failure is attributable to a specific file. N files
// yield 0..N URLs plus a per-file error message for every rejection; one bad
// file never aborts the rest of the batch.
func (a *Adapter) UploadBatch(ctx context.Context, paths []string) (urls []string, errs []string) {
	for _, p := range paths {
		u, err := a.Upload(ctx, p)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		urls = append(urls, u)
	}
	return urls, errs
}

// Delete removes the object behind a public URL. Best effort: it reports
// whether removal succeeded and never returns an error to the caller.
func (a *Adapter) Delete(ctx context.Context, fileURL string) bool {
	if !a.cfg.Available() {
		return false
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		logger.Warn("Unparseable attachment URL", "url", fileURL, "error", err)
		return false
	}

	// The object path is everything after the bucket segment
	parts := strings.Split(u.Path, "/")
	idx := -1
	for i, p := range parts {
		if p == constants.StorageBucket {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(parts) {
		logger.Warn("Attachment URL missing bucket path", "url", fileURL)
		return false
	}
	objectPath := strings.Join(parts[idx+1:], "/")

	endpoint := strings.TrimSuffix(a.cfg.URL, "/") + "/storage/v1/object/" + constants.StorageBucket + "/" + objectPath
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("apikey", a.cfg.Key)
	req.Header.Set("Authorization", "Bearer "+a.cfg.Key)

	resp, err := a.http.Do(req)
	if err != nil {
		logger.Error("Attachment delete failed", "url", fileURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
