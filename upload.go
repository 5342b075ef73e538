package adopcion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the maximum accepted image size in bytes.
const MaxFileSize = 5 * 1024 * 1024

// allowed image extensions, matching the backend's accepted MIME types.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadService sends images to the external upload endpoint.
type UploadService struct {
	client *Client
}

// Upload streams an image file to the backend and returns the public URL
// of the stored copy. The file is rejected client-side when it exceeds
// MaxFileSize or has an unsupported extension.
func (s *UploadService) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q: use JPG, PNG or WebP", ext)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	n, err := io.Copy(part, io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if n > MaxFileSize {
		return "", fmt.Errorf("file too large: maximum is %d bytes", MaxFileSize)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}

	c := s.client
	reqURL := strings.TrimSuffix(c.baseURL, "/") + "/api/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerContentType, w.FormDataContentType())
	req.Header.Set(headerUserAgent, c.userAgent)
	req.Header.Set(headerRequestID, uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.fail(networkError(err), false)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.fail(networkError(err), false)
	}
	if resp.StatusCode >= 400 {
		return "", c.fail(parseError(resp.StatusCode, respBody), false)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("failed to parse response data: %w", err)
	}
	return data.URL, nil
}
