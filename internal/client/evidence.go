package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

// EvidenceClient uploads evidence batches to the support gateway. One
// batched request per submission; the response URL list matches the
// request item order.
type EvidenceClient struct {
	baseURL string
	http    *http.Client
}

func NewEvidenceClient(baseURL string, timeout time.Duration) *EvidenceClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EvidenceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *EvidenceClient) Upload(ctx context.Context, items []domain.EvidenceItem) ([]string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for _, item := range items {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="evidence"; filename=%q`, item.Name))
		if item.MIME != "" {
			hdr.Set("Content-Type", item.MIME)
		}

		part, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, e.Wrap("client.Upload", err)
		}
		if _, err := part.Write(item.Data); err != nil {
			return nil, e.Wrap("client.Upload", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, e.Wrap("client.Upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/evidence", &body)
	if err != nil {
		return nil, e.Wrap("client.Upload", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Upload: %s: %w", err.Error(), e.ErrUploadFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("client.Upload: %s: %w", resp.Status, e.ErrUploadFailed)
	}

	var out domain.UploadEvidenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("client.Upload: decode: %w", e.ErrUploadFailed)
	}
	if len(out.URLs) != len(items) {
		return nil, fmt.Errorf("client.Upload: got %d urls for %d items: %w",
			len(out.URLs), len(items), e.ErrUploadFailed)
	}

	return out.URLs, nil
}
