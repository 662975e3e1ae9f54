// Package share builds the shareable deep link for a praise and the
// external QR image URL for that link. Image rendering itself is
// delegated to the external endpoint; the core's obligation ends at the
// canonical link string.
package share

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service produces share links and QR image URLs.
type Service struct {
	baseURL string
	qrAPI   string
	qrSize  int
	client  *http.Client
}

func NewService(baseURL, qrAPI string, qrSize int) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		qrAPI:   qrAPI,
		qrSize:  qrSize,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ShareableLink returns the canonical deep link carrying the praise as
// a URL-encoded query parameter.
func (s *Service) ShareableLink(praise string) string {
	return s.baseURL + "?shared=" + url.QueryEscape(praise)
}

// QRImageURL returns the external code-image endpoint URL rendering the
// shareable link as a PNG.
func (s *Service) QRImageURL(link string) string {
	return fmt.Sprintf("%s?size=%dx%d&data=%s&format=png",
		s.qrAPI, s.qrSize, s.qrSize, url.QueryEscape(link))
}

// FetchQRImage downloads the rendered QR image bytes.
func (s *Service) FetchQRImage(link string) ([]byte, error) {
	resp, err := s.client.Get(s.QRImageURL(link))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch QR image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("QR endpoint returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// SharedPraiseFromURL extracts a praise from a shared deep link, or ""
// when the link carries none.
func SharedPraiseFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get("shared")
}
