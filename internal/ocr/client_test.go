package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anpr-service/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		OCR: config.OCRConfig{
			ServiceURL:    baseURL,
			InternalToken: "secret",
			Timeout:       5 * time.Second,
		},
	})
}

func TestClientDetect(t *testing.T) {
	crop := []byte{0x89, 0x50, 0x4e, 0x47}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/ocr/detect", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Internal-Token"))

		var req struct {
			ImageBase64 string `json:"image_base64"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		require.NoError(t, err)
		assert.Equal(t, crop, decoded)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"text":"KF-7617","confidence":0.91}]}`))
	}))
	defer server.Close()

	hypotheses, err := newTestClient(server.URL).Detect(context.Background(), crop)
	require.NoError(t, err)
	require.Len(t, hypotheses, 1)
	assert.Equal(t, "KF-7617", hypotheses[0].Text)
	assert.Equal(t, 0.91, hypotheses[0].Confidence)
}

func TestClientDetectServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Detect(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientDetectBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Detect(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestClientDetectMissingURL(t *testing.T) {
	_, err := newTestClient("").Detect(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
