package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"anpr-service/internal/config"
)

type detectRequest struct {
	ImageBase64 string `json:"image_base64"`
}

type detectResponse struct {
	Data []Hypothesis `json:"data"`
}

// Client — HTTP-клиент движка OCR. Реализует Engine.
type Client struct {
	baseURL       string
	internalToken string
	httpClient    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.OCR.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       cfg.OCR.ServiceURL,
		internalToken: cfg.OCR.InternalToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Detect отправляет вырез кадра движку OCR и возвращает гипотезы распознавания
func (c *Client) Detect(ctx context.Context, image []byte) ([]Hypothesis, error) {
	// Проверяем, что baseURL настроен
	if c.baseURL == "" {
		return nil, fmt.Errorf("OCR service URL is not configured")
	}

	payload, err := json.Marshal(detectRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + "/internal/ocr/detect"

	// Выполняем запрос с retry при сетевых ошибках
	var resp *http.Response
	var lastErr error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.internalToken != "" {
			req.Header.Set("X-Internal-Token", c.internalToken)
		}

		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		// Если это последняя попытка, возвращаем ошибку
		if attempt == maxRetries-1 {
			return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries, lastErr)
		}
		// Ждем перед повторной попыткой
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	if resp == nil {
		return nil, fmt.Errorf("failed to execute request: %w", lastErr)
	}
	defer resp.Body.Close()

	// Читаем ответ
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, string(body))
	}

	// Парсим ответ
	var response detectResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return response.Data, nil
}
