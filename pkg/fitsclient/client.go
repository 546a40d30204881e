// Package fitsclient — HTTP-клиент API просмотра FITS: метаданные файла и
// срезы массивов. Повторяет wire-контракт сервера из pkg/fitsproto.
package fitsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joseph-long/jupyterlab-fitsview/pkg/fitsproto"
)

// HDU — описание одного HDU в ответе metadata.
type HDU struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Header    string  `json:"header"`
	Shape     []int   `json:"shape"`
	ArrayType *string `json:"arrayType"`
}

// Metadata — тело ответа metadata-эндпоинта.
type Metadata struct {
	Path        string `json:"path"`
	NExtensions int    `json:"n_extensions"`
	HDUs        []HDU  `json:"hdus"`
}

// SliceResult — расшифрованный ответ slice-эндпоинта.
type SliceResult struct {
	Shape []int
	Type  string
	Data  []byte
}

type Client interface {
	// Metadata запрашивает перечень HDU файла.
	Metadata(ctx context.Context, baseURL, path string) (Metadata, error)
	// Slice запрашивает срез массива одного HDU.
	Slice(ctx context.Context, baseURL, path string, hdu int, slices string) (SliceResult, error)
}

type httpClient struct {
	c *http.Client
}

// New создаёт HTTP-клиент по умолчанию.
func New() Client {
	return &httpClient{
		c: &http.Client{},
	}
}

// Metadata выполняет GET /fitsview/metadata и декодирует JSON-ответ.
func (h *httpClient) Metadata(ctx context.Context, baseURL, path string) (Metadata, error) {
	q := url.Values{}
	q.Set("path", path)

	body, _, err := h.get(ctx, baseURL+fitsproto.MetadataPath+"?"+q.Encode())
	if err != nil {
		return Metadata{}, err
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata response: %w", err)
	}
	return meta, nil
}

// Slice выполняет GET /fitsview/slice и разбирает типизированные заголовки.
func (h *httpClient) Slice(ctx context.Context, baseURL, path string, hdu int, slices string) (SliceResult, error) {
	q := url.Values{}
	q.Set("path", path)
	q.Set("hdu", strconv.Itoa(hdu))
	q.Set("slices", slices)

	body, header, err := h.get(ctx, baseURL+fitsproto.SlicePath+"?"+q.Encode())
	if err != nil {
		return SliceResult{}, err
	}

	var shape []int
	if err := json.Unmarshal([]byte(header.Get(fitsproto.HeaderShape)), &shape); err != nil {
		return SliceResult{}, fmt.Errorf("decode %s header: %w", fitsproto.HeaderShape, err)
	}

	return SliceResult{
		Shape: shape,
		Type:  header.Get(fitsproto.HeaderType),
		Data:  body,
	}, nil
}

// get выполняет запрос и превращает не-200 ответы в ошибку с текстом из
// тела {"error": ...}.
func (h *httpClient) get(ctx context.Context, u string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return nil, nil, fmt.Errorf("fitsview GET failed: %s: %s", resp.Status, payload.Error)
		}
		return nil, nil, fmt.Errorf("fitsview GET failed: %s", resp.Status)
	}

	return body, resp.Header, nil
}
