package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error ответ сервера с кодом, отличным от ожидаемого.
type Error struct {
	Status  int
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("server status %d: %s", e.Status, e.Message)
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, ", ") + ")"
	}
	return msg
}

// Do sends a request with an optional body and returns the whole response body.
func Do(ctx context.Context, method, url, contentType string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, data, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(ctx context.Context, url string, payload any) (*http.Response, []byte, error) {
	return sendJSON(ctx, http.MethodPost, url, payload)
}

// PutJSON sends a JSON PUT request.
func PutJSON(ctx context.Context, url string, payload any) (*http.Response, []byte, error) {
	return sendJSON(ctx, http.MethodPut, url, payload)
}

func sendJSON(ctx context.Context, method, url string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return Do(ctx, method, url, "application/json", bytes.NewReader(b))
}

// Get sends a GET request.
func Get(ctx context.Context, url string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodGet, url, "", nil)
}

// Delete sends a DELETE request.
func Delete(ctx context.Context, url string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodDelete, url, "", nil)
}

// Expect возвращает *Error, если код ответа не входит в ожидаемые.
func Expect(resp *http.Response, body []byte, codes ...int) error {
	for _, c := range codes {
		if resp.StatusCode == c {
			return nil
		}
	}
	e := &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	var er struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	if json.Unmarshal(body, &er) == nil && er.Error != "" {
		e.Message, e.Fields = er.Error, er.Fields
	}
	return e
}

// Endpoint склеивает адрес сервера и путь.
func Endpoint(serverURL, path string) string {
	return strings.TrimRight(serverURL, "/") + path
}
