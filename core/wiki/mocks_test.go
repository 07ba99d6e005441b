package wiki

import (
	"context"
	"io"
	"strings"
	"time"

	"runebot-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockSuggestionSource is a mock implementation of the SuggestionSource interface
type mockSuggestionSource struct {
	getSuggestionsFunc    func(ctx context.Context, categories []string) ([]string, error)
	getAllSuggestionsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSuggestionSource) GetSuggestions(ctx context.Context, categories []string) ([]string, error) {
	if m.getSuggestionsFunc != nil {
		return m.getSuggestionsFunc(ctx, categories)
	}
	return nil, nil
}

func (m *mockSuggestionSource) GetAllSuggestions(ctx context.Context) ([]string, error) {
	if m.getAllSuggestionsFunc != nil {
		return m.getAllSuggestionsFunc(ctx)
	}
	return nil, nil
}
