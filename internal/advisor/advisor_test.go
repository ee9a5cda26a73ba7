package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warung-catalog/internal/cache"
)

// newTestClient apunta el cliente a un servidor de prueba que imita la
// API de OpenAI.
func newTestClient(baseURL string, suggestions *cache.Cache) *Client {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = baseURL + "/v1"
	return &Client{
		ai:    openai.NewClientWithConfig(cfg),
		model: "gpt-test",
		cache: suggestions,
		ttl:   time.Minute,
	}
}

func chatCompletionBody(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"id":     "cmpl-test",
		"object": "chat.completion",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return body
}

func TestSuggestWithoutCredential(t *testing.T) {
	c := New("", "", nil)
	assert.Nil(t, c.Suggest(context.Background(), "Kopi Sachet"))
}

func TestSuggestEmptyName(t *testing.T) {
	c := New("some-key", "", nil)
	assert.Nil(t, c.Suggest(context.Background(), "   "))
}

func TestSuggestParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(`{"suggestedSellPrice":5000,"suggestedCategory":"Minuman","marketPriceRange":"Rp 4.500 - Rp 5.500","reasoning":"harga standar warung"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	s := c.Suggest(context.Background(), "Teh Botol")
	require.NotNil(t, s)
	assert.Equal(t, int64(5000), s.SuggestedSellPrice)
	assert.Equal(t, "Minuman", s.SuggestedCategory)
	assert.Equal(t, "Rp 4.500 - Rp 5.500", s.MarketPriceRange)
	assert.NotEmpty(t, s.Reasoning)
}

func TestSuggestServerErrorIsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	assert.Nil(t, c.Suggest(context.Background(), "Teh Botol"))
}

func TestSuggestUnusableResponseIsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody("maaf, tidak bisa"))
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	assert.Nil(t, c.Suggest(context.Background(), "Teh Botol"))
}

func TestSuggestCachesByNormalizedName(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(`{"suggestedSellPrice":2000,"suggestedCategory":"Minuman","marketPriceRange":"Rp 1.500 - Rp 2.500","reasoning":"sachet kecil"}`))
	}))
	defer server.Close()

	suggestions := cache.New(time.Minute)
	defer suggestions.Close()
	c := newTestClient(server.URL, suggestions)

	first := c.Suggest(context.Background(), "Kopi Sachet")
	second := c.Suggest(context.Background(), "  kopi sachet ")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "la segunda llamada sale del caché")
}

func TestGenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/images/generations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]interface{}{
			"created": 1,
			"data":    []map[string]string{{"b64_json": "aW1hZ2VieXRlcw=="}},
		})
		w.Write(body)
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	image := c.GenerateImage(context.Background(), "Teh Botol")
	assert.Equal(t, "data:image/png;base64,aW1hZ2VieXRlcw==", image)
}

func TestGenerateImageWithoutCredential(t *testing.T) {
	c := New("", "", nil)
	assert.Empty(t, c.GenerateImage(context.Background(), "Teh Botol"))
}

func TestGenerateImageServerErrorIsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server.URL, nil)
	assert.Empty(t, c.GenerateImage(context.Background(), "Teh Botol"))
}

func TestNewDefaultsModel(t *testing.T) {
	c := New("some-key", "", nil)
	assert.Equal(t, openai.GPT4oMini, c.model)
}
