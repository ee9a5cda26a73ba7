// Package advisor envuelve la API de OpenAI para sugerencias de precio
// y generación de imágenes de producto. Es best-effort: un solo intento,
// y cualquier falla (credencial ausente, error de red, respuesta
// inutilizable) se reporta como ausencia, nunca como error hacia el core.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"warung-catalog/internal/cache"
	"warung-catalog/internal/models"
)

const suggestionPrompt = `Berikan estimasi harga jual eceran yang wajar untuk toko kelontong/warung kecil di Indonesia untuk produk: %q.

Pilih kategori yang paling tepat dari daftar ini jika cocok:
- Makanan
- Minuman
- Sembako (Beras, Minyak, Telur, dll)
- Perlengkapan Mandi (Sabun, Sampo, Odol)
- Kebersihan Rumah (Sabun Lantai, Deterjen)
- Obat-obatan
- Rokok
- Gas & Galon
- Lainnya

Jawab hanya dengan objek JSON dengan field:
"suggestedSellPrice" (angka Rupiah tanpa titik),
"suggestedCategory" (string),
"marketPriceRange" (string, contoh: "Rp 2.000 - Rp 3.000"),
"reasoning" (string singkat dalam bahasa Indonesia yang santai).`

const imagePrompt = `Product photography of %s packaging, isolated on a clean white background, commercial advertisement style, high quality, photorealistic. Indonesian grocery product context.`

// Client es el wrapper del servicio de asesoría. Un api key vacío deja
// el cliente deshabilitado: toda llamada devuelve ausencia.
type Client struct {
	ai    *openai.Client
	model string
	cache *cache.Cache
	ttl   time.Duration
}

func New(apiKey, model string, suggestions *cache.Cache) *Client {
	c := &Client{
		model: model,
		cache: suggestions,
		ttl:   10 * time.Minute,
	}
	if c.model == "" {
		c.model = openai.GPT4oMini
	}
	if apiKey == "" {
		log.Println("⚠️ OPENAI_API_KEY no configurada; sugerencias de IA deshabilitadas")
		return c
	}
	c.ai = openai.NewClient(apiKey)
	return c
}

// Suggest pide una sugerencia de precio/categoría para el nombre dado.
// Devuelve nil ("sin sugerencia") ante credencial ausente, nombre vacío,
// error remoto o respuesta que no parsea. Las sugerencias exitosas se
// cachean por nombre normalizado.
func (c *Client) Suggest(ctx context.Context, productName string) *models.AIPriceSuggestion {
	name := strings.TrimSpace(productName)
	if name == "" || c.ai == nil {
		return nil
	}

	key := "suggestion:" + strings.ToLower(name)
	if c.cache != nil {
		if cached, found := c.cache.Get(key); found {
			if s, ok := cached.(*models.AIPriceSuggestion); ok {
				return s
			}
		}
	}

	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(suggestionPrompt, name)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.Printf("⚠️ sugerencia de IA falló para %q: %v", name, err)
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	var suggestion models.AIPriceSuggestion
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &suggestion); err != nil {
		log.Printf("⚠️ respuesta de IA inutilizable para %q: %v", name, err)
		return nil
	}

	if c.cache != nil {
		c.cache.Set(key, &suggestion, c.ttl)
	}
	return &suggestion
}

// GenerateImage genera una foto de producto y la devuelve como data URI
// base64, o "" ante cualquier falla. Un solo intento, sin reintentos.
func (c *Client) GenerateImage(ctx context.Context, productName string) string {
	name := strings.TrimSpace(productName)
	if name == "" || c.ai == nil {
		return ""
	}

	resp, err := c.ai.CreateImage(ctx, openai.ImageRequest{
		Prompt:         fmt.Sprintf(imagePrompt, name),
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		log.Printf("⚠️ generación de imagen falló para %q: %v", name, err)
		return ""
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return ""
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON
}
