package models

import (
	"errors"
	"strings"
	"time"
)

// MaxImageBytes limita el tamaño del payload de imagen inline (data URI).
const MaxImageBytes = 2 << 20

var (
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("sell price must not be negative")
	ErrImageTooLarge = errors.New("image exceeds the maximum allowed size")
	ErrNotAnImage    = errors.New("attached payload is not an inline image")
)

// Product representa un producto del catálogo del warung.
// Los tags json son el contrato camelCase hacia la capa de presentación;
// los tags bson son el esquema snake_case de la tabla remota.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	SellPrice   int64     `json:"sellPrice" bson:"sell_price"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	LastUpdated time.Time `json:"lastUpdated" bson:"last_updated"`
}

// ProductDraft son los campos editables de un producto; el core asigna
// id y lastUpdated.
type ProductDraft struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category"`
	SellPrice int64  `json:"sellPrice"`
	Image     string `json:"image,omitempty"`
}

// Validate rechaza el borrador antes de cualquier mutación local o
// llamada remota.
func (d ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if d.SellPrice < 0 {
		return ErrNegativePrice
	}
	if d.Image != "" {
		if !strings.HasPrefix(d.Image, "data:image/") {
			return ErrNotAnImage
		}
		if len(d.Image) > MaxImageBytes {
			return ErrImageTooLarge
		}
	}
	return nil
}

// AIPriceSuggestion es la sugerencia efímera del servicio de IA;
// se consume una vez para pre-llenar el formulario y se descarta.
type AIPriceSuggestion struct {
	SuggestedSellPrice int64  `json:"suggestedSellPrice"`
	SuggestedCategory  string `json:"suggestedCategory"`
	MarketPriceRange   string `json:"marketPriceRange"`
	Reasoning          string `json:"reasoning"`
}
