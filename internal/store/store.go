package store

import (
	"context"
	"errors"

	"warung-catalog/internal/models"
)

// ErrNotFound se devuelve cuando el id no existe en la tabla remota.
var ErrNotFound = errors.New("product not found")

// CatalogStore es la tabla remota de productos. Todos los errores se
// tratan como fallas transitorias: el core reconcilia con un reload
// completo, nunca con parches incrementales.
type CatalogStore interface {
	// List devuelve todas las filas ordenadas por last_updated descendente.
	List(ctx context.Context) ([]models.Product, error)
	// Insert persiste una fila nueva; el id ya viene asignado por el cliente.
	Insert(ctx context.Context, p models.Product) error
	// Update reemplaza los campos mutables de la fila id.
	Update(ctx context.Context, id string, p models.Product) error
	// Delete elimina la fila id de forma definitiva.
	Delete(ctx context.Context, id string) error
}
