// Package catalog mantiene la lista de productos de la sesión y la
// reconcilia con la tabla remota bajo una estrategia optimista: la
// mutación local es visible de inmediato, la llamada remota se despacha
// después y, si falla, un reload completo restablece la verdad del store.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"warung-catalog/internal/models"
	"warung-catalog/internal/store"
)

// ErrNotFound se devuelve cuando una mutación referencia un id que no
// está en la lista local.
var ErrNotFound = errors.New("product not found in catalog")

// FailureHandler recibe la notificación asíncrona de una llamada remota
// fallida, después de que el reload de reconciliación ya corrió.
type FailureHandler func(op, id string, err error)

// Catalog es el dueño exclusivo de la lista de productos en memoria.
// La capa de presentación recibe copias de solo lectura y canaliza toda
// mutación por Create/Update/Delete/Reload.
//
// Dos mutaciones sobre el mismo id antes de que resuelva la primera
// llamada remota quedan en last-write-wins local; el store puede recibir
// las escrituras fuera de orden, y el siguiente Reload restablece la
// verdad. No se serializa por id.
type Catalog struct {
	store     store.CatalogStore
	onFailure FailureHandler

	mu       sync.RWMutex
	products []models.Product
	loading  bool
	failed   bool

	wg sync.WaitGroup

	// inyectables en tests
	now   func() time.Time
	newID func() string
}

func New(s store.CatalogStore) *Catalog {
	return &Catalog{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetFailureHandler registra el callback de fallas remotas. Debe llamarse
// antes de la primera mutación.
func (c *Catalog) SetFailureHandler(h FailureHandler) {
	c.onFailure = h
}

// Reload reemplaza la lista local por completo con el contenido del
// store (ya ordenado por last_updated descendente). Si el store falla,
// la lista previa queda intacta y el flag failed se enciende. Es el
// único mecanismo de recuperación tras una mutación fallida.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.store.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.failed = true
		return err
	}
	c.failed = false
	c.products = products
	return nil
}

// Create valida el borrador, inserta el producto nuevo al frente de la
// lista local y despacha el insert remoto. Devuelve el producto con su
// id asignado de forma síncrona, sin esperar la llamada remota.
func (c *Catalog) Create(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	if err := draft.Validate(); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:          c.newID(),
		Name:        strings.TrimSpace(draft.Name),
		Category:    draft.Category,
		SellPrice:   draft.SellPrice,
		Image:       draft.Image,
		LastUpdated: c.now(),
	}

	c.mu.Lock()
	c.products = append([]models.Product{p}, c.products...)
	c.mu.Unlock()

	c.dispatch(ctx, "create", p.ID, func(ctx context.Context) error {
		return c.store.Insert(ctx, p)
	})
	return p, nil
}

// Update reemplaza los campos editables del producto id en su posición
// actual (no re-ordena) y refresca lastUpdated, luego despacha el update
// remoto.
func (c *Catalog) Update(ctx context.Context, id string, draft models.ProductDraft) (models.Product, error) {
	if err := draft.Validate(); err != nil {
		return models.Product{}, err
	}

	updated := models.Product{
		ID:          id,
		Name:        strings.TrimSpace(draft.Name),
		Category:    draft.Category,
		SellPrice:   draft.SellPrice,
		Image:       draft.Image,
		LastUpdated: c.now(),
	}

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return models.Product{}, ErrNotFound
	}
	c.products[idx] = updated
	c.mu.Unlock()

	c.dispatch(ctx, "update", id, func(ctx context.Context) error {
		return c.store.Update(ctx, id, updated)
	})
	return updated, nil
}

// Delete quita el producto de la lista local y despacha el delete
// remoto. Si la llamada remota falla, el reload de reconciliación vuelve
// a traer la fila, porque el store nunca la borró.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.products = append(c.products[:idx], c.products[idx+1:]...)
	c.mu.Unlock()

	c.dispatch(ctx, "delete", id, func(ctx context.Context) error {
		return c.store.Delete(ctx, id)
	})
	return nil
}

// GetAll devuelve una copia de la lista en su orden actual.
func (c *Catalog) GetAll() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Failed reporta si la última reconciliación con el store falló.
func (c *Catalog) Failed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.failed
}

// Wait bloquea hasta que resuelvan todas las llamadas remotas en vuelo.
// Lo usan el shutdown y los tests; la capa de presentación no lo necesita.
func (c *Catalog) Wait() {
	c.wg.Wait()
}

// dispatch lanza la llamada remota de una mutación ya aplicada
// localmente. Se desliga de la cancelación del request: una vez
// despachada, la llamada corre hasta su resolución. Ante un error se
// reconcilia con Reload y recién entonces se notifica la falla.
func (c *Catalog) dispatch(ctx context.Context, op, id string, call func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := call(ctx)
		if err == nil {
			return
		}
		_ = c.Reload(ctx)
		if c.onFailure != nil {
			c.onFailure(op, id, err)
		}
	}()
}

// indexOf asume que el caller tiene el lock.
func (c *Catalog) indexOf(id string) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}
