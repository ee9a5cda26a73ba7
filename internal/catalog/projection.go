package catalog

import (
	"sort"
	"strings"

	"warung-catalog/internal/models"
)

// Filter devuelve los productos cuyo nombre o categoría contienen query
// (sin distinguir mayúsculas). Query vacío devuelve la lista completa en
// su orden actual. Función pura, apta para recomputar en cada render.
func Filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories devuelve las categorías distintas no vacías presentes en la
// lista, ordenadas lexicográficamente.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
