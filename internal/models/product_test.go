package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft ProductDraft
		want  error
	}{
		{"valid", ProductDraft{Name: "Teh Botol", SellPrice: 5000}, nil},
		{"valid with image", ProductDraft{Name: "Teh", Image: "data:image/jpeg;base64,aGk="}, nil},
		{"zero price ok", ProductDraft{Name: "Muestra gratis"}, nil},
		{"empty name", ProductDraft{Name: ""}, ErrNameRequired},
		{"whitespace name", ProductDraft{Name: "   "}, ErrNameRequired},
		{"negative price", ProductDraft{Name: "Teh", SellPrice: -1}, ErrNegativePrice},
		{"non image payload", ProductDraft{Name: "Teh", Image: "data:application/pdf;base64,aGk="}, ErrNotAnImage},
		{"oversized image", ProductDraft{Name: "Teh", Image: "data:image/png;base64," + strings.Repeat("A", MaxImageBytes)}, ErrImageTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
