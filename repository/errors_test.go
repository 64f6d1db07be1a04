package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"duplicate", gorm.ErrDuplicatedKey, ErrDuplicate},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.in))
		})
	}
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(&gorm.DB{RowsAffected: 0}), ErrNotFound)
	assert.NoError(t, affected(&gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, affected(&gorm.DB{Error: gorm.ErrRecordNotFound}), ErrNotFound)
}
