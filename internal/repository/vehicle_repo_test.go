package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	cases := []struct {
		name   string
		sortBy string
		order  string
		want   string
	}{
		{"default", "", "", "created_at DESC"},
		{"unknown key falls back", "mileage", "desc", "created_at DESC"},
		{"injection attempt falls back", "selling_price; DROP TABLE vehicles", "asc", "created_at DESC"},
		{"price asc", "price", "", "selling_price ASC"},
		{"price desc", "price", "desc", "selling_price DESC"},
		{"date asc", "date", "asc", "created_at ASC"},
		{"date desc", "date", "desc", "created_at DESC"},
		{"unknown order treated as asc", "price", "sideways", "selling_price ASC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.sortBy, tc.order))
		})
	}
}
