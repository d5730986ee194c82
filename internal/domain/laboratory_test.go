package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaboratoryAvailable(t *testing.T) {
	cases := []struct {
		name string
		lab  Laboratory
		want bool
	}{
		{"active with capacity", Laboratory{Activo: true, CapacidadDiaria: 10}, true},
		{"active without capacity", Laboratory{Activo: true, CapacidadDiaria: 0}, false},
		{"inactive with capacity", Laboratory{Activo: false, CapacidadDiaria: 10}, false},
		{"negative capacity", Laboratory{Activo: true, CapacidadDiaria: -1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.lab.Available())
		})
	}
}
