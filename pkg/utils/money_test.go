package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "Valor completo com símbolo, milhar e centavos",
			input:    "R$ 50.000,00",
			expected: 50000,
		},
		{
			name:     "Valor sem centavos",
			input:    "R$ 1.500",
			expected: 1500,
		},
		{
			name:     "Valor sem formatação",
			input:    "50000",
			expected: 50000,
		},
		{
			name:     "Valor com espaços extras",
			input:    "  R$ 800,00  ",
			expected: 800,
		},
		{
			name:     "Centavos com um dígito",
			input:    "R$ 500,5",
			expected: 500,
		},
		{
			name:     "Vírgula sem centavos numéricos não é descartada",
			input:    "R$ 100,x9",
			expected: 1009,
		},
		{
			name:     "Entrada vazia",
			input:    "",
			expected: 0,
		},
		{
			name:     "Entrada não numérica",
			input:    "cinquenta mil",
			expected: 0,
		},
		{
			name:     "Somente símbolo",
			input:    "R$",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBRL(tt.input))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, ParseCount("3"))
	assert.Equal(t, 100, ParseCount(" 100 "))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("abc"))
	assert.Equal(t, 0, ParseCount("-5"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0", FormatBRL(0))
	assert.Equal(t, "R$ 800", FormatBRL(800))
	assert.Equal(t, "R$ 1.500", FormatBRL(1500))
	assert.Equal(t, "R$ 50.000", FormatBRL(50000))
	assert.Equal(t, "R$ 1.320.000", FormatBRL(1320000))
	assert.Equal(t, "R$ -2.500", FormatBRL(-2500))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "clinica-sorriso", Slugify("Clinica Sorriso"))
	assert.Equal(t, "odonto-vida-premium", Slugify("  Odonto  Vida   Premium "))
	assert.Equal(t, "", Slugify("   "))
}
