package utils

import (
	"strconv"
	"strings"
)

// ParseBRL converte um valor monetário formatado pelo formulário
// ("R$ 50.000,00", "50000", "R$ 1.500") para um inteiro em reais.
// Centavos não são modelados: uma vírgula decimal final é descartada antes
// da limpeza. A conversão é total: qualquer entrada não interpretável
// resulta em zero, nunca em erro.
func ParseBRL(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}

	// Descartar o grupo de centavos ("...,00") quando presente
	if i := strings.LastIndex(v, ","); i >= 0 {
		cents := v[i+1:]
		if len(cents) <= 2 && isDigits(cents) {
			v = v[:i]
		}
	}

	// Remover símbolo de moeda, separadores de milhar e espaços
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}

	return n
}

// ParseCount converte um campo numérico do formulário (cadeiras, pacientes,
// indicações) para inteiro, tratando entrada malformada como zero.
func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatBRL formata um valor em reais com separador de milhar,
// ex: 50000 -> "R$ 50.000".
func FormatBRL(value int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	digits := strconv.Itoa(value)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "R$ -" + b.String()
	}
	return "R$ " + b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
