package utils

import "strings"

// Slugify normaliza um nome para uso em nome de arquivo: caixa baixa e
// sequências de espaços substituídas por hífen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
