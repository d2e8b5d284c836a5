package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDSize  = 12
)

// GenerateID gera o identificador de uma execução de auditoria.
// O alfabeto evita caracteres que precisem de escape em nomes de arquivo.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, runIDSize)
}
