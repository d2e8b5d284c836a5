package auditing

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos do contexto de auditoria
var (
	// Erros de entrada
	ErrInputsMissing     = errors.New("inputs missing")
	ErrInvalidTargetAcos = errors.New("target ACOS must be a number between 0 and 100")

	// Erros de esquema
	ErrSchema = errors.New("schema error")
)

// SchemaError indica que uma coluna obrigatória não existe na tabela
type SchemaError struct {
	Table string // Tabela de origem (bulk ou search_term)
	Field string // Coluna ausente
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: table %q is missing required column %q", ErrSchema.Error(), e.Table, e.Field)
}

// Unwrap retorna o erro base
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// MissingInputError lista as tabelas que não foram enviadas
type MissingInputError struct {
	Tables []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInputsMissing.Error(), strings.Join(e.Tables, ", "))
}

func (e *MissingInputError) Unwrap() error {
	return ErrInputsMissing
}
