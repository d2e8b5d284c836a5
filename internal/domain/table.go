package domain

// Nomes das tabelas de entrada
const (
	TableBulk       = "bulk"
	TableSearchTerm = "search_term"
)

// Table é uma planilha já decodificada: cabeçalho e células em texto bruto.
// Um *Table nil significa que o arquivo não foi enviado.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// AuditInputs reúne as duas tabelas de uma execução
type AuditInputs struct {
	Bulk       *Table
	SearchTerm *Table
}
