package spreadsheet

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reader.go -destination=mocks/mock_table_reader.go -package=mocks

// ErrUnreadableFile indica que o arquivo enviado não é uma planilha válida
var ErrUnreadableFile = errors.New("unreadable spreadsheet")

// zipMagic é o início de todo arquivo xlsx
var zipMagic = []byte("PK")

// Source é um arquivo de entrada ainda não decodificado
type Source struct {
	Table    string // domain.TableBulk ou domain.TableSearchTerm
	Filename string
	Body     io.Reader
}

// FileError é um erro de leitura com a tabela e o arquivo envolvidos
type FileError struct {
	Table    string
	Filename string
	Err      error
}

// Error implementa a interface error
func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Table, e.Filename, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *FileError) Unwrap() error {
	return e.Err
}

// TableReader decodifica os arquivos enviados em tabelas brutas
type TableReader interface {
	// ReadPair decodifica os dois arquivos em paralelo. Fonte nil resulta em tabela nil.
	ReadPair(ctx context.Context, bulk, searchTerm *Source) (domain.AuditInputs, error)

	// ReadFiles abre os arquivos do disco e chama ReadPair. Caminho vazio resulta em tabela nil.
	ReadFiles(ctx context.Context, bulkPath, searchTermPath string) (domain.AuditInputs, error)
}

// Reader lê exports em xlsx (excelize) ou csv
type Reader struct {
	bulkSheet       string
	searchTermSheet string
}

// NewReader cria um Reader que procura as abas informadas e usa a primeira aba como fallback
func NewReader(bulkSheet, searchTermSheet string) *Reader {
	return &Reader{
		bulkSheet:       bulkSheet,
		searchTermSheet: searchTermSheet,
	}
}

func (r *Reader) ReadPair(ctx context.Context, bulk, searchTerm *Source) (domain.AuditInputs, error) {
	var inputs domain.AuditInputs

	eg, egCtx := errgroup.WithContext(ctx)

	if bulk != nil {
		eg.Go(func() error {
			table, err := r.Read(egCtx, *bulk)
			inputs.Bulk = table
			return err
		})
	}

	if searchTerm != nil {
		eg.Go(func() error {
			table, err := r.Read(egCtx, *searchTerm)
			inputs.SearchTerm = table
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return domain.AuditInputs{}, err
	}

	return inputs, nil
}

func (r *Reader) ReadFiles(ctx context.Context, bulkPath, searchTermPath string) (domain.AuditInputs, error) {
	bulk, closeBulk, err := openSource(domain.TableBulk, bulkPath)
	if err != nil {
		return domain.AuditInputs{}, err
	}
	defer closeBulk()

	searchTerm, closeSearchTerm, err := openSource(domain.TableSearchTerm, searchTermPath)
	if err != nil {
		return domain.AuditInputs{}, err
	}
	defer closeSearchTerm()

	return r.ReadPair(ctx, bulk, searchTerm)
}

// Read decodifica um único arquivo. O formato é escolhido pela extensão e,
// na falta dela, pelo conteúdo.
func (r *Reader) Read(ctx context.Context, src Source) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := bufio.NewReader(src.Body)

	var (
		rows [][]string
		err  error
	)

	if isXLSX(src.Filename, body) {
		rows, err = r.readXLSX(src, body)
	} else {
		rows, err = readCSV(body)
	}
	if err != nil {
		return nil, &FileError{Table: src.Table, Filename: src.Filename, Err: errors.Wrap(ErrUnreadableFile, err.Error())}
	}

	table := &domain.Table{Name: src.Table}
	if len(rows) > 0 {
		table.Header = rows[0]
		table.Rows = rows[1:]
	}

	logrus.WithFields(logrus.Fields{
		"table":    src.Table,
		"filename": src.Filename,
		"rows":     len(table.Rows),
	}).Debug("Planilha decodificada")

	return table, nil
}

func (r *Reader) sheetFor(table string) string {
	if table == domain.TableSearchTerm {
		return r.searchTermSheet
	}
	return r.bulkSheet
}

func (r *Reader) readXLSX(src Source, body io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	sheet := sheets[0]
	wanted := r.sheetFor(src.Table)
	found := false
	for _, name := range sheets {
		if name == wanted {
			sheet = name
			found = true
			break
		}
	}

	if !found {
		logrus.WithFields(logrus.Fields{
			"table":    src.Table,
			"wanted":   wanted,
			"fallback": sheet,
		}).Info("Aba não encontrada, usando a primeira aba")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %q", sheet)
	}

	return rows, nil
}

func readCSV(body io.Reader) ([][]string, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler csv")
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	return rows, nil
}

func isXLSX(filename string, body *bufio.Reader) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return true
	case ".csv", ".txt":
		return false
	}

	head, err := body.Peek(len(zipMagic))
	return err == nil && bytes.Equal(head, zipMagic)
}

func openSource(table, path string) (*Source, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &FileError{Table: table, Filename: path, Err: errors.Wrap(err, "erro ao abrir arquivo")}
	}

	return &Source{Table: table, Filename: filepath.Base(path), Body: f}, f.Close, nil
}
