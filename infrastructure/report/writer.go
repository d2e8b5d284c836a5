package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer grava relatórios de auditoria em arquivos JSON
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write grava o relatório e retorna o caminho do arquivo criado
func (w *Writer) Write(report *domain.AuditReport) (string, error) {
	if report == nil {
		return "", errors.New("relatório vazio")
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório %s", w.outputDir)
	}

	name := fmt.Sprintf("audit-%s-%s.json", report.GeneratedAt.Format("20060102-150405"), report.RunID)
	path := filepath.Join(w.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}

	if err := Encode(f, report, true); err != nil {
		f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "erro ao fechar arquivo %s", path)
	}

	return path, nil
}

// Encode escreve v como JSON em out, indentado quando pretty é verdadeiro
func Encode(out io.Writer, v any, pretty bool) error {
	encoder := json.NewEncoder(out)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	return nil
}

// Load lê um relatório gravado por Write
func Load(path string) (*domain.AuditReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo %s", path)
	}

	var report domain.AuditReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar relatório %s", path)
	}

	return &report, nil
}
