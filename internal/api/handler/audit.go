package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-audit-api/pkg/apiErrors"
	"github.com/vfg2006/ads-audit-api/pkg/log"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

// Campos do formulário multipart
const (
	fieldBulkFile         = "bulk_file"
	fieldSearchTermFile   = "search_term_file"
	fieldTargetAcos       = "target_acos"
	fieldCampaigns        = "campaigns"
	fieldKeywords         = "keywords"
	fieldSearchTerms      = "search_terms"
	fieldKeywordAction    = "keyword_action"
	fieldSearchTermAction = "search_term_action"
	fieldDuplicates       = "duplicates"
	fieldReset            = "reset"
)

var errConflictingModes = errors.New("only one of keyword_action, search_term_action, duplicates or reset may be set")

// RunAudit recebe os dois exports e a seleção atual e devolve a auditoria filtrada
func RunAudit(service auditing.Auditor, reader spreadsheet.TableReader, cfg config.Audit) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(cfg.MaxUploadBytes()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			logger.WithField("error", err.Error()).Warn("audit: invalid multipart form")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formulário multipart inválido", nil)
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		targetAcos, err := parseTargetAcos(r.FormValue(fieldTargetAcos), cfg.DefaultTargetAcos)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "target_acos deve ser numérico", map[string]string{
				"field": fieldTargetAcos,
			})
			return
		}

		selection, err := parseSelection(r.Form)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("audit: invalid selection")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		bulk, closeBulk, err := formSource(r, fieldBulkFile, domain.TableBulk)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao receber arquivo", map[string]string{"field": fieldBulkFile})
			return
		}
		defer closeBulk()

		searchTerm, closeSearchTerm, err := formSource(r, fieldSearchTermFile, domain.TableSearchTerm)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao receber arquivo", map[string]string{"field": fieldSearchTermFile})
			return
		}
		defer closeSearchTerm()

		inputs, err := reader.ReadPair(r.Context(), bulk, searchTerm)
		if err != nil {
			var fileErr *spreadsheet.FileError
			if errors.As(err, &fileErr) {
				logger.WithFields(log.Fields{
					"audit_table": fileErr.Table,
					"audit_file":  fileErr.Filename,
					"error":       err.Error(),
				}).Warn("audit: unreadable upload")

				apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, "Arquivo não pôde ser lido", map[string]string{
					"table":    fileErr.Table,
					"filename": fileErr.Filename,
				})
				return
			}

			logger.WithField("error", err.Error()).Error("audit: failed to read uploads")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler arquivos", nil)
			return
		}

		result, err := service.Recompute(inputs, targetAcos, selection)
		if err != nil {
			writeAuditError(w, logger, err)
			return
		}

		runID, err := utils.GenerateID()
		if err != nil {
			logger.WithField("error", err.Error()).Error("audit: failed to generate run id")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
			return
		}
		result.RunID = runID

		logger.WithFields(log.Fields{
			"run_id":               runID,
			"audit_inputs_missing": result.InputsMissing,
			"audit_campaigns":      len(result.Data.Campaigns),
			"audit_keywords":       len(result.Data.Keywords),
			"audit_search_terms":   len(result.Data.SearchTerms),
			"audit_warnings":       len(result.Warnings),
		}).Info("audit: completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("audit: failed to encode response")
		}
	})
}

func writeAuditError(w http.ResponseWriter, logger log.Logger, err error) {
	var schemaErr *auditing.SchemaError

	switch {
	case errors.As(err, &schemaErr):
		logger.WithFields(log.Fields{
			"audit_table": schemaErr.Table,
			"audit_field": schemaErr.Field,
		}).Warn("audit: required column missing")

		apiErrors.WriteError(w, apiErrors.ErrSchema, "Coluna obrigatória ausente", map[string]string{
			"table": schemaErr.Table,
			"field": schemaErr.Field,
		})
	case errors.Is(err, auditing.ErrInvalidTargetAcos):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTargetAcos, "target_acos deve estar entre 0 e 100", map[string]string{
			"field": fieldTargetAcos,
		})
	default:
		logger.WithField("error", err.Error()).Error("audit: recompute failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao auditar arquivos", nil)
	}
}

// parseTargetAcos usa o padrão configurado quando o campo não é enviado
func parseTargetAcos(value string, fallback float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

// parseSelection monta a seleção a partir dos campos do formulário.
// Listas de identidade usam o campo repetido, pois nomes de campanha podem conter vírgulas.
func parseSelection(values url.Values) (domain.Selection, error) {
	selection := domain.Reset()
	modes := 0

	reset, err := parseFlag(values.Get(fieldReset))
	if err != nil {
		return selection, errors.New("reset deve ser booleano")
	}

	selection = selection.
		WithCampaigns(nonEmpty(values[fieldCampaigns])...).
		WithKeywords(nonEmpty(values[fieldKeywords])...).
		WithSearchTerms(nonEmpty(values[fieldSearchTerms])...)

	if token := values.Get(fieldKeywordAction); token != "" {
		action, ok := domain.ParseAction(token, domain.KeywordActions())
		if !ok {
			return selection, errors.New("keyword_action inválida: " + token)
		}
		selection = selection.WithKeywordAction(action)
		modes++
	}

	if token := values.Get(fieldSearchTermAction); token != "" {
		action, ok := domain.ParseAction(token, domain.SearchTermActions())
		if !ok {
			return selection, errors.New("search_term_action inválida: " + token)
		}
		selection = selection.WithSearchTermAction(action)
		modes++
	}

	duplicates, err := parseFlag(values.Get(fieldDuplicates))
	if err != nil {
		return selection, errors.New("duplicates deve ser booleano")
	}
	if duplicates {
		selection = selection.WithDuplicates()
		modes++
	}

	if reset {
		if modes > 0 || !selection.IsReset() {
			return selection, errConflictingModes
		}
		return domain.Reset(), nil
	}

	if modes > 1 {
		return selection, errConflictingModes
	}

	return selection, nil
}

func parseFlag(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// formSource devolve nil quando o arquivo não foi enviado
func formSource(r *http.Request, field, table string) (*spreadsheet.Source, func(), error) {
	noop := func() {}

	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	return &spreadsheet.Source{
		Table:    table,
		Filename: header.Filename,
		Body:     file,
	}, closer(file), nil
}

func closer(file multipart.File) func() {
	return func() { file.Close() }
}

type actionEntry struct {
	ID    string        `json:"id"`
	Label domain.Action `json:"label"`
}

// ListActions devolve o catálogo de ações por nível
func ListActions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalog := map[string][]actionEntry{
			domain.LevelKeyword:    actionEntries(domain.KeywordActions()),
			domain.LevelSearchTerm: actionEntries(domain.SearchTermActions()),
			"placement":            actionEntries(domain.PlacementActions()),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog)
	})
}

func actionEntries(actions []domain.Action) []actionEntry {
	entries := make([]actionEntry, 0, len(actions))
	for _, action := range actions {
		entries = append(entries, actionEntry{
			ID:    strings.ReplaceAll(strings.ToLower(string(action)), " ", "-"),
			Label: action,
		})
	}
	return entries
}
