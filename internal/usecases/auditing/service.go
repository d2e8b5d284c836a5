package auditing

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

// Quantidade máxima de chaves listadas no log de avisos de junção
const miscueSampleSize = 5

// Service implementa Auditor. Não guarda estado entre execuções.
type Service struct {
	rules domain.RuleConfig
}

// NewService cria o motor de auditoria com as regras informadas
func NewService(rules domain.RuleConfig) Auditor {
	return &Service{rules: rules}
}

// Recompute executa normalização, particionamento, métricas, classificação,
// filtro de hierarquia e resumo, nessa ordem
func (s *Service) Recompute(inputs domain.AuditInputs, targetAcos float64, selection domain.Selection) (*domain.AuditResult, error) {
	if math.IsNaN(targetAcos) || math.IsInf(targetAcos, 0) || targetAcos < 0 || targetAcos > 100 {
		return nil, ErrInvalidTargetAcos
	}

	if missing := missingTables(inputs); len(missing) > 0 {
		missingErr := &MissingInputError{Tables: missing}
		logrus.WithError(missingErr).WithFields(logrus.Fields{
			"tables": missing,
		}).Info("Auditoria sem arquivos suficientes")

		return s.placeholder(targetAcos, selection, missingErr), nil
	}

	full, warnings, err := s.Audit(inputs, targetAcos)
	if err != nil {
		return nil, err
	}

	filtered := ApplySelection(full, selection)

	logrus.WithFields(logrus.Fields{
		"campaigns":    len(filtered.Campaigns),
		"keywords":     len(filtered.Keywords),
		"search_terms": len(filtered.SearchTerms),
		"reset":        selection.IsReset(),
		"mode":         selection.Mode,
	}).Debug("Seleção aplicada")

	return &domain.AuditResult{
		TargetAcos: targetAcos,
		Rules:      s.rules,
		Selection:  selection,
		Data:       filtered,
		Options:    BuildOptions(full, selection),
		Summary:    Summarize(filtered, s.rules.AcosAggregation),
		Warnings:   warnings,
	}, nil
}

// Audit monta o recorte completo, com métricas e ações, sem aplicar seleção
func (s *Service) Audit(inputs domain.AuditInputs, targetAcos float64) (domain.Triple, []domain.JoinMiscue, error) {
	normalized, err := Normalize(inputs.Bulk, inputs.SearchTerm)
	if err != nil {
		return domain.Triple{}, nil, err
	}

	parts := Partition(normalized.Bulk)
	terms, termMiscues := LinkSearchTerms(normalized.SearchTerms, parts.Keywords)
	targetRatio := targetAcos / 100

	full := domain.EmptyTriple()
	for _, campaign := range parts.Campaigns {
		full.Campaigns = append(full.Campaigns, CampaignMetrics(campaign))
	}
	for _, keyword := range parts.Keywords {
		keyword = KeywordMetrics(keyword, targetRatio)
		keyword.Action = ClassifyKeyword(keyword, s.rules.BidBaseline)
		full.Keywords = append(full.Keywords, keyword)
	}
	for _, term := range terms {
		term = SearchTermMetrics(term)
		term.Action = ClassifySearchTerm(term, targetAcos)
		full.SearchTerms = append(full.SearchTerms, term)
	}
	for _, placement := range parts.Placements {
		placement = PlacementMetrics(placement)
		placement.Action = ClassifyPlacement(placement, targetAcos)
		full.Placements = append(full.Placements, placement)
	}
	full.AdGroups = append(full.AdGroups, parts.AdGroups...)

	warnings := make([]domain.JoinMiscue, 0, len(parts.Miscues)+len(termMiscues))
	warnings = append(warnings, parts.Miscues...)
	warnings = append(warnings, termMiscues...)
	logMiscues(warnings)

	return full, warnings, nil
}

// placeholder devolve o resultado vazio exibido enquanto faltar algum arquivo
func (s *Service) placeholder(targetAcos float64, selection domain.Selection, missing *MissingInputError) *domain.AuditResult {
	return &domain.AuditResult{
		InputsMissing: true,
		Message:       domain.MissingInputsMessage,
		MissingTables: missing.Tables,
		MissingDetail: missing.Error(),
		TargetAcos:    targetAcos,
		Rules:         s.rules,
		Selection:     selection,
		Data:          domain.EmptyTriple(),
		Options: domain.Options{
			Campaigns:   []string{},
			Keywords:    []string{},
			SearchTerms: []string{},
		},
		Summary:  emptySummary(),
		Warnings: []domain.JoinMiscue{},
	}
}

func missingTables(inputs domain.AuditInputs) []string {
	var missing []string
	if inputs.Bulk == nil {
		missing = append(missing, domain.TableBulk)
	}
	if inputs.SearchTerm == nil {
		missing = append(missing, domain.TableSearchTerm)
	}
	return missing
}

// logMiscues registra uma linha por nível com a contagem e algumas chaves de exemplo
func logMiscues(miscues []domain.JoinMiscue) {
	counts := make(map[string]int)
	samples := make(map[string][]string)

	for _, miscue := range miscues {
		counts[miscue.Level]++
		if len(samples[miscue.Level]) < miscueSampleSize {
			samples[miscue.Level] = append(samples[miscue.Level], miscue.Key)
		}
	}

	for _, level := range []string{domain.LevelKeyword, domain.LevelSearchTerm} {
		if counts[level] == 0 {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"level":  level,
			"count":  counts[level],
			"sample": samples[level],
		}).Warn("Linhas sem referência ao nível pai")
	}
}
