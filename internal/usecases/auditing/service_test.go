package auditing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

func TestService_Recompute(t *testing.T) {
	service := NewService(domain.DefaultRuleConfig())

	tests := []struct {
		name       string
		inputs     domain.AuditInputs
		targetAcos float64
		selection  domain.Selection
		validate   func(t *testing.T, result *domain.AuditResult, err error)
	}{
		{
			name:       "Recorte completo com avisos de junção",
			inputs:     sampleInputs(),
			targetAcos: 30,
			selection:  domain.Reset(),
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.InputsMissing)
				assert.Len(t, result.Data.Campaigns, 2)
				assert.Len(t, result.Data.Keywords, 4)
				assert.Len(t, result.Data.SearchTerms, 5)
				assert.Len(t, result.Data.Placements, 2)
				assert.Equal(t, 30.0, result.TargetAcos)
				assert.Equal(t, []domain.JoinMiscue{
					{Level: domain.LevelKeyword, Key: "Ghost", Row: "ghost keyword"},
					{Level: domain.LevelSearchTerm, Key: "unknown target", Row: "cheap bag"},
				}, result.Warnings)
			},
		},
		{
			name:       "Seleção é aplicada e o resumo segue o recorte",
			inputs:     sampleInputs(),
			targetAcos: 30,
			selection:  domain.Reset().WithCampaigns("Shoes"),
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Shoes"}, campaignNames(result.Data))
				assert.Equal(t, 25.0, result.Summary.ACOS)
				assert.Equal(t, []string{"Shoes", "Bags"}, result.Options.Campaigns)
				assert.Equal(t, []string{"running shoes", "trail shoes"}, result.Options.Keywords)
			},
		},
		{
			name:       "Termo broad abaixo do alvo é graduado",
			inputs:     sampleInputs(),
			targetAcos: 30,
			selection:  domain.Reset().WithSearchTerms("red running shoes"),
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Data.SearchTerms, 2)
				assert.Equal(t, 10.0, result.Data.SearchTerms[0].ACOS)
				assert.Equal(t, domain.ActionGraduate, result.Data.SearchTerms[0].Action)
				assert.Equal(t, domain.ActionNegate, result.Data.SearchTerms[1].Action)
			},
		},
		{
			name:       "Sem arquivos devolve placeholder",
			inputs:     domain.AuditInputs{Bulk: sampleInputs().Bulk},
			targetAcos: 30,
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.InputsMissing)
				assert.Equal(t, domain.MissingInputsMessage, result.Message)
				assert.Equal(t, []string{domain.TableSearchTerm}, result.MissingTables)
				assert.Equal(t, "inputs missing: search_term", result.MissingDetail)
				assert.NotNil(t, result.Data.Campaigns)
				assert.Empty(t, result.Data.Campaigns)
				assert.Empty(t, result.Data.Keywords)
				assert.Empty(t, result.Data.SearchTerms)
				assert.Empty(t, result.Options.Campaigns)
				assert.Equal(t, 0, result.Summary.KeywordActions[domain.ActionPause])
			},
		},
		{
			name: "Sem coluna Entity retorna SchemaError",
			inputs: domain.AuditInputs{
				Bulk:       &domain.Table{Header: []string{"Campaign"}},
				SearchTerm: &domain.Table{},
			},
			targetAcos: 30,
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				assert.Nil(t, result)
				var schemaErr *SchemaError
				assert.True(t, errors.As(err, &schemaErr))
			},
		},
		{
			name:       "ACOS alvo negativo é rejeitado",
			inputs:     sampleInputs(),
			targetAcos: -1,
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInvalidTargetAcos)
			},
		},
		{
			name:       "ACOS alvo acima de 100 é rejeitado",
			inputs:     sampleInputs(),
			targetAcos: 100.5,
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidTargetAcos)
			},
		},
		{
			name:       "ACOS alvo NaN é rejeitado",
			inputs:     sampleInputs(),
			targetAcos: math.NaN(),
			validate: func(t *testing.T, result *domain.AuditResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidTargetAcos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Recompute(tt.inputs, tt.targetAcos, tt.selection)
			tt.validate(t, result, err)
		})
	}
}

func TestService_RecomputeComBaseSpend(t *testing.T) {
	service := NewService(domain.RuleConfig{
		BidBaseline:     domain.BaselineSpend,
		AcosAggregation: domain.AggregationMean,
	})

	result, err := service.Recompute(sampleInputs(), 30, domain.Reset().WithKeywords("running shoes"))
	require.NoError(t, err)
	require.Len(t, result.Data.Keywords, 1)

	// Max Bid 3.00 contra gasto de 10.00
	assert.Equal(t, domain.ActionReduceBid, result.Data.Keywords[0].Action)
	assert.Equal(t, 25.0, result.Summary.ACOS)
}

func TestService_RecomputeDeterministico(t *testing.T) {
	service := NewService(domain.DefaultRuleConfig())
	sel := domain.Reset().WithDuplicates()

	first, err := service.Recompute(sampleInputs(), 30, sel)
	require.NoError(t, err)
	second, err := service.Recompute(sampleInputs(), 30, sel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
