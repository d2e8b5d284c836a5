package auditing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

func TestCampaignMetrics(t *testing.T) {
	tests := []struct {
		name     string
		campaign domain.Campaign
		wantCTR  float64
		wantCPC  float64
		wantACOS float64
		wantCVR  float64
	}{
		{
			name:     "Exemplo de referência",
			campaign: domain.Campaign{Impressions: 1000, Clicks: 20, Spend: 50, Sales: 200, Orders: 4},
			wantCTR:  2,
			wantCPC:  2.5,
			wantACOS: 25,
			wantCVR:  20,
		},
		{
			name:     "Sem impressões nem cliques",
			campaign: domain.Campaign{Spend: 12.5},
			wantCTR:  0,
			wantCPC:  12.5,
			wantACOS: 1250,
			wantCVR:  0,
		},
		{
			name:     "Tudo zero",
			campaign: domain.Campaign{},
		},
		{
			name:     "Arredonda em duas casas",
			campaign: domain.Campaign{Impressions: 3, Clicks: 1, Spend: 1, Sales: 3, Orders: 1},
			wantCTR:  33.33,
			wantCPC:  1,
			wantACOS: 33.33,
			wantCVR:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CampaignMetrics(tt.campaign)
			assert.Equal(t, tt.wantCTR, got.CTR)
			assert.Equal(t, tt.wantCPC, got.CPC)
			assert.Equal(t, tt.wantACOS, got.ACOS)
			assert.Equal(t, tt.wantCVR, got.ConversionRate)
		})
	}
}

func TestKeywordMetrics(t *testing.T) {
	t.Run("Max Bid é receita por clique vezes o alvo", func(t *testing.T) {
		got := KeywordMetrics(domain.Keyword{Clicks: 10, Spend: 10, Sales: 100, Orders: 3, Impressions: 100}, 0.3)
		assert.Equal(t, 10.0, got.RPC)
		assert.Equal(t, 3.0, got.MaxBid)
		assert.Equal(t, 1.0, got.CPC)
		assert.Equal(t, 10.0, got.ACOS)
		assert.Equal(t, 10.0, got.CTR)
		assert.Equal(t, 30.0, got.ConversionRate)
	})

	t.Run("Sem vendas o Max Bid é zero", func(t *testing.T) {
		got := KeywordMetrics(domain.Keyword{Clicks: 5}, 0.3)
		assert.Equal(t, 0.0, got.MaxBid)
		assert.Equal(t, 0.0, got.CPC)
	})

	t.Run("Sem cliques usa 1 no denominador", func(t *testing.T) {
		got := KeywordMetrics(domain.Keyword{Sales: 20}, 0.5)
		assert.Equal(t, 20.0, got.RPC)
		assert.Equal(t, 10.0, got.MaxBid)
	})
}

func TestSearchTermMetrics(t *testing.T) {
	got := SearchTermMetrics(domain.SearchTerm{
		Impressions:    200,
		Clicks:         6,
		CPC:            0.834,
		Spend:          5,
		Sales:          50,
		ConversionRate: 0.5,
	})

	assert.Equal(t, 3.0, got.CTR)
	assert.Equal(t, 0.83, got.CPC)
	assert.Equal(t, 10.0, got.ACOS)
	assert.Equal(t, 50.0, got.ConversionRate)
}

func TestPlacementMetrics(t *testing.T) {
	got := PlacementMetrics(domain.Placement{Percentage: 50, ACOS: 0.2})
	assert.Equal(t, 20.0, got.ACOS)
}

func TestMetrics_SempreFinitas(t *testing.T) {
	campaign := CampaignMetrics(domain.Campaign{})
	keyword := KeywordMetrics(domain.Keyword{}, 0.3)
	term := SearchTermMetrics(domain.SearchTerm{})

	for _, value := range []float64{
		campaign.CTR, campaign.CPC, campaign.ACOS, campaign.ConversionRate,
		keyword.CTR, keyword.CPC, keyword.ACOS, keyword.ConversionRate, keyword.RPC, keyword.MaxBid,
		term.CTR, term.CPC, term.ACOS, term.ConversionRate,
	} {
		assert.False(t, math.IsNaN(value) || math.IsInf(value, 0))
	}
}
