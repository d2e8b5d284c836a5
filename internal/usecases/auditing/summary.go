package auditing

import (
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

// Summarize agrega o recorte atual. O ACOS do resumo é ponderado
// (Σ gasto / Σ vendas x 100) ou a média simples do ACOS das campanhas.
func Summarize(t domain.Triple, aggregation domain.AcosAggregation) domain.Summary {
	summary := emptySummary()
	summary.TotalCampaigns = len(t.Campaigns)
	summary.TotalKeywords = len(t.Keywords)
	summary.TotalSearchTerms = len(t.SearchTerms)

	var spend, sales, acosSum float64
	for _, campaign := range t.Campaigns {
		spend += campaign.Spend
		sales += campaign.Sales
		acosSum += campaign.ACOS
		summary.TotalClicks += campaign.Clicks
		summary.TotalOrders += campaign.Orders
	}

	switch aggregation {
	case domain.AggregationMean:
		summary.ACOS = utils.RoundWithTwoDecimalPlace(utils.DivideOrZero(acosSum, float64(len(t.Campaigns))))
	default:
		summary.ACOS = utils.RoundWithTwoDecimalPlace(utils.DivideOrZero(spend, sales) * 100)
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(sales)
	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(spend)
	summary.ConversionRate = conversionRate(summary.TotalOrders, summary.TotalClicks)

	for _, keyword := range t.Keywords {
		summary.KeywordActions[keyword.Action]++
	}
	for _, term := range t.SearchTerms {
		summary.SearchTermActions[term.Action]++
	}
	for _, placement := range t.Placements {
		summary.PlacementActions[placement.Action]++
	}

	return summary
}

func emptySummary() domain.Summary {
	return domain.Summary{
		KeywordActions:    actionCounter(domain.KeywordActions()),
		SearchTermActions: actionCounter(domain.SearchTermActions()),
		PlacementActions:  actionCounter(domain.PlacementActions()),
	}
}

func actionCounter(actions []domain.Action) map[domain.Action]int {
	counter := make(map[domain.Action]int, len(actions))
	for _, action := range actions {
		counter[action] = 0
	}
	return counter
}
