package auditing

import (
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

// Regras de divisão:
//   - CTR e taxa de conversão valem 0 quando o denominador é 0
//   - CPC e ACOS trocam o denominador 0 por 1
// Percentuais são guardados como razão x 100 e tudo é arredondado em 2 casas.

func ctr(clicks, impressions int) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.DivideOrZero(float64(clicks), float64(impressions)) * 100)
}

func cpc(spend float64, clicks int) float64 {
	return utils.RoundWithTwoDecimalPlace(spend / utils.DenominatorOrOne(float64(clicks)))
}

func acos(spend, sales float64) float64 {
	return utils.RoundWithTwoDecimalPlace(spend / utils.DenominatorOrOne(sales) * 100)
}

func conversionRate(orders, clicks int) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.DivideOrZero(float64(orders), float64(clicks)) * 100)
}

// revenuePerClick usa max(clicks, 1) como denominador
func revenuePerClick(sales float64, clicks int) float64 {
	return sales / utils.DenominatorOrOne(float64(clicks))
}

// CampaignMetrics devolve a campanha com as métricas derivadas preenchidas
func CampaignMetrics(c domain.Campaign) domain.Campaign {
	c.CTR = ctr(c.Clicks, c.Impressions)
	c.CPC = cpc(c.Spend, c.Clicks)
	c.ACOS = acos(c.Spend, c.Sales)
	c.ConversionRate = conversionRate(c.Orders, c.Clicks)

	c.DailyBudget = utils.RoundWithTwoDecimalPlace(c.DailyBudget)
	c.Spend = utils.RoundWithTwoDecimalPlace(c.Spend)
	c.Sales = utils.RoundWithTwoDecimalPlace(c.Sales)
	return c
}

// KeywordMetrics calcula as métricas da palavra-chave e o Max Bid
// (receita por clique x razão do ACOS alvo)
func KeywordMetrics(k domain.Keyword, targetRatio float64) domain.Keyword {
	k.CTR = ctr(k.Clicks, k.Impressions)
	k.CPC = cpc(k.Spend, k.Clicks)
	k.ACOS = acos(k.Spend, k.Sales)
	k.ConversionRate = conversionRate(k.Orders, k.Clicks)

	rpc := revenuePerClick(k.Sales, k.Clicks)
	k.RPC = utils.RoundWithTwoDecimalPlace(rpc)
	k.MaxBid = utils.RoundWithTwoDecimalPlace(rpc * targetRatio)

	k.Bid = utils.RoundWithTwoDecimalPlace(k.Bid)
	k.Spend = utils.RoundWithTwoDecimalPlace(k.Spend)
	k.Sales = utils.RoundWithTwoDecimalPlace(k.Sales)
	return k
}

// SearchTermMetrics usa o CPC e a taxa de conversão de 7 dias vindos do relatório
func SearchTermMetrics(t domain.SearchTerm) domain.SearchTerm {
	t.CTR = ctr(t.Clicks, t.Impressions)
	t.CPC = utils.RoundWithTwoDecimalPlace(t.CPC)
	t.ACOS = acos(t.Spend, t.Sales)
	t.ConversionRate = utils.RoundWithTwoDecimalPlace(t.ConversionRate * 100)

	t.Spend = utils.RoundWithTwoDecimalPlace(t.Spend)
	t.Sales = utils.RoundWithTwoDecimalPlace(t.Sales)
	return t
}

// PlacementMetrics converte o ACOS exportado (razão) para percentual
func PlacementMetrics(p domain.Placement) domain.Placement {
	p.ACOS = utils.RoundWithTwoDecimalPlace(p.ACOS * 100)
	return p
}
