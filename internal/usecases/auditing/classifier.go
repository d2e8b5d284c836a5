package auditing

import (
	"strings"

	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

// ClassifyKeyword aplica as regras de lance na ordem: aumentar, reduzir, pausar, nada.
// O Max Bid é comparado com o CPC ou com o gasto, conforme a configuração.
func ClassifyKeyword(k domain.Keyword, baseline domain.BidBaseline) domain.Action {
	reference := k.CPC
	if baseline == domain.BaselineSpend {
		reference = utils.RoundWithTwoDecimalPlace(k.Spend)
	}

	switch {
	case k.MaxBid > reference:
		return domain.ActionIncreaseBid
	case k.MaxBid < reference:
		return domain.ActionReduceBid
	case k.Clicks > 4 && k.Orders == 0:
		return domain.ActionPause
	default:
		return domain.ActionDoNothing
	}
}

// ClassifySearchTerm decide entre graduar, negativar ou manter o termo.
// Termos exact já são palavras-chave e nunca são graduados.
func ClassifySearchTerm(t domain.SearchTerm, targetPercent float64) domain.Action {
	exact := strings.EqualFold(strings.TrimSpace(t.MatchType), "exact")

	switch {
	case t.ACOS < targetPercent && t.Orders >= 2 && !exact:
		return domain.ActionGraduate
	case t.Clicks > 3 && t.Orders == 0:
		return domain.ActionNegate
	default:
		return domain.ActionDoNothing
	}
}

func ClassifyPlacement(p domain.Placement, targetPercent float64) domain.Action {
	if p.Percentage <= 0 {
		return domain.ActionDoNothing
	}

	switch {
	case p.ACOS < targetPercent:
		return domain.ActionIncreasePlacement
	case p.ACOS > targetPercent:
		return domain.ActionDecreasePlacement
	default:
		return domain.ActionDoNothing
	}
}
