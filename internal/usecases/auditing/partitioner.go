package auditing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

// Partitioned são os subconjuntos do bulk export separados pelo campo Entity
type Partitioned struct {
	Campaigns  []domain.Campaign
	AdGroups   []domain.AdGroup
	Keywords   []domain.Keyword
	Placements []domain.Placement
	Miscues    []domain.JoinMiscue
}

// Partition separa as linhas do bulk por entidade e liga palavras-chave e grupos
// à campanha pelo nome informativo. Linhas sem campanha correspondente são mantidas
// com CampaignResolved=false.
func Partition(rows []BulkRow) *Partitioned {
	out := &Partitioned{}
	campaigns := make(map[string]bool)

	for _, row := range rows {
		if row.Entity != domain.EntityCampaign {
			continue
		}

		campaigns[row.CampaignKey()] = true
		out.Campaigns = append(out.Campaigns, domain.Campaign{
			Name:            row.CampaignKey(),
			CampaignID:      row.CampaignID,
			State:           row.State,
			DailyBudget:     row.DailyBudget,
			BiddingStrategy: row.BiddingStrategy,
			Impressions:     row.Impressions,
			Clicks:          row.Clicks,
			Spend:           row.Spend,
			Sales:           row.Sales,
			Orders:          row.Orders,
			Units:           row.Units,
		})
	}

	for _, row := range rows {
		key := row.CampaignKey()

		switch row.Entity {
		case domain.EntityAdGroup:
			out.AdGroups = append(out.AdGroups, domain.AdGroup{
				Campaign:         key,
				CampaignResolved: campaigns[key],
				Name:             row.AdGroupKey(),
				State:            row.State,
				DefaultBid:       row.AdGroupDefaultBid,
			})

		case domain.EntityKeyword:
			keyword := domain.Keyword{
				Campaign:         key,
				CampaignResolved: campaigns[key],
				AdGroup:          row.AdGroupKey(),
				Text:             row.KeywordText,
				MatchType:        row.MatchType,
				State:            row.State,
				Bid:              row.Bid,
				Impressions:      row.Impressions,
				Clicks:           row.Clicks,
				Spend:            row.Spend,
				Sales:            row.Sales,
				Orders:           row.Orders,
				Units:            row.Units,
			}
			if !keyword.CampaignResolved {
				out.Miscues = append(out.Miscues, domain.JoinMiscue{
					Level: domain.LevelKeyword,
					Key:   key,
					Row:   keyword.Text,
				})
			}
			out.Keywords = append(out.Keywords, keyword)

		case domain.EntityPlacement:
			out.Placements = append(out.Placements, domain.Placement{
				Campaign:   key,
				Placement:  row.Placement,
				Percentage: row.Percentage,
				ACOS:       row.ACOS,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaigns":  len(out.Campaigns),
		"ad_groups":  len(out.AdGroups),
		"keywords":   len(out.Keywords),
		"placements": len(out.Placements),
	}).Debug("Bulk export particionado")

	return out
}

// LinkSearchTerms liga cada termo de pesquisa à palavra-chave cujo texto é igual
// ao valor de Targeting. Termos sem correspondência ficam com TargetResolved=false.
func LinkSearchTerms(rows []SearchTermRow, keywords []domain.Keyword) ([]domain.SearchTerm, []domain.JoinMiscue) {
	texts := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		texts[keyword.Text] = true
	}

	terms := make([]domain.SearchTerm, 0, len(rows))
	var miscues []domain.JoinMiscue

	for _, row := range rows {
		term := domain.SearchTerm{
			Campaign:       row.CampaignName,
			AdGroup:        row.AdGroupName,
			Targeting:      row.Targeting,
			TargetResolved: texts[row.Targeting],
			SearchTerm:     row.SearchTerm,
			MatchType:      row.MatchType,
			Impressions:    row.Impressions,
			Clicks:         row.Clicks,
			CPC:            row.CPC,
			Spend:          row.Spend,
			Sales:          row.Sales,
			Orders:         row.Orders,
			Units:          row.Units,
			ConversionRate: row.ConversionRate,
		}
		if !term.TargetResolved {
			miscues = append(miscues, domain.JoinMiscue{
				Level: domain.LevelSearchTerm,
				Key:   row.Targeting,
				Row:   row.SearchTerm,
			})
		}
		terms = append(terms, term)
	}

	return terms, miscues
}
