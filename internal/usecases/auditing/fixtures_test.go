package auditing

import (
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

var bulkHeader = []string{
	"Entity", "Campaign Name", "Campaign Name (Informational only)", "Ad Group Name (Informational only)",
	"Keyword Text", "Match Type", "Bid", "Daily Budget", "Bidding Strategy", "Placement", "Percentage",
	"Impressions", "Clicks", "Spend", "Sales", "Orders", "Units", "ACOS",
}

var searchTermHeader = []string{
	"Campaign Name", "Ad Group Name", "Targeting", "Customer Search Term", "Match Type",
	"Impressions", "Clicks", "Cost Per Click (CPC)", "Spend", "7 Day Total Sales",
	"7 Day Total Orders (#)", "7 Day Total Units (#)", "7 Day Conversion Rate",
}

func campaignRow(name, impressions, clicks, spend, sales, orders string) []string {
	return []string{"Campaign", "", name, "", "", "", "", "50", "Dynamic bids - down only", "", "",
		impressions, clicks, spend, sales, orders, "0", ""}
}

func keywordRow(campaign, adGroup, text, match, clicks, spend, sales, orders string) []string {
	return []string{"Keyword", "", campaign, adGroup, text, match, "0.75", "", "", "", "",
		"100", clicks, spend, sales, orders, orders, ""}
}

func placementRow(campaign, placement, percentage, acos string) []string {
	return []string{"Placement", "", campaign, "", "", "", "", "", "", placement, percentage,
		"", "", "", "", "", "", acos}
}

func termRow(campaign, targeting, term, match, clicks, spend, sales, orders string) []string {
	return []string{campaign, "Ad Group 1", targeting, term, match,
		"200", clicks, "0.80", spend, sales, orders, orders, "0.1"}
}

// sampleInputs monta uma conta com duas campanhas, três palavras-chave
// (uma sem campanha) e termos de pesquisa com duplicados
func sampleInputs() domain.AuditInputs {
	bulk := &domain.Table{
		Name:   domain.TableBulk,
		Header: bulkHeader,
		Rows: [][]string{
			campaignRow("Shoes", "1000", "20", "50", "200", "4"),
			campaignRow("Bags", "500", "10", "30", "0", "0"),
			keywordRow("Shoes", "AG Shoes", "running shoes", "Broad", "10", "10", "100", "3"),
			keywordRow("Shoes", "AG Shoes", "trail shoes", "Phrase", "5", "0", "0", "0"),
			keywordRow("Bags", "AG Bags", "leather bag", "Exact", "10", "30", "0", "0"),
			keywordRow("Ghost", "AG Ghost", "ghost keyword", "Broad", "1", "1", "0", "0"),
			placementRow("Shoes", "Placement Top", "50", "0.2"),
			placementRow("Bags", "Placement Product Page", "0", "0.9"),
		},
	}

	searchTerms := &domain.Table{
		Name:   domain.TableSearchTerm,
		Header: searchTermHeader,
		Rows: [][]string{
			termRow("Shoes", "running shoes", "red running shoes", "BROAD", "6", "5", "50", "3"),
			termRow("Shoes", "trail shoes", "red running shoes", "PHRASE", "4", "3", "0", "0"),
			termRow("Shoes", "trail shoes", "mountain shoes", "PHRASE", "2", "1", "0", "0"),
			termRow("Bags", "leather bag", "brown bag", "EXACT", "5", "4", "40", "2"),
			termRow("Bags", "unknown target", "cheap bag", "BROAD", "1", "1", "0", "0"),
		},
	}

	return domain.AuditInputs{Bulk: bulk, SearchTerm: searchTerms}
}
