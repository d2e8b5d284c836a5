package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

func TestPartition(t *testing.T) {
	rows := []BulkRow{
		{Entity: "Campaign", CampaignNameInfo: "Shoes", DailyBudget: 50},
		{Entity: "Ad group", CampaignNameInfo: "Shoes", AdGroupNameInfo: "AG 1", AdGroupDefaultBid: 0.5},
		{Entity: "Keyword", CampaignNameInfo: "Shoes", AdGroupNameInfo: "AG 1", KeywordText: "shoes", MatchType: "Exact"},
		{Entity: "Keyword", CampaignNameInfo: "Ghost", KeywordText: "ghost"},
		{Entity: "Placement", CampaignNameInfo: "Shoes", Placement: "Placement Top", Percentage: 30, ACOS: 0.2},
		{Entity: "Product Ad", CampaignNameInfo: "Shoes"},
		{Entity: "campaign", CampaignNameInfo: "Lowercase"},
	}

	out := Partition(rows)

	require.Len(t, out.Campaigns, 1)
	assert.Equal(t, "Shoes", out.Campaigns[0].Name)
	assert.Equal(t, 50.0, out.Campaigns[0].DailyBudget)

	require.Len(t, out.AdGroups, 1)
	assert.True(t, out.AdGroups[0].CampaignResolved)
	assert.Equal(t, "AG 1", out.AdGroups[0].Name)

	require.Len(t, out.Keywords, 2)
	assert.True(t, out.Keywords[0].CampaignResolved)
	assert.Equal(t, "AG 1", out.Keywords[0].AdGroup)
	assert.False(t, out.Keywords[1].CampaignResolved, "palavra-chave sem campanha deve ser mantida")
	assert.Equal(t, "Ghost", out.Keywords[1].Campaign)

	require.Len(t, out.Placements, 1)
	assert.Equal(t, 30.0, out.Placements[0].Percentage)

	assert.Equal(t, []domain.JoinMiscue{
		{Level: domain.LevelKeyword, Key: "Ghost", Row: "ghost"},
	}, out.Miscues)
}

func TestLinkSearchTerms(t *testing.T) {
	keywords := []domain.Keyword{{Campaign: "Shoes", Text: "shoes"}}
	rows := []SearchTermRow{
		{CampaignName: "Shoes", Targeting: "shoes", SearchTerm: "red shoes"},
		{CampaignName: "Shoes", Targeting: "boots", SearchTerm: "black boots"},
	}

	terms, miscues := LinkSearchTerms(rows, keywords)

	require.Len(t, terms, 2)
	assert.True(t, terms[0].TargetResolved)
	assert.False(t, terms[1].TargetResolved)
	assert.Equal(t, []domain.JoinMiscue{
		{Level: domain.LevelSearchTerm, Key: "boots", Row: "black boots"},
	}, miscues)
}
