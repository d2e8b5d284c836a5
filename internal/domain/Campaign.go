package domain

// Valores do campo discriminador "Entity" do bulk export
const (
	EntityCampaign  = "Campaign"
	EntityAdGroup   = "Ad group"
	EntityKeyword   = "Keyword"
	EntityPlacement = "Placement"
)

// Campaign representa uma linha de campanha do bulk export com as métricas derivadas
type Campaign struct {
	Name            string  `json:"campaign"`
	CampaignID      string  `json:"campaign_id,omitempty"`
	State           string  `json:"state,omitempty"`
	DailyBudget     float64 `json:"daily_budget"`
	BiddingStrategy string  `json:"bidding_strategy"`
	Impressions     int     `json:"impressions"`
	Clicks          int     `json:"clicks"`
	Spend           float64 `json:"spend"`
	Sales           float64 `json:"sales"`
	Orders          int     `json:"orders"`
	Units           int     `json:"units"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	ACOS            float64 `json:"acos"`
	ConversionRate  float64 `json:"conversion_rate"`
}

// AdGroup representa uma linha de grupo de anúncios do bulk export
type AdGroup struct {
	Campaign         string  `json:"campaign"`
	CampaignResolved bool    `json:"campaign_resolved"`
	Name             string  `json:"ad_group"`
	State            string  `json:"state,omitempty"`
	DefaultBid       float64 `json:"default_bid"`
}

// Placement representa o ajuste de lance por posicionamento de uma campanha
type Placement struct {
	Campaign   string  `json:"campaign"`
	Placement  string  `json:"placement"`
	Percentage float64 `json:"percentage"`
	ACOS       float64 `json:"acos"`
	Action     Action  `json:"action"`
}
