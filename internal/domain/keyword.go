package domain

// Keyword é uma palavra-chave do bulk export ligada à campanha pelo nome informativo
type Keyword struct {
	Campaign         string  `json:"campaign"`
	CampaignResolved bool    `json:"campaign_resolved"`
	AdGroup          string  `json:"ad_group"`
	Text             string  `json:"keyword"`
	MatchType        string  `json:"match_type"`
	State            string  `json:"state,omitempty"`
	Bid              float64 `json:"bid"`
	Impressions      int     `json:"impressions"`
	Clicks           int     `json:"clicks"`
	Spend            float64 `json:"spend"`
	Sales            float64 `json:"sales"`
	Orders           int     `json:"orders"`
	Units            int     `json:"units"`
	CTR              float64 `json:"ctr"`
	CPC              float64 `json:"cpc"`
	ACOS             float64 `json:"acos"`
	ConversionRate   float64 `json:"conversion_rate"`
	RPC              float64 `json:"rpc"`
	MaxBid           float64 `json:"max_bid"`
	Action           Action  `json:"action"`
}

// SearchTerm é uma linha do relatório de termos de pesquisa (métricas de 7 dias)
type SearchTerm struct {
	Campaign       string  `json:"campaign"`
	AdGroup        string  `json:"ad_group"`
	Targeting      string  `json:"keyword"`
	TargetResolved bool    `json:"keyword_resolved"`
	SearchTerm     string  `json:"search_term"`
	MatchType      string  `json:"match_type"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	Spend          float64 `json:"spend"`
	Sales          float64 `json:"sales"`
	Orders         int     `json:"orders"`
	Units          int     `json:"units"`
	ConversionRate float64 `json:"conversion_rate"`
	ACOS           float64 `json:"acos"`
	Action         Action  `json:"action"`
}
