package domain

import "time"

// MissingInputsMessage é a mensagem devolvida quando falta algum dos arquivos
const MissingInputsMessage = "Please upload both files."

// Níveis usados nos avisos de junção
const (
	LevelKeyword    = "keyword"
	LevelSearchTerm = "search_term"
)

// Triple é o recorte consistente campanhas → palavras-chave → termos de pesquisa,
// acompanhado dos grupos de anúncios e posicionamentos das campanhas presentes
type Triple struct {
	Campaigns   []Campaign   `json:"campaigns"`
	Keywords    []Keyword    `json:"keywords"`
	SearchTerms []SearchTerm `json:"search_terms"`
	AdGroups    []AdGroup    `json:"ad_groups"`
	Placements  []Placement  `json:"placements"`
}

// EmptyTriple retorna um recorte com coleções vazias (não nulas)
func EmptyTriple() Triple {
	return Triple{
		Campaigns:   []Campaign{},
		Keywords:    []Keyword{},
		SearchTerms: []SearchTerm{},
		AdGroups:    []AdGroup{},
		Placements:  []Placement{},
	}
}

// Options são os valores disponíveis para seleção em cada nível
type Options struct {
	Campaigns   []string `json:"campaigns"`
	Keywords    []string `json:"keywords"`
	SearchTerms []string `json:"search_terms"`
}

// Summary agrega o recorte atual
type Summary struct {
	TotalCampaigns    int            `json:"total_campaigns"`
	TotalKeywords     int            `json:"total_keywords"`
	TotalSearchTerms  int            `json:"total_search_terms"`
	ACOS              float64        `json:"acos"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalSpend        float64        `json:"total_spend"`
	TotalClicks       int            `json:"total_clicks"`
	TotalOrders       int            `json:"total_orders"`
	ConversionRate    float64        `json:"conversion_rate"`
	KeywordActions    map[Action]int `json:"keyword_actions"`
	SearchTermActions map[Action]int `json:"search_term_actions"`
	PlacementActions  map[Action]int `json:"placement_actions"`
}

// JoinMiscue registra uma linha cuja referência ao nível pai não foi encontrada
type JoinMiscue struct {
	Level string `json:"level"`
	Key   string `json:"key"`
	Row   string `json:"row"`
}

// AuditResult é a saída completa de uma execução de auditoria
type AuditResult struct {
	RunID         string       `json:"run_id,omitempty"`
	InputsMissing bool         `json:"inputs_missing"`
	Message       string       `json:"message,omitempty"`
	MissingTables []string     `json:"missing_tables,omitempty"`
	MissingDetail string       `json:"missing_detail,omitempty"`
	TargetAcos    float64      `json:"target_acos"`
	Rules         RuleConfig   `json:"rules"`
	Selection     Selection    `json:"selection"`
	Data          Triple       `json:"data"`
	Options       Options      `json:"options"`
	Summary       Summary      `json:"summary"`
	Warnings      []JoinMiscue `json:"warnings"`
}

// AuditReport é o arquivo gerado pela auditoria agendada
type AuditReport struct {
	RunID          string       `json:"run_id"`
	GeneratedAt    time.Time    `json:"generated_at"`
	BulkPath       string       `json:"bulk_path"`
	SearchTermPath string       `json:"search_term_path"`
	Result         *AuditResult `json:"result"`
}
