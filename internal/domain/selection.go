package domain

// DrillMode indica qual filtro exclusivo está ativo na seleção
type DrillMode string

const (
	DrillNone             DrillMode = ""
	DrillKeywordAction    DrillMode = "keyword_action"
	DrillSearchTermAction DrillMode = "search_term_action"
	DrillDuplicates       DrillMode = "duplicates"
)

// Selection descreve o recorte escolhido pelo usuário. O valor zero equivale ao Reset.
// Os métodos With* sempre devolvem uma cópia.
type Selection struct {
	Campaigns   []string  `json:"campaigns,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	SearchTerms []string  `json:"search_terms,omitempty"`
	Mode        DrillMode `json:"mode,omitempty"`
	Action      Action    `json:"action,omitempty"`
}

// Reset retorna a seleção vazia
func Reset() Selection {
	return Selection{}
}

// IsReset informa se nenhuma restrição está ativa
func (s Selection) IsReset() bool {
	return len(s.Campaigns) == 0 &&
		len(s.Keywords) == 0 &&
		len(s.SearchTerms) == 0 &&
		s.Mode == DrillNone
}

func (s Selection) WithCampaigns(names ...string) Selection {
	s.Campaigns = copyStrings(names)
	return s
}

func (s Selection) WithKeywords(texts ...string) Selection {
	s.Keywords = copyStrings(texts)
	return s
}

func (s Selection) WithSearchTerms(terms ...string) Selection {
	s.SearchTerms = copyStrings(terms)
	return s
}

// WithKeywordAction ativa o filtro por ação de palavra-chave, substituindo o modo anterior
func (s Selection) WithKeywordAction(action Action) Selection {
	s.Mode = DrillKeywordAction
	s.Action = action
	return s
}

// WithSearchTermAction ativa o filtro por ação de termo de pesquisa, substituindo o modo anterior
func (s Selection) WithSearchTermAction(action Action) Selection {
	s.Mode = DrillSearchTermAction
	s.Action = action
	return s
}

// WithDuplicates ativa a consulta de termos duplicados, substituindo o modo anterior
func (s Selection) WithDuplicates() Selection {
	s.Mode = DrillDuplicates
	s.Action = ""
	return s
}

func copyStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, len(values))
	copy(out, values)
	return out
}
