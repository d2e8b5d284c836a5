package domain

import "strings"

// Action é o rótulo de recomendação atribuído a uma linha
type Action string

const (
	ActionIncreaseBid Action = "Increase Bid"
	ActionReduceBid   Action = "Reduce Bid"
	ActionPause       Action = "Pause"
	ActionDoNothing   Action = "Do Nothing"

	ActionGraduate Action = "Graduate"
	ActionNegate   Action = "Negate"

	ActionIncreasePlacement Action = "Increase Placement Percentage"
	ActionDecreasePlacement Action = "Decrease Placement Percentage"
)

// KeywordActions retorna as ações possíveis para palavras-chave, na ordem de precedência
func KeywordActions() []Action {
	return []Action{ActionIncreaseBid, ActionReduceBid, ActionPause, ActionDoNothing}
}

// SearchTermActions retorna as ações possíveis para termos de pesquisa, na ordem de precedência
func SearchTermActions() []Action {
	return []Action{ActionGraduate, ActionNegate, ActionDoNothing}
}

// PlacementActions retorna as ações possíveis para posicionamentos
func PlacementActions() []Action {
	return []Action{ActionIncreasePlacement, ActionDecreasePlacement, ActionDoNothing}
}

// ParseAction aceita o rótulo ("Increase Bid") ou o identificador de botão
// ("increase-bid") e valida contra o conjunto informado
func ParseAction(token string, allowed []Action) (Action, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	for _, action := range allowed {
		if strings.ToLower(string(action)) == normalized {
			return action, true
		}
	}

	return "", false
}
