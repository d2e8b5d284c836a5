package auditing

import (
	"sort"

	"github.com/vfg2006/ads-audit-api/internal/domain"
)

type stringSet map[string]struct{}

func newStringSet(values []string) stringSet {
	set := make(stringSet, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func (s stringSet) has(value string) bool {
	_, ok := s[value]
	return ok
}

// allows trata o conjunto vazio como "sem restrição"
func (s stringSet) allows(value string) bool {
	return len(s) == 0 || s.has(value)
}

// ApplySelection devolve o recorte consistente de full para a seleção informada.
//
// As escolhas são aplicadas de cima para baixo (campanha, palavra-chave, termo),
// depois a consulta de duplicados (contada sobre full), e por fim os níveis superiores são podados
// para conter apenas pais referenciados por algum filho restante. Toda palavra-chave
// do resultado aponta para uma campanha do resultado e todo termo aponta para uma
// palavra-chave do resultado. Reset devolve full sem alterações.
func ApplySelection(full domain.Triple, sel domain.Selection) domain.Triple {
	if sel.IsReset() {
		return full
	}

	campaignPicks := newStringSet(sel.Campaigns)
	keywordPicks := newStringSet(sel.Keywords)
	termPicks := newStringSet(sel.SearchTerms)

	campaigns := make([]domain.Campaign, 0, len(full.Campaigns))
	for _, campaign := range full.Campaigns {
		if campaignPicks.allows(campaign.Name) {
			campaigns = append(campaigns, campaign)
		}
	}
	campaignNames := campaignSet(campaigns)

	keywords := make([]domain.Keyword, 0, len(full.Keywords))
	for _, keyword := range full.Keywords {
		if !campaignNames.has(keyword.Campaign) || !keywordPicks.allows(keyword.Text) {
			continue
		}
		if sel.Mode == domain.DrillKeywordAction && keyword.Action != sel.Action {
			continue
		}
		keywords = append(keywords, keyword)
	}
	keywordTexts := keywordSet(keywords)

	terms := make([]domain.SearchTerm, 0, len(full.SearchTerms))
	for _, term := range full.SearchTerms {
		if !keywordTexts.has(term.Targeting) || !campaignPicks.allows(term.Campaign) || !termPicks.allows(term.SearchTerm) {
			continue
		}
		if sel.Mode == domain.DrillSearchTermAction && term.Action != sel.Action {
			continue
		}
		terms = append(terms, term)
	}

	if sel.Mode == domain.DrillDuplicates {
		terms = duplicatedTerms(terms, full.SearchTerms)
	}

	termConstrained := len(termPicks) > 0 ||
		sel.Mode == domain.DrillSearchTermAction ||
		sel.Mode == domain.DrillDuplicates
	keywordConstrained := termConstrained ||
		len(keywordPicks) > 0 ||
		sel.Mode == domain.DrillKeywordAction

	if termConstrained {
		referenced := make(stringSet, len(terms))
		for _, term := range terms {
			referenced[term.Targeting] = struct{}{}
		}

		pruned := keywords[:0:0]
		for _, keyword := range keywords {
			if referenced.has(keyword.Text) {
				pruned = append(pruned, keyword)
			}
		}
		keywords = pruned
	}

	if keywordConstrained {
		referenced := make(stringSet, len(keywords))
		for _, keyword := range keywords {
			referenced[keyword.Campaign] = struct{}{}
		}

		pruned := campaigns[:0:0]
		for _, campaign := range campaigns {
			if referenced.has(campaign.Name) {
				pruned = append(pruned, campaign)
			}
		}
		campaigns = pruned
	}

	campaignNames = campaignSet(campaigns)

	adGroups := make([]domain.AdGroup, 0)
	for _, adGroup := range full.AdGroups {
		if campaignNames.has(adGroup.Campaign) {
			adGroups = append(adGroups, adGroup)
		}
	}

	placements := make([]domain.Placement, 0)
	for _, placement := range full.Placements {
		if campaignNames.has(placement.Campaign) {
			placements = append(placements, placement)
		}
	}

	return domain.Triple{
		Campaigns:   campaigns,
		Keywords:    keywords,
		SearchTerms: terms,
		AdGroups:    adGroups,
		Placements:  placements,
	}
}

// duplicatedTerms mantém os termos de terms cujo texto aparece duas ou mais vezes
// em all, ordenados pelo texto do termo. A contagem usa a tabela completa, então
// uma cópia fora do recorte ainda conta.
func duplicatedTerms(terms, all []domain.SearchTerm) []domain.SearchTerm {
	counts := make(map[string]int, len(all))
	for _, term := range all {
		counts[term.SearchTerm]++
	}

	duplicated := make([]domain.SearchTerm, 0)
	for _, term := range terms {
		if counts[term.SearchTerm] >= 2 {
			duplicated = append(duplicated, term)
		}
	}

	sort.SliceStable(duplicated, func(i, j int) bool {
		return duplicated[i].SearchTerm < duplicated[j].SearchTerm
	})

	return duplicated
}

// BuildOptions lista os valores selecionáveis de cada nível. Cada lista é calculada
// sem as escolhas do próprio nível, para que o usuário possa trocar a escolha.
func BuildOptions(full domain.Triple, sel domain.Selection) domain.Options {
	campaigns := ApplySelection(full, sel.WithCampaigns()).Campaigns
	keywords := ApplySelection(full, sel.WithKeywords()).Keywords
	terms := ApplySelection(full, sel.WithSearchTerms()).SearchTerms

	options := domain.Options{
		Campaigns:   make([]string, 0, len(campaigns)),
		Keywords:    make([]string, 0, len(keywords)),
		SearchTerms: make([]string, 0, len(terms)),
	}

	seen := make(stringSet)
	for _, campaign := range campaigns {
		options.Campaigns = appendUnique(options.Campaigns, seen, campaign.Name)
	}

	seen = make(stringSet)
	for _, keyword := range keywords {
		options.Keywords = appendUnique(options.Keywords, seen, keyword.Text)
	}

	seen = make(stringSet)
	for _, term := range terms {
		options.SearchTerms = appendUnique(options.SearchTerms, seen, term.SearchTerm)
	}

	return options
}

func appendUnique(values []string, seen stringSet, value string) []string {
	if seen.has(value) {
		return values
	}
	seen[value] = struct{}{}
	return append(values, value)
}

func campaignSet(campaigns []domain.Campaign) stringSet {
	set := make(stringSet, len(campaigns))
	for _, campaign := range campaigns {
		set[campaign.Name] = struct{}{}
	}
	return set
}

func keywordSet(keywords []domain.Keyword) stringSet {
	set := make(stringSet, len(keywords))
	for _, keyword := range keywords {
		set[keyword.Text] = struct{}{}
	}
	return set
}
