package auditing

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

// BulkRow é uma linha do bulk export no esquema canônico
type BulkRow struct {
	Entity            string  `mapstructure:"entity"`
	CampaignName      string  `mapstructure:"campaign_name"`
	CampaignNameInfo  string  `mapstructure:"campaign_name_info"`
	CampaignID        string  `mapstructure:"campaign_id"`
	AdGroupName       string  `mapstructure:"ad_group_name"`
	AdGroupNameInfo   string  `mapstructure:"ad_group_name_info"`
	KeywordText       string  `mapstructure:"keyword_text"`
	MatchType         string  `mapstructure:"match_type"`
	State             string  `mapstructure:"state"`
	Bid               float64 `mapstructure:"bid"`
	AdGroupDefaultBid float64 `mapstructure:"ad_group_default_bid"`
	DailyBudget       float64 `mapstructure:"daily_budget"`
	BiddingStrategy   string  `mapstructure:"bidding_strategy"`
	Placement         string  `mapstructure:"placement"`
	Percentage        float64 `mapstructure:"percentage"`
	Impressions       int     `mapstructure:"impressions"`
	Clicks            int     `mapstructure:"clicks"`
	Spend             float64 `mapstructure:"spend"`
	Sales             float64 `mapstructure:"sales"`
	Orders            int     `mapstructure:"orders"`
	Units             int     `mapstructure:"units"`
	ACOS              float64 `mapstructure:"acos"`
}

// CampaignKey é a identidade da campanha: nome informativo, com fallback para o nome
func (r BulkRow) CampaignKey() string {
	if r.CampaignNameInfo != "" {
		return r.CampaignNameInfo
	}
	return r.CampaignName
}

// AdGroupKey segue a mesma regra de CampaignKey para o grupo de anúncios
func (r BulkRow) AdGroupKey() string {
	if r.AdGroupNameInfo != "" {
		return r.AdGroupNameInfo
	}
	return r.AdGroupName
}

// SearchTermRow é uma linha do relatório de termos de pesquisa no esquema canônico
type SearchTermRow struct {
	CampaignName   string  `mapstructure:"campaign_name"`
	AdGroupName    string  `mapstructure:"ad_group_name"`
	Targeting      string  `mapstructure:"targeting"`
	SearchTerm     string  `mapstructure:"search_term"`
	MatchType      string  `mapstructure:"match_type"`
	Impressions    int     `mapstructure:"impressions"`
	Clicks         int     `mapstructure:"clicks"`
	CPC            float64 `mapstructure:"cpc"`
	Spend          float64 `mapstructure:"spend"`
	Sales          float64 `mapstructure:"sales"`
	Orders         int     `mapstructure:"orders"`
	Units          int     `mapstructure:"units"`
	ConversionRate float64 `mapstructure:"conversion_rate"`
}

// Normalized são as duas tabelas já no esquema canônico
type Normalized struct {
	Bulk        []BulkRow
	SearchTerms []SearchTermRow
	// Células numéricas que não puderam ser interpretadas e viraram 0
	InvalidCells int
}

type columnAlias struct {
	field   string
	aliases []string
}

// Aliases aceitos para cada coluna do bulk export, em ordem de preferência
var bulkColumns = []columnAlias{
	{field: "entity", aliases: []string{"Entity"}},
	{field: "campaign_name", aliases: []string{"Campaign Name", "Campaign"}},
	{field: "campaign_name_info", aliases: []string{"Campaign Name (Informational only)", "Campaign_1"}},
	{field: "campaign_id", aliases: []string{"Campaign ID"}},
	{field: "ad_group_name", aliases: []string{"Ad Group Name", "Ad Group"}},
	{field: "ad_group_name_info", aliases: []string{"Ad Group Name (Informational only)", "Ad Group_1"}},
	{field: "keyword_text", aliases: []string{"Keyword Text", "Keyword"}},
	{field: "match_type", aliases: []string{"Match Type"}},
	{field: "state", aliases: []string{"State"}},
	{field: "bid", aliases: []string{"Bid"}},
	{field: "ad_group_default_bid", aliases: []string{"Ad Group Default Bid"}},
	{field: "daily_budget", aliases: []string{"Daily Budget"}},
	{field: "bidding_strategy", aliases: []string{"Bidding Strategy"}},
	{field: "placement", aliases: []string{"Placement"}},
	{field: "percentage", aliases: []string{"Percentage"}},
	{field: "impressions", aliases: []string{"Impressions", "Imp"}},
	{field: "clicks", aliases: []string{"Clicks"}},
	{field: "spend", aliases: []string{"Spend"}},
	{field: "sales", aliases: []string{"Sales"}},
	{field: "orders", aliases: []string{"Orders"}},
	{field: "units", aliases: []string{"Units"}},
	{field: "acos", aliases: []string{"ACOS"}},
}

// Aliases aceitos para cada coluna do relatório de termos de pesquisa
var searchTermColumns = []columnAlias{
	{field: "campaign_name", aliases: []string{"Campaign Name", "Campaign"}},
	{field: "ad_group_name", aliases: []string{"Ad Group Name", "Ad Group"}},
	{field: "targeting", aliases: []string{"Targeting", "Keyword"}},
	{field: "search_term", aliases: []string{"Customer Search Term", "CST"}},
	{field: "match_type", aliases: []string{"Match Type"}},
	{field: "impressions", aliases: []string{"Impressions", "Imp"}},
	{field: "clicks", aliases: []string{"Clicks"}},
	{field: "cpc", aliases: []string{"Cost Per Click (CPC)", "CPC"}},
	{field: "spend", aliases: []string{"Spend"}},
	{field: "sales", aliases: []string{"7 Day Total Sales", "Sales"}},
	{field: "orders", aliases: []string{"7 Day Total Orders (#)", "Orders"}},
	{field: "units", aliases: []string{"7 Day Total Units (#)", "Units"}},
	{field: "conversion_rate", aliases: []string{"7 Day Conversion Rate", "CVR"}},
}

// Normalize converte as duas tabelas brutas para o esquema canônico.
// Colunas opcionais ausentes ficam com valor zero; a ausência da coluna Entity é fatal.
func Normalize(bulk, searchTerms *domain.Table) (*Normalized, error) {
	out := &Normalized{}

	bulkIndex := resolveColumns(bulk.Header, bulkColumns)
	if _, ok := bulkIndex["entity"]; !ok {
		return nil, &SchemaError{Table: domain.TableBulk, Field: "Entity"}
	}

	for _, cells := range bulk.Rows {
		var row BulkRow
		invalid, err := decodeRow(cells, bulkIndex, &row)
		if err != nil {
			return nil, err
		}
		out.InvalidCells += invalid

		if row.Entity == "" || row.CampaignKey() == "" {
			continue
		}
		out.Bulk = append(out.Bulk, row)
	}

	termIndex := resolveColumns(searchTerms.Header, searchTermColumns)
	for _, cells := range searchTerms.Rows {
		var row SearchTermRow
		invalid, err := decodeRow(cells, termIndex, &row)
		if err != nil {
			return nil, err
		}
		out.InvalidCells += invalid

		if row.CampaignName == "" || row.SearchTerm == "" {
			continue
		}
		out.SearchTerms = append(out.SearchTerms, row)
	}

	if out.InvalidCells > 0 {
		logrus.WithFields(logrus.Fields{
			"invalid_cells": out.InvalidCells,
		}).Warn("Células numéricas inválidas foram tratadas como 0")
	}

	logrus.WithFields(logrus.Fields{
		"bulk_rows":        len(out.Bulk),
		"search_term_rows": len(out.SearchTerms),
		"bulk_dropped":     len(bulk.Rows) - len(out.Bulk),
		"terms_dropped":    len(searchTerms.Rows) - len(out.SearchTerms),
	}).Debug("Tabelas normalizadas")

	return out, nil
}

// resolveColumns mapeia cada campo canônico para o índice da coluna de origem
func resolveColumns(header []string, columns []columnAlias) map[string]int {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	index := make(map[string]int, len(columns))
	for _, column := range columns {
		for _, alias := range column.aliases {
			if i, ok := positions[strings.ToLower(alias)]; ok {
				index[column.field] = i
				break
			}
		}
	}

	return index
}

// decodeRow preenche result a partir das células da linha e devolve quantas
// células numéricas não puderam ser interpretadas
func decodeRow(cells []string, index map[string]int, result any) (int, error) {
	raw := make(map[string]any, len(index))
	for field, i := range index {
		if i < len(cells) {
			raw[field] = cells[i]
		}
	}

	invalid := 0
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       cellDecodeHook(&invalid),
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return 0, err
	}

	if err := decoder.Decode(raw); err != nil {
		return 0, err
	}

	return invalid, nil
}

// cellDecodeHook converte células de texto em números aceitando "$", "," e "%"
func cellDecodeHook(invalid *int) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		text := strings.TrimSpace(data.(string))

		switch to.Kind() {
		case reflect.String:
			return text, nil
		case reflect.Float32, reflect.Float64:
			value, ok := ParseNumber(text)
			if !ok {
				*invalid++
			}
			return value, nil
		case reflect.Int, reflect.Int32, reflect.Int64:
			value, ok := ParseNumber(text)
			if !ok {
				*invalid++
			}
			return int(math.Round(value)), nil
		default:
			return data, nil
		}
	}
}

// ParseNumber interpreta um valor numérico exportado pela planilha.
// Textos de percentual ("25%") viram razão (0.25). Células vazias valem 0.
func ParseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	switch strings.ToUpper(text) {
	case "", "-", "--", "N/A":
		return 0, true
	}

	percent := strings.HasSuffix(text, "%")
	text = strings.TrimSuffix(text, "%")
	text = strings.NewReplacer("$", "", ",", "", " ", "").Replace(text)

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	if percent {
		value /= 100
	}

	return value, true
}
