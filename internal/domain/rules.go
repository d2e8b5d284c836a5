package domain

import "fmt"

// BidBaseline define contra qual valor o Max Bid é comparado
type BidBaseline string

const (
	BaselineCPC   BidBaseline = "cpc"
	BaselineSpend BidBaseline = "spend"
)

// AcosAggregation define como o ACOS do resumo é agregado
type AcosAggregation string

const (
	AggregationWeighted AcosAggregation = "weighted"
	AggregationMean     AcosAggregation = "mean"
)

// RuleConfig parametriza as regras que variavam entre as versões da planilha de auditoria
type RuleConfig struct {
	BidBaseline     BidBaseline     `json:"bid_baseline"`
	AcosAggregation AcosAggregation `json:"acos_aggregation"`
}

func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		BidBaseline:     BaselineCPC,
		AcosAggregation: AggregationWeighted,
	}
}

func (r RuleConfig) Validate() error {
	switch r.BidBaseline {
	case BaselineCPC, BaselineSpend:
	default:
		return fmt.Errorf("bid baseline inválido: %q (use cpc ou spend)", r.BidBaseline)
	}

	switch r.AcosAggregation {
	case AggregationWeighted, AggregationMean:
	default:
		return fmt.Errorf("agregação de ACOS inválida: %q (use weighted ou mean)", r.AcosAggregation)
	}

	return nil
}
