package auditing

import (
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_auditor.go -package=mocks

// Auditor define a interface do motor de auditoria
type Auditor interface {
	// Recompute executa o pipeline completo sobre as duas tabelas e aplica a seleção.
	// targetAcos é o percentual alvo (0 a 100).
	Recompute(inputs domain.AuditInputs, targetAcos float64, selection domain.Selection) (*domain.AuditResult, error)
}
