// Command audit audita exports de anúncios salvos em disco e imprime o resultado em JSON.
//
// Uso:
//
//	audit run --bulk bulk.xlsx --search-term str.xlsx --target-acos 30
//	audit show reports/audit-20260101-060000-abc.json
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "audit",
		Short:         "Auditoria de campanhas de Sponsored Products",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCmd(), newShowCmd())
	return rootCmd
}

func main() {
	logrus.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("auditoria falhou")
		os.Exit(1)
	}
}
