package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-audit-api/infrastructure/report"
)

func newShowCmd() *cobra.Command {
	var (
		pretty     bool
		resultOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show <relatório>",
		Short: "Imprime um relatório gravado pela auditoria agendada ou por run --report-dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := report.Load(args[0])
			if err != nil {
				return err
			}

			if resultOnly {
				return report.Encode(cmd.OutOrStdout(), saved.Result, pretty)
			}
			return report.Encode(cmd.OutOrStdout(), saved, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indenta o JSON")
	cmd.Flags().BoolVar(&resultOnly, "result", false, "imprime apenas o resultado da auditoria")

	return cmd
}
