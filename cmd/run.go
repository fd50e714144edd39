package cmd

import (
	"github.com/spf13/cobra"

	"careeriq/services"
)

func newRunCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Canonicalize the sources and print market insights for a scope",
		RunE:  run,
	}
	addScopeFlags(c)
	return c
}

func run(c *cobra.Command, _ []string) error {
	p, scope, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = p.logger.Sync() }()

	svc := services.NewInsightService(p.logger)
	report := svc.BuildReport(p.rawCount, p.listings, scope, p.cfg.Skills.Top, p.cfg.Skills.Advice)
	svc.Print(report)
	return nil
}
