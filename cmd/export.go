package cmd

import (
	"github.com/spf13/cobra"

	"careeriq/models"
	"careeriq/storage"
)

func newExportCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the scoped canonical listings as CSV",
		RunE:  export,
	}
	addScopeFlags(c)
	c.Flags().StringSlice("columns", nil, `columns to export by label, e.g. "Job Title,Location" (default from config)`)
	c.Flags().StringP("output", "o", "", `output path, "-" for stdout (default from config)`)
	return c
}

func export(c *cobra.Command, _ []string) error {
	p, scope, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = p.logger.Sync() }()

	labels := p.cfg.Export.Columns
	if c.Flags().Changed("columns") {
		labels, _ = c.Flags().GetStringSlice("columns")
	}
	columns, err := models.ParseExportColumns(labels)
	if err != nil {
		return err
	}

	path := p.cfg.Export.Path
	if c.Flags().Changed("output") {
		path, _ = c.Flags().GetString("output")
	}

	subset := scope.Apply(p.listings)
	if path == "" || path == "-" {
		return storage.EncodeCSV(c.OutOrStdout(), subset, columns)
	}

	w, err := storage.NewCSVWriter(path, columns)
	if err != nil {
		return err
	}
	if err := writeAndClose(c.Context(), w, subset); err != nil {
		return err
	}
	p.logger.Info("[export] Wrote %d listings to %s", len(subset), path)
	return nil
}
