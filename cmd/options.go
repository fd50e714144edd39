package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"careeriq/models"
	"careeriq/services"
)

func newOptionsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "options",
		Short: "List the roles, locations and experience bands available for filtering",
		RunE:  options,
	}
	c.Flags().StringSliceP("source", "s", nil, "override configured sources with path[:profile] entries")
	return c
}

func options(c *cobra.Command, _ []string) error {
	p, _, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = p.logger.Sync() }()

	opts := services.Options(p.listings)
	roles := make([]string, 0, len(opts.Roles))
	for _, r := range opts.Roles {
		roles = append(roles, string(r))
	}
	bands := make([]string, 0, len(models.ExperienceBands))
	for _, b := range models.ExperienceBands {
		bands = append(bands, string(b))
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "Roles:       %s\n", strings.Join(roles, ", "))
	fmt.Fprintf(out, "Locations:   %s\n", strings.Join(opts.Locations, ", "))
	fmt.Fprintf(out, "Experience:  %s\n", strings.Join(bands, ", "))
	fmt.Fprintf(out, "Columns:     %s\n", strings.Join(models.ExportLabels(), ", "))
	return nil
}
