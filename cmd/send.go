package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"careeriq/notify"
	"careeriq/services"
)

func newSendCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "send",
		Short: "Format the scoped market insight and deliver it over WhatsApp",
		RunE:  send,
	}
	addScopeFlags(c)
	c.Flags().Bool("dry-run", false, "print the message instead of sending it")
	return c
}

func send(c *cobra.Command, _ []string) error {
	p, scope, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = p.logger.Sync() }()

	insight := services.NewInsightService(p.logger).Generate(p.listings, scope.Apply(p.listings))
	message, err := services.FormatInsightMessage(insight)
	if err != nil {
		return errors.Wrapf(err, "nothing to send for %q", scope.Summary())
	}

	dryRun, _ := c.Flags().GetBool("dry-run")
	notifier, err := newNotifier(c, p, dryRun)
	if err != nil {
		return err
	}

	receipt, err := notifier.Send(c.Context(), message)
	if err != nil {
		return err
	}
	p.logger.Info("[send] Message delivered (receipt %s)", receipt)
	return nil
}

func newNotifier(c *cobra.Command, p *pipeline, dryRun bool) (notify.Notifier, error) {
	if dryRun {
		return notify.NewWriterNotifier(c.OutOrStdout()), nil
	}

	tw := p.cfg.Twilio
	if !tw.Enabled {
		return nil, errors.New("twilio is disabled: set twilio.enabled or pass --dry-run")
	}
	token, err := tw.ResolveAuthToken()
	if err != nil {
		return nil, err
	}
	return notify.NewTwilioNotifier(notify.TwilioOptions{
		AccountSID:  tw.AccountSID,
		AuthToken:   token,
		From:        tw.From,
		To:          tw.To,
		MaxRetries:  tw.MaxRetries,
		MinInterval: tw.MinInterval,
	}, p.logger)
}
