package notify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"

	"careeriq/utils"
)

const whatsappPrefix = "whatsapp:"

// TwilioOptions configures the WhatsApp transport.
type TwilioOptions struct {
	AccountSID  string
	AuthToken   string
	From        string
	To          string
	MaxRetries  int
	MinInterval time.Duration
	// RetryDelay is the first back-off delay. Defaults to one second.
	RetryDelay time.Duration
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends messages over WhatsApp through the Twilio REST API.
// Transient failures are retried. MinInterval spaces consecutive sends made
// through the same notifier; the first send is never delayed, so a notifier
// built for a single send is not paced.
type TwilioNotifier struct {
	api     messageCreator
	from    string
	to      string
	limiter *rate.Limiter
	retry   utils.RetryConfig
	logger  *utils.Logger
}

func NewTwilioNotifier(opts TwilioOptions, logger *utils.Logger) (*TwilioNotifier, error) {
	if opts.AccountSID == "" || opts.AuthToken == "" {
		return nil, errors.New("twilio: account sid and auth token are required")
	}
	if opts.From == "" || opts.To == "" {
		return nil, errors.New("twilio: from and to numbers are required")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: opts.AccountSID,
		Password: opts.AuthToken,
	})
	return newTwilioNotifier(client.Api, opts, logger), nil
}

func newTwilioNotifier(api messageCreator, opts TwilioOptions, logger *utils.Logger) *TwilioNotifier {
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}
	return &TwilioNotifier{
		api:     api,
		from:    whatsappAddress(opts.From),
		to:      whatsappAddress(opts.To),
		limiter: rate.NewLimiter(limit, 1),
		retry: utils.RetryConfig{
			MaxAttempts: opts.MaxRetries,
			BaseDelay:   delay,
			Logger:      logger,
		},
		logger: logger,
	}
}

// Send dispatches message and returns the Twilio message SID.
func (n *TwilioNotifier) Send(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("twilio: empty message")
	}
	if err := n.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "twilio: wait for send slot")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody(message)

	var sid string
	err := n.retry.Do(ctx, "twilio send", func() error {
		resp, err := n.api.CreateMessage(params)
		if err != nil {
			if !retryable(err) {
				return utils.Permanent(err)
			}
			return err
		}
		if resp != nil && resp.Sid != nil {
			sid = *resp.Sid
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "twilio: send to %s", n.to)
	}

	n.logger.Info("[twilio] Sent insight message to %s (sid %s)", n.to, sid)
	return sid, nil
}

// retryable reports whether a Twilio error is worth another attempt.
// Client errors other than 429 will fail the same way again.
func retryable(err error) bool {
	var restErr *twilioclient.TwilioRestError
	if !errors.As(err, &restErr) {
		return true
	}
	if restErr.Status == http.StatusTooManyRequests {
		return true
	}
	return restErr.Status >= http.StatusInternalServerError
}

func whatsappAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, whatsappPrefix) {
		return number
	}
	return whatsappPrefix + number
}
