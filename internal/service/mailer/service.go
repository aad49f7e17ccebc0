// internal/service/mailer/service.go
package mailer

import (
	"context"
	"fmt"

	"vitalis-server/internal/common/config"
	apperrors "vitalis-server/internal/common/errors"
	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client the mailer uses. Defined here for
// mocking.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SendResult carries the provider's response payload for the relay endpoint.
type SendResult struct {
	MessageID string `json:"messageId"`
}

// Service wraps the transactional email provider. The provider credential
// stays server-side; clients only ever see the relay endpoint.
type Service struct {
	cfg    config.IntegrationConfig
	client SESAPI
	logger logger.Logger
}

// New builds a Service from configuration. When the email integration is not
// configured the returned service is still usable: Enabled reports false and
// Send fails with a configuration error without contacting the provider.
func New(ctx context.Context, cfg config.IntegrationConfig, log logger.Logger) (*Service, error) {
	s := &Service{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "mailer"}),
	}

	if !cfg.EmailConfigured() {
		return s, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	s.client = ses.NewFromConfig(awsCfg)
	return s, nil
}

// NewWithClient builds a Service with an explicit SES client. Used in tests.
func NewWithClient(cfg config.IntegrationConfig, client SESAPI, log logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "mailer"}),
	}
}

// Enabled reports whether real sends can be attempted.
func (s *Service) Enabled() bool {
	return s.cfg.EmailConfigured() && s.client != nil
}

// Send wraps content into the branded HTML template and submits it to the
// provider. A single provider failure is terminal; there are no retries.
func (s *Service) Send(ctx context.Context, to, subject, content string) (*SendResult, error) {
	if !s.Enabled() {
		metrics.EmailRelayFailures.WithLabelValues("config_missing").Inc()
		return nil, apperrors.NewConfigMissingError("email")
	}

	source := fmt.Sprintf("%s <%s>", s.cfg.AWS.SES.FromName, s.cfg.AWS.SES.FromEmail)
	html := renderBrandedHTML(content)

	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(content)},
				Html: &types.Content{Data: aws.String(html)},
			},
		},
		Source: aws.String(source),
	})
	if err != nil {
		s.logger.Error("email send failed", map[string]interface{}{
			"error": err,
			"to":    to,
		})
		metrics.EmailRelayFailures.WithLabelValues("provider").Inc()
		return nil, apperrors.NewEmailProviderError(err)
	}

	metrics.EmailsRelayed.Inc()

	result := &SendResult{}
	if out != nil && out.MessageId != nil {
		result.MessageID = *out.MessageId
	}
	return result, nil
}

// renderBrandedHTML puts the plain content into the fixed hospital template.
func renderBrandedHTML(content string) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
  <h2 style="color: #2563eb;">Vitalis Hospital</h2>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;" />
  <p style="font-size: 12px; color: #666;">This is an automated message from Vitalis Hospital Management System.</p>
</div>`, content)
}
