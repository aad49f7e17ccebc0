// internal/service/assistant/service.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"vitalis-server/internal/common/config"
	httpclient "vitalis-server/internal/common/http"
	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/common/metrics"
	"vitalis-server/internal/models"
)

// FallbackReply is returned whenever the assistant provider is unavailable
// or unconfigured, mirroring the front end's canned response.
const FallbackReply = "I'm sorry, I'm having trouble connecting to my medical knowledge base right now. Please try again later or contact our hospital directly."

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Service proxies health questions to the configured GenAI provider with the
// hospital's specialty roster baked into the prompt. It never propagates
// provider failures: callers always get a reply string.
type Service struct {
	cfg         config.IntegrationConfig
	client      *httpclient.Client
	specialties []models.Specialty
	logger      logger.Logger
}

func New(cfg config.IntegrationConfig, specialties []models.Specialty, log logger.Logger) *Service {
	return &Service{
		cfg:         cfg,
		client:      httpclient.NewClient(config.GetDuration(cfg.GenAI.Timeout)),
		specialties: specialties,
		logger:      log.WithFields(map[string]interface{}{"component": "assistant"}),
	}
}

// Enabled reports whether the assistant has a credential.
func (s *Service) Enabled() bool {
	return s.cfg.AIConfigured() && s.cfg.GenAI.BaseURL != ""
}

// Advise answers a health question. Failures degrade to FallbackReply.
func (s *Service) Advise(ctx context.Context, query string) string {
	if !s.Enabled() {
		metrics.AssistantQueries.WithLabelValues("disabled").Inc()
		return FallbackReply
	}

	req := generateRequest{
		Model:       s.cfg.GenAI.Model,
		Prompt:      s.buildPrompt(query),
		Temperature: 0.7,
		MaxTokens:   800,
	}

	var resp generateResponse
	err := s.client.PostJSON(ctx, s.cfg.GenAI.BaseURL+"/v1/generate", map[string]string{
		"Authorization": "Bearer " + s.cfg.GenAI.APIKey,
	}, req, &resp)
	if err != nil || resp.Text == "" {
		s.logger.Warn("assistant provider call failed", map[string]interface{}{
			"error": err,
		})
		metrics.AssistantQueries.WithLabelValues("failed").Inc()
		return FallbackReply
	}

	metrics.AssistantQueries.WithLabelValues("ok").Inc()
	return resp.Text
}

func (s *Service) buildPrompt(query string) string {
	var roster strings.Builder
	for _, sp := range s.specialties {
		fmt.Fprintf(&roster, "%s: %s\n", sp.Name, sp.Description)
	}

	return fmt.Sprintf(`You are a helpful medical assistant for Vitalis Hospital.

Our hospital has the following specialties:
%s
A user is asking: %q.

Provide a helpful, professional, and empathetic response.
If the user's query relates to one of our specialties, mention that we have experts in that field.

IMPORTANT: Always include a disclaimer that this is AI advice and they should consult a real doctor for emergencies or serious symptoms. Keep it concise.`, roster.String(), query)
}
