// Package assistant answers troubleshooting questions about the current router state.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/micro-ha/netis-dashboard/internal/metrics"
	"github.com/micro-ha/netis-dashboard/internal/model"
)

const (
	FallbackEmptyAnswer = "I'm sorry, I couldn't analyze the network at this moment."
	FallbackUnavailable = "Error connecting to AI service. Please check your internet."

	promptLogLimit = 10
)

// StateSource is the read side of the router store.
type StateSource interface {
	Snapshot() model.RouterState
	Logs(limit int) []model.SystemLog
}

type Service struct {
	state     StateSource
	generator Generator
	logger    *slog.Logger
}

func NewService(state StateSource, generator Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{state: state, generator: generator, logger: logger}
}

// Ask only fails for an empty question. Generator problems turn into the
// fixed fallback answers.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	prompt, err := s.buildPrompt(question)
	if err != nil {
		metrics.AssistantRequests.WithLabelValues("error").Inc()
		s.logger.Error("assistant prompt failed", "err", err)
		return FallbackUnavailable, nil
	}

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		metrics.AssistantRequests.WithLabelValues("error").Inc()
		var serviceErr *ServiceError
		if !errors.As(err, &serviceErr) {
			err = &ServiceError{Op: "generate", Err: err}
		}
		s.logger.Warn("assistant generation failed", "err", err)
		return FallbackUnavailable, nil
	}
	if strings.TrimSpace(answer) == "" {
		metrics.AssistantRequests.WithLabelValues("empty").Inc()
		return FallbackEmptyAnswer, nil
	}
	metrics.AssistantRequests.WithLabelValues("success").Inc()
	return answer, nil
}

func (s *Service) buildPrompt(question string) (string, error) {
	state, err := json.Marshal(s.state.Snapshot())
	if err != nil {
		return "", fmt.Errorf("encode router state: %w", err)
	}
	logs, err := json.Marshal(s.state.Logs(promptLogLimit))
	if err != nil {
		return "", fmt.Errorf("encode router logs: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a highly skilled Network Engineer AI specializing in Netis routers (Model: WF2409E).\n")
	fmt.Fprintf(&b, "Current Router State: %s\n", state)
	fmt.Fprintf(&b, "Recent Logs: %s\n", logs)
	fmt.Fprintf(&b, "User Question: %s\n", question)
	b.WriteString("Provide concise, helpful advice. Refer to devices by name/IP.\n")
	return b.String(), nil
}
