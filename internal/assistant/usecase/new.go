package usecase

import (
	"time"

	"executive-assistant-ai/internal/assistant"
	"executive-assistant-ai/internal/assistant/interpret"
	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/collaborator"
	"executive-assistant-ai/pkg/datemath"
	pkgLog "executive-assistant-ai/pkg/log"
)

const defaultRequestTimeout = 30 * time.Second

// New builds the assistant use case. The language model, calendar, and task
// collaborators may each be nil; the use case degrades instead of failing.
func New(
	l pkgLog.Logger,
	llm collaborator.LanguageModel,
	calendar collaborator.CalendarReader,
	tasks collaborator.TaskReader,
	aggregator *briefing.Aggregator,
	dates *datemath.Parser,
	requestTimeout time.Duration,
) assistant.UseCase {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &usecase{
		l:              l,
		llm:            llm,
		calendar:       calendar,
		tasks:          tasks,
		aggregator:     aggregator,
		dates:          dates,
		interpreter:    interpret.New(l),
		requestTimeout: requestTimeout,
	}
}

type usecase struct {
	l              pkgLog.Logger
	llm            collaborator.LanguageModel
	calendar       collaborator.CalendarReader
	tasks          collaborator.TaskReader
	aggregator     *briefing.Aggregator
	dates          *datemath.Parser
	interpreter    *interpret.Interpreter
	requestTimeout time.Duration
}
