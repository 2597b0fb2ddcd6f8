package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"executive-assistant-ai/config"
	_ "executive-assistant-ai/docs" // Swagger docs
	assistantHTTP "executive-assistant-ai/internal/assistant/delivery/http"
	assistantUC "executive-assistant-ai/internal/assistant/usecase"
	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/collaborator"
	"executive-assistant-ai/internal/httpserver"
	"executive-assistant-ai/internal/middleware"
	"executive-assistant-ai/internal/proactive"
	proactiveHTTP "executive-assistant-ai/internal/proactive/delivery/http"
	"executive-assistant-ai/pkg/datemath"
	"executive-assistant-ai/pkg/gcalendar"
	"executive-assistant-ai/pkg/gemini"
	"executive-assistant-ai/pkg/log"
	"executive-assistant-ai/pkg/sendgrid"
	"executive-assistant-ai/pkg/taskstore"
)

// @title       Executive Assistant API
// @description AI-powered executive assistant with natural-language request interpretation and proactive calendar/task/email automation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Executive Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone helpers
	timezone := cfg.Assistant.Timezone
	dates, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dates, _ = datemath.NewParser(timezone)
	}
	aggregator, _ := briefing.New(timezone)

	// 4. Collaborators (each optional; the core degrades without them)
	var llm collaborator.LanguageModel
	if cfg.Gemini.APIKey != "" {
		geminiClient, gErr := gemini.New(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Gemini not available (optional): %v", gErr)
		} else {
			llm = collaborator.NewGeminiModel(geminiClient)
			logger.Infof(ctx, "Gemini initialized with model %s", geminiClient.Model())
		}
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing: requests will use the keyword fallback path")
	}

	var calendarReader collaborator.CalendarReader
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
		} else {
			calendarReader = collaborator.NewGoogleCalendar(calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var taskReader collaborator.TaskReader
	if cfg.TaskStore.URL != "" && cfg.TaskStore.AccessToken != "" {
		taskReader = collaborator.NewMemoTasks(taskstore.NewClient(cfg.TaskStore.URL, cfg.TaskStore.AccessToken))
		logger.Infof(ctx, "Task store initialized at %s", cfg.TaskStore.URL)
	}

	var emailSender collaborator.EmailSender
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.FromEmail != "" {
		sendgridClient, sErr := sendgrid.New(sendgrid.Config{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
		})
		if sErr != nil {
			logger.Warnf(ctx, "SendGrid not available (optional): %v", sErr)
		} else {
			emailSender = collaborator.NewSendGridEmail(sendgridClient)
			logger.Info(ctx, "SendGrid initialized")
		}
	}

	// 5. Assistant domain
	uc := assistantUC.New(logger, llm, calendarReader, taskReader, aggregator, dates, cfg.Assistant.RequestTimeout)
	assistantHandler := assistantHTTP.New(logger, uc)

	// 6. Proactive orchestrator (needs every collaborator it dispatches through)
	var proactiveHandler proactiveHTTP.Handler
	if cfg.Proactive.Enabled && calendarReader != nil && taskReader != nil && emailSender != nil {
		orchestrator, pErr := proactive.New(logger, aggregator, dates, calendarReader, taskReader, emailSender, proactive.Config{
			Recipient: cfg.Proactive.Recipient,
			TopTasks:  cfg.Proactive.TopTasks,
		})
		if pErr != nil {
			logger.Errorf(ctx, "Failed to initialize proactive orchestrator: %v", pErr)
			return
		}
		orchestrator.Start()
		defer orchestrator.Stop()

		proactiveHandler = proactiveHTTP.New(logger, orchestrator)
		logger.Info(ctx, "Proactive orchestrator started")
	} else {
		logger.Warn(ctx, "Proactive orchestrator disabled: missing config or collaborators")
	}

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
		ProactiveHandler: proactiveHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
