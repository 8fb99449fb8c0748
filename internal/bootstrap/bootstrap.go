package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "studylog/internal/modules/account/adapter/in"
	accountservice "studylog/internal/modules/account/service"
	accountusecase "studylog/internal/modules/account/usecase"
	adviceinadapter "studylog/internal/modules/advice/adapter/in"
	adviceoutadapter "studylog/internal/modules/advice/adapter/out"
	adviceservice "studylog/internal/modules/advice/service"
	adviceusecase "studylog/internal/modules/advice/usecase"
	focusinadapter "studylog/internal/modules/focus/adapter/in"
	focusoutadapter "studylog/internal/modules/focus/adapter/out"
	focusservice "studylog/internal/modules/focus/service"
	focususecase "studylog/internal/modules/focus/usecase"
	preferencesinadapter "studylog/internal/modules/preferences/adapter/in"
	preferencesoutadapter "studylog/internal/modules/preferences/adapter/out"
	preferencesservice "studylog/internal/modules/preferences/service"
	preferencesusecase "studylog/internal/modules/preferences/usecase"
	sessioninadapter "studylog/internal/modules/session/adapter/in"
	sessionoutadapter "studylog/internal/modules/session/adapter/out"
	sessionservice "studylog/internal/modules/session/service"
	sessionusecase "studylog/internal/modules/session/usecase"
	statsinadapter "studylog/internal/modules/stats/adapter/in"
	statsusecase "studylog/internal/modules/stats/usecase"
	tipsinadapter "studylog/internal/modules/tips/adapter/in"
	tipsoutadapter "studylog/internal/modules/tips/adapter/out"
	tipsservice "studylog/internal/modules/tips/service"
	tipsusecase "studylog/internal/modules/tips/usecase"
	"studylog/internal/platform/clock"
	"studylog/internal/platform/config"
	"studylog/internal/platform/id"
	uiapp "studylog/internal/ui/app"
)

type App struct {
	SessionCLI     sessioninadapter.CLIHandler
	StatsCLI       statsinadapter.CLIHandler
	PreferencesCLI preferencesinadapter.CLIHandler
	AccountCLI     accountinadapter.CLIHandler
	AdviceCLI      adviceinadapter.CLIHandler
	TipsCLI        tipsinadapter.CLIHandler
	FocusCLI       focusinadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	clk := clock.SystemClock{}
	ids := id.TimeOrdered{}

	prefStore, err := preferencesoutadapter.NewSQLitePreferenceStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new preference store: %w", err)
	}
	prefsUC := preferencesusecase.NewInteractor(
		preferencesservice.NewPreferenceService(prefStore, cfg.DefaultWeeklyGoal, logger.With("module", "preferences")),
	)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, sessionoutadapter.NewMemorySessionStore()),
	)
	statsUC := statsusecase.NewInteractor(clk, sessionUC, prefsUC)
	accountUC := accountusecase.NewInteractor(accountservice.NewAccountService(0), prefsUC)

	adviceSource, err := adviceoutadapter.NewHTTPAdviceSource(cfg.Advice.BaseURL, time.Duration(cfg.Advice.TimeoutSeconds)*time.Second)
	if err != nil {
		_ = prefStore.Close()
		return nil, fmt.Errorf("new advice source: %w", err)
	}
	adviceUC := adviceusecase.NewInteractor(
		adviceservice.NewAdviceService(adviceSource, logger.With("module", "advice")),
	)

	tipsUC := tipsusecase.NewInteractor(tipsservice.NewTipService(tipsoutadapter.NewEmbeddedCatalog()))
	focusUC := focususecase.NewInteractor(
		focusservice.NewRunner(focusoutadapter.NewTimeTickSource(), logger.With("module", "focus")),
	)

	return &App{
		SessionCLI:     sessioninadapter.NewCLIHandler(sessionUC),
		StatsCLI:       statsinadapter.NewCLIHandler(statsUC),
		PreferencesCLI: preferencesinadapter.NewCLIHandler(prefsUC),
		AccountCLI:     accountinadapter.NewCLIHandler(accountUC),
		AdviceCLI:      adviceinadapter.NewCLIHandler(adviceUC),
		TipsCLI:        tipsinadapter.NewCLIHandler(tipsUC),
		FocusCLI:       focusinadapter.NewCLIHandler(focusUC),
		closers:        []func() error{prefStore.Close},
	}, nil
}

// Close releases the preference database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(app *App) error {
	status := app.AccountCLI.Status(context.Background())
	model := uiapp.NewModel(uiapp.Ports{
		Sessions:    app.SessionCLI,
		Stats:       app.StatsCLI,
		Preferences: app.PreferencesCLI,
		Account:     app.AccountCLI,
		Advice:      app.AdviceCLI,
		Tips:        app.TipsCLI,
	}, status.LoggedIn)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
