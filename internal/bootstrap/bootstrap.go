package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "limber/internal/modules/catalog/adapter/in"
	catalogoutadapter "limber/internal/modules/catalog/adapter/out"
	catalogservice "limber/internal/modules/catalog/service"
	catalogusecase "limber/internal/modules/catalog/usecase"
	routineinadapter "limber/internal/modules/routine/adapter/in"
	routineoutadapter "limber/internal/modules/routine/adapter/out"
	routineservice "limber/internal/modules/routine/service"
	routineusecase "limber/internal/modules/routine/usecase"
	settingsinadapter "limber/internal/modules/settings/adapter/in"
	settingsoutadapter "limber/internal/modules/settings/adapter/out"
	settingsservice "limber/internal/modules/settings/service"
	settingsusecase "limber/internal/modules/settings/usecase"
	statsinadapter "limber/internal/modules/stats/adapter/in"
	statsusecase "limber/internal/modules/stats/usecase"
	workoutinadapter "limber/internal/modules/workout/adapter/in"
	workoutoutadapter "limber/internal/modules/workout/adapter/out"
	workoutservice "limber/internal/modules/workout/service"
	workoutusecase "limber/internal/modules/workout/usecase"
	"limber/internal/platform/clock"
	"limber/internal/platform/config"
	"limber/internal/platform/id"
	uiapp "limber/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	RoutineCLI  routineinadapter.CLIHandler
	WorkoutCLI  workoutinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	Reminders   *settingsoutadapter.CronReminderRunner

	db *sql.DB
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	db, err := catalogoutadapter.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	exerciseStore, err := catalogoutadapter.NewSQLiteExerciseStore(db)
	if err != nil {
		return nil, fmt.Errorf("new exercise store: %w", err)
	}
	catalogSvc := catalogservice.NewCatalogService(exerciseStore, catalogoutadapter.NewEmbeddedSeedSource())
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	routineStore, err := routineoutadapter.NewSQLiteRoutineStore(db)
	if err != nil {
		return nil, fmt.Errorf("new routine store: %w", err)
	}
	routineSvc := routineservice.NewRoutineService(clk, ids, routineStore)
	routineUC := routineusecase.NewInteractor(routineSvc, catalogUC)

	settingsStore := settingsoutadapter.NewYAMLSettingsStore(cfg.SettingsPath)
	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsStore))

	sessionStore, err := workoutoutadapter.NewSQLiteSessionStore(db)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	workoutSvc := workoutservice.NewWorkoutService(clk, ids, sessionStore)
	workoutUC := workoutusecase.NewInteractor(workoutSvc, routineUC, settingsUC)

	statsUC := statsusecase.NewInteractor(workoutUC, clk)

	ctx := context.Background()
	if err := catalogUC.EnsureSeeded(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	if err := routineUC.EnsureDefaults(ctx); err != nil {
		return nil, fmt.Errorf("seed default routines: %w", err)
	}

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		RoutineCLI:  routineinadapter.NewCLIHandler(routineUC),
		WorkoutCLI:  workoutinadapter.NewCLIHandler(workoutUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		Reminders:   settingsoutadapter.NewCronReminderRunner(settingsUC, workoutUC, os.Stdout),
		db:          db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.RoutineCLI, app.WorkoutCLI, app.StatsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
