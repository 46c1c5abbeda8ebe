package main

import (
	"log"
	"runtime"

	"load-profiler/internal/config"
	"load-profiler/internal/controllers"
	"load-profiler/internal/loadprofile"
	"load-profiler/internal/logger"
	"load-profiler/internal/models"
	"load-profiler/internal/picker"
	"load-profiler/internal/services"
	"load-profiler/internal/shutdown"
	"load-profiler/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Load Profiler"
	AppID      = "com.loadprofiler.csv-processor"
	AppVersion = "1.0.0"
)

// Application owns the fyne runtime and the MVC components behind the window
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller        *controllers.MainController
	view              *views.MainView
	processingService *services.ProcessingService
	shutdown          *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

// NewApplication creates and wires the application components
func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.New(log.Writer(), cfg.Level(), cfg.LogFormat)

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	window := fyneApp.NewWindow(AppName)

	appLogger.Info("Application", "Application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.Level().String(),
		"interval":   cfg.Interval.String(),
	})

	resultRepo := models.NewResultRepository()
	processingService := services.NewProcessingService(appLogger, resultRepo, services.ProcessingSettings{
		Options: loadprofile.Options{
			Interval:    cfg.Interval,
			ScaleFactor: cfg.ScaleFactor,
		},
		WriteOutputs: cfg.WriteOutputs,
	})

	shutdownManager := shutdown.NewManager(appLogger)

	mainView := views.NewMainView(window)
	mainController := controllers.NewMainController(shutdownManager.Context(), picker.NewNativeSelector(), processingService, appLogger)
	mainController.SetMainView(mainView)

	// The service releases the result repository on shutdown.
	shutdownManager.Register("processing service", processingService)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:           fyneApp,
		window:            window,
		logger:            appLogger,
		controller:        mainController,
		view:              mainView,
		processingService: processingService,
		shutdown:          shutdownManager,
	}
	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks in the fyne event loop
func (app *Application) Run() {
	app.shutdown.Listen(func() {
		fyne.Do(app.fyneApp.Quit)
	})

	app.view.Show()
	app.fyneApp.Run()

	app.shutdown.Shutdown()
	app.logger.Info("Application", "Application terminated", nil)
}

// setupWindowEvents asks for confirmation before closing the window
func (app *Application) setupWindowEvents() {
	app.window.SetCloseIntercept(func() {
		app.logger.Debug("Application", "Window close requested", nil)
		app.view.ShowConfirm("Exit Application", "Are you sure you want to exit?", func(confirmed bool) {
			if confirmed {
				app.window.Close()
			}
		})
	})

	app.window.SetOnClosed(func() {
		stats := app.processingService.GetProcessingStats()
		app.logger.Info("Application", "Window closed", map[string]interface{}{
			"files_processed": stats.TotalProcessed,
			"files_failed":    stats.TotalFailed,
			"avg_process_ms":  stats.AverageTime.Milliseconds(),
		})
		app.shutdown.Shutdown()
	})
}
