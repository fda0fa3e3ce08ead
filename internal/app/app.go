package app

import (
	"practice/config"
	"practice/internal/database"
	"practice/internal/handlers/middleware"
	"practice/internal/logger"
	"practice/internal/repositories"
	"practice/internal/services"

	dashboardController "practice/internal/controllers/dashboard"
	patientController "practice/internal/controllers/patient"
	templateController "practice/internal/controllers/template"
	visitController "practice/internal/controllers/visit"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService

	// Repositories
	PatientRepo  repositories.PatientRepository
	VisitRepo    repositories.VisitRepository
	TemplateRepo repositories.TemplateRepository

	// Controllers
	PatientController   *patientController.PatientController
	VisitController     *visitController.VisitController
	TemplateController  *templateController.TemplateController
	DashboardController *dashboardController.DashboardController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)

	// Initialize repositories
	patientRepo := repositories.NewPatient(db)
	visitRepo := repositories.NewVisit(db)
	templateRepo := repositories.NewTemplate(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(config)
	patientController := patientController.New(patientRepo, visitRepo, transactionService)
	visitController := visitController.New(visitRepo, patientRepo)
	templateController := templateController.New(templateRepo)
	dashboardController := dashboardController.New(patientRepo, visitRepo)

	app := &App{
		Database:            db,
		Config:              config,
		Middleware:          middleware,
		TransactionService:  transactionService,
		PatientRepo:         patientRepo,
		VisitRepo:           visitRepo,
		TemplateRepo:        templateRepo,
		PatientController:   patientController,
		VisitController:     visitController,
		TemplateController:  templateController,
		DashboardController: dashboardController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.PatientRepo,
		a.VisitRepo,
		a.TemplateRepo,
		a.PatientController,
		a.VisitController,
		a.TemplateController,
		a.DashboardController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
