package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/api"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/auth"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/config"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/mockgen"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

type app struct {
	logger internal.Logger
	dir    *storage.Directory
	repos  *storage.Repositories
}

func (a *app) Logger() internal.Logger                      { return a.logger }
func (a *app) Directory() *storage.Directory                { return a.dir }
func (a *app) AssessmentRepo() storage.AssessmentRepository { return a.repos.Assessments }
func (a *app) ActionRepo() storage.ActionRepository         { return a.repos.Actions }
func (a *app) PeerReportRepo() storage.PeerReportRepository { return a.repos.PeerReports }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// The dataset is regenerated on boot from the configured seed, so two
	// boots with the same seed serve identical data.
	gen := mockgen.NewWithOptions(cfg.DatasetSeed, mockgen.Options{Weeks: cfg.DatasetWeeks})
	ds, err := gen.Generate(cfg.DatasetEmployees)
	if err != nil {
		logger.Fatalf("failed to generate dataset: %v", err)
	}
	logger.Infof("generated dataset: %d employees, %d weeks of history (seed=%d)",
		len(ds.Employees), cfg.DatasetWeeks, cfg.DatasetSeed)

	var repos *storage.Repositories
	switch cfg.DBType {
	case "postgres":
		repos, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.AssessmentsFile), 0o755); err != nil {
			logger.Fatalf("failed to create data dir: %v", err)
		}
		repos, err = storage.NewFileRepositories(cfg.AssessmentsFile, cfg.ActionsFile, cfg.ReportsFile, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer repos.Closer.Close()

	a := &app{
		logger: logger,
		dir:    storage.NewDirectory(ds),
		repos:  repos,
	}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(a.dir, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	r := api.NewRouter(a, cfg, provider)

	logger.Infof("server running on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
