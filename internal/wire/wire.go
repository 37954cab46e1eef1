// Package wire provides dependency injection for the fftpub application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/fftpub/internal/adapters/cli"
	"github.com/example/fftpub/internal/adapters/csvfile"
	"github.com/example/fftpub/internal/adapters/excel"
	"github.com/example/fftpub/internal/adapters/sqlite"
	"github.com/example/fftpub/internal/app"
	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/db"
	"github.com/example/fftpub/internal/ports/primary"
)

var (
	suppressionService primary.SuppressionService
	pipelineService    primary.PipelineService
	rollingService     primary.RollingTotalsService
	once               sync.Once
)

// SuppressionService returns the singleton SuppressionService instance.
func SuppressionService() primary.SuppressionService {
	once.Do(initServices)
	return suppressionService
}

// PipelineService returns the singleton PipelineService instance.
func PipelineService() primary.PipelineService {
	once.Do(initServices)
	return pipelineService
}

// RollingTotalsService returns the singleton RollingTotalsService instance.
func RollingTotalsService() primary.RollingTotalsService {
	once.Do(initServices)
	return rollingService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Configuration resolves from the working directory, falling back to
	// defaults when no workspace is initialized yet.
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}
	cfg := config.LoadOrDefault(cwd)

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	rollingRepo := sqlite.NewRollingTotalsRepository(database)
	runRepo := sqlite.NewRunRepository(database)

	// File adapters
	reader := csvfile.NewReader()
	writer := excel.NewWriter()
	anomalyLog := cliadapter.NewAnomalyLog(os.Stderr)

	// Create services (primary ports implementation)
	suppressionService = app.NewSuppressionService(cfg, anomalyLog)
	pipelineService = app.NewPipelineService(cfg, reader, writer, rollingRepo, runRepo, suppressionService)
	rollingService = app.NewRollingTotalsService(rollingRepo, runRepo)
}
