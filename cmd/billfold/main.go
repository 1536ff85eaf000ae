package main

import (
	"github.com/billfold/billfold/internal/client"
	"github.com/billfold/billfold/internal/company"
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/invoice"
	"github.com/billfold/billfold/internal/observability"
	"github.com/billfold/billfold/internal/observability/logger"
	"github.com/billfold/billfold/internal/product"
	"github.com/billfold/billfold/internal/providers/pdf"
	"github.com/billfold/billfold/internal/server"
	"github.com/billfold/billfold/pkg/db"
	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(openDatabase),
		fx.Provide(kv.New),

		// Collections
		company.Module,
		client.Module,
		product.Module,
		invoice.Module,

		// Export boundary and HTTP surface
		pdf.Module,
		server.Module,
	)
	app.Run()
}

func openDatabase(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormLog := logger.NewGormLogger(log, logger.DefaultGormLoggerConfig())
	return db.Open(db.Config{Dir: cfg.DataDir, File: cfg.DBFile}, gormLog)
}
