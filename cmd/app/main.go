package main

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uchoabruno/bgls/internal/config"
	"github.com/uchoabruno/bgls/internal/db"
	"github.com/uchoabruno/bgls/internal/repository"
	"github.com/uchoabruno/bgls/internal/service"
	"github.com/uchoabruno/bgls/internal/transport"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewLogger,
			db.NewGormClient,
			func(d *gorm.DB, l *zap.SugaredLogger) repository.ConsoleStor {
				return repository.NewGormConsoleStor(d, l)
			},
			func(d *gorm.DB, l *zap.SugaredLogger) repository.GameStor {
				return repository.NewGormGameStor(d, l)
			},
			func(d *gorm.DB, l *zap.SugaredLogger) repository.ItemStor {
				return repository.NewGormItemStor(d, l)
			},
			func(d *gorm.DB, l *zap.SugaredLogger) repository.UserStor {
				return repository.NewGormUserStor(d, l)
			},
			service.NewConsoleService,
			service.NewGameService,
			service.NewItemService,
			service.NewAuthService,
			transport.NewHTTPServer,
		),
		fx.Invoke(func(*transport.HTTPServer) {}),
	)

	app.Run()
}

func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
