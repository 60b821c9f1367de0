package config

import (
	"context"
	"fmt"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// Pool backs readiness checks; handlers go through DB.
	Pool *pgxpool.Pool
	DB   *gorm.DB
)

// InitDB opens the pgx pool and the GORM handle against the same database.
func InitDB(cfg *AppConfig) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("unable to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("database ping failed: %w", err)
	}
	Pool = pool
	logger.L().Info("database connected (pgx)")

	gormLog := gormlogger.Default.LogMode(gormlogger.Warn)
	if cfg.IsProduction() {
		gormLog = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), GormConfig(gormLog))
	if err != nil {
		return fmt.Errorf("failed to connect with GORM: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	DB = db
	logger.L().Info("database connected (GORM)")

	if cfg.AutoMigrate {
		if err := Migrate(DB); err != nil {
			return err
		}
	}
	return nil
}

// GormConfig is shared by the Postgres connection and the SQLite test handle.
func GormConfig(l gormlogger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:         l,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

// Models lists every table owned by the API.
func Models() []any {
	return []any{
		&models.Admin{},
		&models.ActivityLog{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.User{},
		&models.Discount{},
		&models.Campaign{},
		&models.Contact{},
		&models.SupportTicket{},
		&models.Review{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.L().Info("schema migrated", zap.Int("tables", len(Models())))
	return nil
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		logger.L().Info("database connection closed (pgx)")
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			sqlDB.Close()
			logger.L().Info("database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout bounds a request-scoped context by the same 10s.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}
