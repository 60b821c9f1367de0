// Command seed creates the first super admin and, optionally, demo data.
//
//	go run ./cmd/seed --email owner@maplenest.ca --name "Store Owner" --password changeme123 --demo
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	_ = godotenv.Load()
}

type cli struct {
	Email    string `required:"" help:"Super admin email."`
	Name     string `required:"" help:"Super admin display name."`
	Password string `required:"" help:"Super admin password (min 8 characters)."`
	Demo     bool   `help:"Also insert demo categories, products, customers, orders and marketing data."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Name("seed"),
		kong.Description("Bootstrap the MapleNest admin database."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (c *cli) Run(ctx context.Context) error {
	if !services.ValidateAdminPassword(c.Password) {
		return fmt.Errorf("password must be at least %d characters", services.MinPasswordLength)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.InitLogger(logger.LogConfig{Level: cfg.LogLevel, Environment: cfg.Env, ServiceName: "seed"}); err != nil {
		return err
	}
	defer logger.Sync()

	cfg.AutoMigrate = true
	if err := config.InitDB(cfg); err != nil {
		return err
	}
	defer config.CloseDB()

	db := config.DB.WithContext(ctx)
	admin, err := createSuperAdmin(db, c.Email, c.Name, c.Password)
	if err != nil {
		return err
	}
	logger.L().Info("super admin ready", zap.String("id", admin.ID.String()), zap.String("email", admin.Email))

	if c.Demo {
		if err := seedDemo(db); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.L().Info("demo data inserted")
	}
	return nil
}

func createSuperAdmin(db *gorm.DB, email, name, password string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("admin with email %q already exists", email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	hash, err := services.HashAdminPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.Admin{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         models.AdminRoleSuperAdmin,
		Status:       models.AdminStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, fmt.Errorf("admin with email %q already exists", email)
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
