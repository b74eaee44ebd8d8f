package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"temple-admin/internal/config"
	"temple-admin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every table owned by the service, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Community{},
		&models.User{},
		&models.RevokedToken{},
		&models.AuditLog{},
		&models.Member{},
		&models.Application{},
		&models.Transaction{},
		&models.Donation{},
		&models.Expense{},
		&models.Volunteer{},
		&models.Puja{},
		&models.CommunicationTemplate{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",
		"CREATE INDEX IF NOT EXISTS idx_members_last_name_lower ON members(LOWER(last_name))",
		"CREATE INDEX IF NOT EXISTS idx_members_status ON members(status)",
		"CREATE INDEX IF NOT EXISTS idx_applications_community_status ON applications(community_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_donations_purpose ON donations(purpose)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_community_type ON transactions(community_id, type)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_source ON transactions(source, source_id)",
		"CREATE INDEX IF NOT EXISTS idx_pujas_location ON pujas(community_id, location)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// CleanupExpiredTokens drops revocation rows for tokens that have expired on
// their own.
func (db *DB) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	result := db.DB.WithContext(ctx).Where("expires_at < ?", time.Now().UTC()).Delete(&models.RevokedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired revoked tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SeedSuperAdmin creates the super admin account unless a user with the same
// email already exists, in which case the existing user is returned.
func (db *DB) SeedSuperAdmin(ctx context.Context, email, passwordHash, fullName string) (*models.User, bool, error) {
	email = models.NormalizeEmail(email)

	var existing models.User
	err := db.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up admin user: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         models.RoleSuperAdmin,
	}

	if err := db.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, true, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, cfg.Database.MigrationsPath); err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}
