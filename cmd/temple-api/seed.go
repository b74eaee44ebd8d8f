package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"temple-admin/internal/database"
	"temple-admin/internal/repositories"
	"temple-admin/internal/services"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string

	demoCommunities int
	demoSeed        uint64

	auditRetention time.Duration
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the super admin account",
	Long: `Create a super admin console user. Running it again with the same email
leaves the existing account untouched.

Flags fall back to SUPER_ADMIN_EMAIL, SUPER_ADMIN_PASSWORD and SUPER_ADMIN_NAME.`,
	Args: cobra.NoArgs,
	RunE: runSeedAdmin,
}

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Fill a development database with demo records",
	Long: `Generate communities with members, applications, volunteers, donations,
expenses, pujas and the default communication templates.

Refuses to run when APP_ENV=production.`,
	Args: cobra.NoArgs,
	RunE: runSeedDemo,
}

var purgeAuditCmd = &cobra.Command{
	Use:   "purge-audit",
	Short: "Delete audit log entries older than the retention window",
	Args:  cobra.NoArgs,
	RunE:  runPurgeAudit,
}

func init() {
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "super admin email")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "super admin password")
	seedAdminCmd.Flags().StringVar(&adminName, "name", "", "super admin full name")

	seedDemoCmd.Flags().IntVar(&demoCommunities, "communities", 2, "number of communities to generate")
	seedDemoCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "random seed (0 picks one from the clock)")

	purgeAuditCmd.Flags().DurationVar(&auditRetention, "older-than", 90*24*time.Hour, "retention window")
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	email := firstNonEmpty(adminEmail, cfg.Admin.Email)
	password := firstNonEmpty(adminPassword, cfg.Admin.Password)
	name := firstNonEmpty(adminName, cfg.Admin.FullName)
	if email == "" || password == "" {
		return errors.New("--email and --password (or SUPER_ADMIN_EMAIL and SUPER_ADMIN_PASSWORD) are required")
	}

	hash, err := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength).HashPassword(password)
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	user, created, err := db.SeedSuperAdmin(commandContext(cmd), email, hash, name)
	if err != nil {
		return err
	}

	if created {
		logger.Info("created super admin", "user_id", user.ID, "email", user.Email)
	} else {
		logger.Info("super admin already exists", "user_id", user.ID, "email", user.Email)
	}
	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return nil
}

func runSeedDemo(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		return errors.New("seed-demo is disabled in production")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	seed := demoSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	seeder := services.NewDemoSeeder(services.DemoRepositories{
		Communities:  repositories.NewCommunityRepository(db.DB),
		Members:      repositories.NewMemberRepository(db.DB),
		Applications: repositories.NewApplicationRepository(db.DB),
		Volunteers:   repositories.NewVolunteerRepository(db.DB),
		Donations:    repositories.NewDonationRepository(db.DB),
		Expenses:     repositories.NewExpenseRepository(db.DB),
		Pujas:        repositories.NewPujaRepository(db.DB),
		Templates:    repositories.NewTemplateRepository(db.DB),
	}, seed, logger)

	result, err := seeder.Seed(commandContext(cmd), demoCommunities)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", *result)
	return nil
}

func runPurgeAudit(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), services.NewPrometheusMetrics(prometheus.NewRegistry()), logger)

	deleted, err := audit.PurgeOlderThan(commandContext(cmd), auditRetention)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d audit log entries\n", deleted)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
