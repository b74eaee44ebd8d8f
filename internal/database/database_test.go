package database

import (
	"context"
	"testing"
	"time"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSuperAdmin_Idempotent(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()

	user, created, err := db.SeedSuperAdmin(ctx, " Root@Temple.org ", "hash", "Root Admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "root@temple.org", user.Email)
	assert.Equal(t, models.RoleSuperAdmin, user.Role)

	again, created, err := db.SeedSuperAdmin(ctx, "root@temple.org", "other-hash", "Someone Else")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "hash", again.PasswordHash)
}

func TestCleanupExpiredTokens(t *testing.T) {
	db := SetupTestDB(t)
	user := CreateTestUser(t, db, "staff@temple.org", models.RoleStaff)

	require.NoError(t, db.Create(&models.RevokedToken{JTI: uuid.NewString(), UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&models.RevokedToken{JTI: uuid.NewString(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}).Error)

	removed, err := db.CleanupExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining int64
	require.NoError(t, db.Model(&models.RevokedToken{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestModelsAreMigrated(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{"communities", "members", "applications", "donations", "expenses",
		"volunteers", "pujas", "communication_templates", "transactions", "audit_logs", "users", "revoked_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
