package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
)

func TestEnsureIndexesCreatesAndIsIdempotent(t *testing.T) {
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Application{},
		&models.Message{},
		&models.Job{},
		&models.WorkerProfile{},
	))

	assert.NoError(t, EnsureIndexes(db))

	assert.True(t, db.Migrator().HasIndex(&models.Application{}, "idx_applications_parties_ts"))
	assert.True(t, db.Migrator().HasIndex(&models.Message{}, "idx_messages_pair_ts"))
	assert.True(t, db.Migrator().HasIndex(&models.Job{}, "idx_jobs_owner"))
	assert.True(t, db.Migrator().HasIndex(&models.WorkerProfile{}, "idx_worker_profiles_email"))

	// A second run must skip the existing indexes instead of erroring out
	// with duplicate-name failures.
	assert.NoError(t, EnsureIndexes(db))
}
