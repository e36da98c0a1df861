package database

import (
	"fmt"

	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

// compositeIndexes mirror the hot query paths: notification lookups by
// either party, chat pair reads, and owned-listing queries.
var compositeIndexes = []struct {
	model   interface{}
	name    string
	table   string
	columns string
}{
	{
		model:   &models.Application{},
		name:    "idx_applications_parties_ts",
		table:   "applications",
		columns: "business_email, applicant_email, timestamp",
	},
	{
		model:   &models.Message{},
		name:    "idx_messages_pair_ts",
		table:   "messages",
		columns: "sender_email, receiver_email, timestamp",
	},
	{
		model:   &models.Job{},
		name:    "idx_jobs_owner",
		table:   "jobs",
		columns: "owner_email",
	},
	{
		model:   &models.WorkerProfile{},
		name:    "idx_worker_profiles_email",
		table:   "worker_profiles",
		columns: "email",
	},
}

// EnsureIndexes creates the composite indexes after AutoMigrate. Existence
// is checked through the migrator rather than IF NOT EXISTS, which MySQL's
// CREATE INDEX grammar does not accept. Failures are logged, not fatal:
// the queries still work, just slower.
func EnsureIndexes(db *gorm.DB) error {
	for _, idx := range compositeIndexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating index %s: %v", idx.name, err)
			return err
		}
	}
	utils.InfoLogger.Println("Composite indexes ensured.")
	return nil
}
