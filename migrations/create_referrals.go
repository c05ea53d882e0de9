package migrations

import (
	"github.com/harshithgangone/Accredian-Backend-task/models"

	"gorm.io/gorm"
)

func MigrateReferrals(db *gorm.DB) error {
	return db.AutoMigrate(&models.Referral{})
}
