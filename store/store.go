package store

import (
	"github.com/harshithgangone/Accredian-Backend-task/models"

	"gorm.io/gorm"
)

// Store persists referrals. Records are append-only; nothing updates or
// deletes them once written.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create saves the referral with status PENDING. The database assigns the
// ID and creation timestamp, which gorm writes back into the struct.
func (s *Store) Create(referral *models.Referral) error {
	referral.Status = models.StatusPending
	return s.db.Create(referral).Error
}

// ListAll returns every referral, most recent first.
func (s *Store) ListAll() ([]models.Referral, error) {
	var referrals []models.Referral
	if err := s.db.Order("created_at DESC").Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}
