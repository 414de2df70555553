package announcement

import (
	"errors"
	"fmt"

	announcementModel "paquetes-elclub/models/announcement"
	customerModel "paquetes-elclub/models/customer"

	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store implementation
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new announcement store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CodeExists checks the whole table, processed and cancelled announcements
// included, so a code is never handed out twice in the system's lifetime.
func (s *GormStore) CodeExists(code string) (bool, error) {
	var count int64
	err := s.db.Model(&announcementModel.Announcement{}).
		Where("tracking_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByGuideNumber resolves an announcement by the carrier guide number
func (s *GormStore) FindByGuideNumber(guide string) (*announcementModel.Announcement, error) {
	var record announcementModel.Announcement
	err := s.db.Preload("Customer").Where("guide_number = ?", guide).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByTrackingCode resolves an announcement by its tracking code
func (s *GormStore) FindByTrackingCode(code string) (*announcementModel.Announcement, error) {
	var record announcementModel.Announcement
	err := s.db.Preload("Customer").Where("tracking_code = ?", code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// CreateWithCustomer upserts the customer by normalized phone and inserts the
// announcement in one transaction. A duplicate-key error from either unique
// index (guide_number, tracking_code) rolls back the whole unit of work.
func (s *GormStore) CreateWithCustomer(a *announcementModel.Announcement, c *customerModel.Customer) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing customerModel.Customer
		err := tx.Where("phone = ?", c.Phone).First(&existing).Error
		switch {
		case err == nil:
			existing.Name = c.Name
			if c.Email != nil {
				existing.Email = c.Email
			}
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}
			a.CustomerID = &existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(c).Error; err != nil {
				return err
			}
			a.CustomerID = &c.ID
		default:
			return fmt.Errorf("failed to look up customer: %w", err)
		}

		return tx.Create(a).Error
	})
}
