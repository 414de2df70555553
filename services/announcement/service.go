package announcement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"paquetes-elclub/logger"
	announcementModel "paquetes-elclub/models/announcement"
	customerModel "paquetes-elclub/models/customer"
	"paquetes-elclub/services/phone"
	"paquetes-elclub/services/tracking"
	announcementTypes "paquetes-elclub/types/announcement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// insertRetries bounds how many times a constraint-violation race on insert
// triggers a fresh allocation attempt.
const insertRetries = 3

// Store is the persistence surface the service needs. The tracking allocator
// shares its CodeExists pre-check.
type Store interface {
	tracking.CodeStore
	FindByGuideNumber(guide string) (*announcementModel.Announcement, error)
	FindByTrackingCode(code string) (*announcementModel.Announcement, error)
	CreateWithCustomer(a *announcementModel.Announcement, c *customerModel.Customer) error
}

// Notifier dispatches customer notifications after a successful announcement.
// Dispatch is fire-and-forget: failures are logged, never propagated.
type Notifier interface {
	AnnouncementCreated(a *announcementModel.Announcement)
}

// Service handles announcement creation and lookups
type Service struct {
	store     Store
	allocator *tracking.Allocator
	phones    *phone.Validator
	notifier  Notifier
}

// NewService creates a new announcement service
func NewService(store Store, allocator *tracking.Allocator, phones *phone.Validator, notifier Notifier) *Service {
	return &Service{
		store:     store,
		allocator: allocator,
		phones:    phones,
		notifier:  notifier,
	}
}

// Create validates the submission, allocates a tracking code and persists the
// announcement. The unique index on tracking_code is the correctness backstop:
// if a concurrent request raced past the allocator's pre-check with the same
// candidate, the duplicate-key error on insert triggers one more bounded
// allocation round instead of surfacing to the customer.
func (s *Service) Create(req announcementTypes.AnnouncementCreateRequest) (*announcementModel.Announcement, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "request", Reason: err.Error()}
	}

	phoneResult := s.phones.Validate(req.Phone)
	if !phoneResult.IsValid {
		return nil, &ValidationError{Field: "phone_number", Reason: phoneResult.Reason}
	}

	guide := strings.TrimSpace(req.GuideNumber)

	// Pre-check for a friendly duplicate-guide error before burning a code
	if _, err := s.store.FindByGuideNumber(guide); err == nil {
		return nil, ErrDuplicateGuide
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing guide number: %w", err)
	}

	for attempt := 0; attempt < insertRetries; attempt++ {
		code, err := s.allocator.Allocate()
		if err != nil {
			return nil, err
		}

		record := &announcementModel.Announcement{
			Uuid:         uuid.New().String(),
			CustomerName: strings.TrimSpace(req.CustomerName),
			Phone:        phoneResult.E164,
			PhoneCountry: phoneResult.Country,
			GuideNumber:  guide,
			TrackingCode: code,
			IsActive:     true,
			AnnouncedAt:  time.Now(),
		}

		cust := &customerModel.Customer{
			Name:        record.CustomerName,
			Phone:       phoneResult.E164,
			Country:     phoneResult.Country,
			CallingCode: phoneResult.CallingCode,
		}
		if req.Email != "" {
			email := req.Email
			cust.Email = &email
		}

		err = s.store.CreateWithCustomer(record, cust)
		if err == nil {
			record.Customer = cust
			if s.notifier != nil {
				go s.notifier.AnnouncementCreated(record)
			}
			return record, nil
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Decide which unique index fired: a concurrent submission of the
			// same guide number, or a tracking-code race.
			if _, ferr := s.store.FindByGuideNumber(guide); ferr == nil {
				return nil, ErrDuplicateGuide
			}
			logger.Warning(fmt.Sprintf("Tracking code %s collided on insert, reallocating (attempt %d)", code, attempt+1))
			continue
		}

		return nil, fmt.Errorf("failed to save announcement: %w", err)
	}

	return nil, tracking.ErrAllocationExhausted
}

// LookupByTrackingCode resolves an announcement by its customer-facing code.
// Reads never mutate the record.
func (s *Service) LookupByTrackingCode(code string) (*announcementModel.Announcement, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrNotFound
	}
	return s.store.FindByTrackingCode(code)
}

// LookupByGuideNumber resolves an announcement by the carrier's guide number
func (s *Service) LookupByGuideNumber(guide string) (*announcementModel.Announcement, error) {
	guide = strings.TrimSpace(guide)
	if guide == "" {
		return nil, ErrNotFound
	}
	return s.store.FindByGuideNumber(guide)
}
