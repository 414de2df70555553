package announcement

import (
	"testing"
	"time"

	announcementModel "paquetes-elclub/models/announcement"
	customerModel "paquetes-elclub/models/customer"
	"paquetes-elclub/services/phone"
	"paquetes-elclub/services/tracking"
	announcementTypes "paquetes-elclub/types/announcement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CodeExists(code string) (bool, error) {
	args := m.Called(code)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) FindByGuideNumber(guide string) (*announcementModel.Announcement, error) {
	args := m.Called(guide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*announcementModel.Announcement), args.Error(1)
}

func (m *MockStore) FindByTrackingCode(code string) (*announcementModel.Announcement, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*announcementModel.Announcement), args.Error(1)
}

func (m *MockStore) CreateWithCustomer(a *announcementModel.Announcement, c *customerModel.Customer) error {
	args := m.Called(a, c)
	return args.Error(0)
}

// recordingNotifier captures fire-and-forget dispatches for assertions
type recordingNotifier struct {
	created chan *announcementModel.Announcement
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{created: make(chan *announcementModel.Announcement, 1)}
}

func (n *recordingNotifier) AnnouncementCreated(a *announcementModel.Announcement) {
	n.created <- a
}

func newTestService(t *testing.T, store Store, notifier Notifier) *Service {
	allocator, err := tracking.NewAllocator(tracking.DefaultConfig(), store)
	require.NoError(t, err)
	return NewService(store, allocator, phone.DefaultValidator(), notifier)
}

func validRequest() announcementTypes.AnnouncementCreateRequest {
	return announcementTypes.AnnouncementCreateRequest{
		CustomerName: "Juan Pérez",
		Phone:        "3002596319",
		GuideNumber:  "GUIDE001",
	}
}

func TestCreate_Success(t *testing.T) {
	store := new(MockStore)
	notifier := newRecordingNotifier()
	svc := newTestService(t, store, notifier)

	store.On("FindByGuideNumber", "GUIDE001").Return(nil, ErrNotFound)
	store.On("CodeExists", mock.AnythingOfType("string")).Return(false, nil)
	store.On("CreateWithCustomer", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	assert.Len(t, created.TrackingCode, 4)
	assert.Equal(t, "GUIDE001", created.GuideNumber)
	assert.Equal(t, "+573002596319", created.Phone)
	assert.Equal(t, "Colombia", created.PhoneCountry)
	assert.Equal(t, "Juan Pérez", created.CustomerName)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsProcessed)
	assert.NotEmpty(t, created.Uuid)

	select {
	case notified := <-notifier.created:
		assert.Equal(t, created.TrackingCode, notified.TrackingCode)
	case <-time.After(time.Second):
		t.Fatal("notifier was not invoked")
	}

	store.AssertExpectations(t)
}

func TestCreate_DuplicateGuide(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	existing := &announcementModel.Announcement{GuideNumber: "GUIDE001", TrackingCode: "AB2C"}
	store.On("FindByGuideNumber", "GUIDE001").Return(existing, nil)

	created, err := svc.Create(validRequest())
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrDuplicateGuide)

	store.AssertNotCalled(t, "CreateWithCustomer", mock.Anything, mock.Anything)
}

func TestCreate_InvalidPhone(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	req := validRequest()
	req.Phone = "601234"

	created, err := svc.Create(req)
	assert.Nil(t, created)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone_number", validationErr.Field)
	assert.Contains(t, validationErr.Reason, "too short")

	store.AssertNotCalled(t, "FindByGuideNumber", mock.Anything)
}

func TestCreate_MissingName(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	req := validRequest()
	req.CustomerName = "JP"

	created, err := svc.Create(req)
	assert.Nil(t, created)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "customer_name")
}

func TestCreate_RetriesOnTrackingCodeRace(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	store.On("FindByGuideNumber", "GUIDE001").Return(nil, ErrNotFound)
	store.On("CodeExists", mock.AnythingOfType("string")).Return(false, nil)
	// First insert loses the race on the tracking_code unique index, the
	// second succeeds with a fresh code.
	store.On("CreateWithCustomer", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	store.On("CreateWithCustomer", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := svc.Create(validRequest())
	require.NoError(t, err)
	assert.Len(t, created.TrackingCode, 4)

	store.AssertNumberOfCalls(t, "CreateWithCustomer", 2)
}

func TestCreate_DuplicateGuideDetectedAtInsert(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	// The guide does not exist at pre-check time but a concurrent request
	// inserts it before our transaction commits.
	store.On("FindByGuideNumber", "GUIDE001").Return(nil, ErrNotFound).Once()
	store.On("CodeExists", mock.AnythingOfType("string")).Return(false, nil)
	store.On("CreateWithCustomer", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	store.On("FindByGuideNumber", "GUIDE001").Return(&announcementModel.Announcement{GuideNumber: "GUIDE001"}, nil).Once()

	created, err := svc.Create(validRequest())
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrDuplicateGuide)

	store.AssertNumberOfCalls(t, "CreateWithCustomer", 1)
}

func TestCreate_AllocationExhausted(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	store.On("FindByGuideNumber", "GUIDE001").Return(nil, ErrNotFound)
	// Every candidate collides: allocation must fail after the configured
	// ceiling instead of looping forever or accepting a duplicate.
	store.On("CodeExists", mock.AnythingOfType("string")).Return(true, nil)

	created, err := svc.Create(validRequest())
	assert.Nil(t, created)
	assert.ErrorIs(t, err, tracking.ErrAllocationExhausted)

	store.AssertNumberOfCalls(t, "CodeExists", tracking.DefaultConfig().MaxAttempts)
	store.AssertNotCalled(t, "CreateWithCustomer", mock.Anything, mock.Anything)
}

func TestLookupByTrackingCode_NormalizesInput(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	record := &announcementModel.Announcement{TrackingCode: "AB2C"}
	store.On("FindByTrackingCode", "AB2C").Return(record, nil)

	found, err := svc.LookupByTrackingCode("  ab2c ")
	require.NoError(t, err)
	assert.Equal(t, "AB2C", found.TrackingCode)
}

func TestLookupByTrackingCode_IsIdempotent(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	record := &announcementModel.Announcement{TrackingCode: "AB2C", GuideNumber: "GUIDE001"}
	store.On("FindByTrackingCode", "AB2C").Return(record, nil)

	first, err := svc.LookupByTrackingCode("AB2C")
	require.NoError(t, err)
	second, err := svc.LookupByTrackingCode("AB2C")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	store.AssertNumberOfCalls(t, "FindByTrackingCode", 2)
}

func TestLookup_EmptyInput(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store, nil)

	_, err := svc.LookupByTrackingCode("")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.LookupByGuideNumber("  ")
	assert.ErrorIs(t, err, ErrNotFound)

	store.AssertNotCalled(t, "FindByTrackingCode", mock.Anything)
	store.AssertNotCalled(t, "FindByGuideNumber", mock.Anything)
}
