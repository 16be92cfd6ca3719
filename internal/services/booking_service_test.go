package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"travelmap/internal/domain"
	"travelmap/internal/repositories"
)

func parisDest() domain.Destination {
	return domain.Destination{
		ID:          "1",
		Name:        "Paris, France",
		Coordinates: domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		Summary:     "Museums, cafés and the Seine.",
	}
}

func TestCreateBookingPersistsAtHead(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}

	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*Paris.*`, 0).SetVal("OK")
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*Tokyo.*`, 0).SetVal("OK")

	first, err := svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	tokyo := domain.Destination{ID: "2", Name: "Tokyo, Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}}
	second, err := svc.Create(context.Background(), tokyo, domain.Contact{Name: "Lin", Email: "lin@example.com"})
	assert.NoError(t, err)

	list := svc.List()
	if assert.Len(t, list, 2) {
		assert.Equal(t, second.ID, list[0].ID, "most recent booking must be at the head")
		assert.Equal(t, first.ID, list[1].ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsBlankContact(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}

	cases := []domain.Contact{
		{Name: "", Email: "ada@example.com"},
		{Name: "   ", Email: "ada@example.com"},
		{Name: "Ada", Email: ""},
		{Name: "Ada", Email: "\t "},
	}
	for _, contact := range cases {
		_, err := svc.Create(context.Background(), parisDest(), contact)
		assert.True(t, domain.IsValidation(err), "contact %+v should be rejected", contact)
	}

	assert.Empty(t, svc.List(), "rejected bookings must not touch the ledger")
	assert.NoError(t, mock.ExpectationsWereMet(), "no persist may happen for rejected bookings")
}

func TestCreateBookingRejectsDuplicateForSameEmail(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*Paris.*`, 0).SetVal("OK")

	_, err := svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ADA@Example.com"})
	assert.True(t, domain.IsConflict(err), "same destination and email must conflict, case-insensitively")

	assert.Len(t, svc.List(), 1)
	assert.NoError(t, mock.ExpectationsWereMet(), "the rejected duplicate must not persist")
}

func TestBookingSnapshotIsIndependentOfSource(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*`, 0).SetVal("OK")

	dest := parisDest()
	booking, err := svc.Create(context.Background(), dest, domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)

	// Later catalog changes must not alter the stored snapshot.
	dest.Name = "Renamed"
	dest.Coordinates = domain.Coordinates{}

	stored, err := svc.Get(booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Paris, France", stored.Destination.Name)
	assert.Equal(t, domain.Coordinates{Lat: 48.8566, Lon: 2.3522}, stored.Destination.Coordinates)
}

func TestCancelRequiresConfirmation(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*`, 0).SetVal("OK")

	booking, err := svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)

	err = svc.Cancel(context.Background(), booking.ID, false)
	assert.True(t, domain.IsValidation(err))
	assert.Len(t, svc.List(), 1, "unconfirmed cancel must not remove anything")
}

func TestCancelRemovesAndPersists(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}

	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*`, 0).SetVal("OK")
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*`, 0).SetVal("OK")

	booking, err := svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Cancel(context.Background(), booking.ID, true))
	assert.Empty(t, svc.List())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelUnknownIDIsNoOp(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	mock.Regexp().ExpectSet(repositories.BookingsKey, `.*`, 0).SetVal("OK")

	_, err := svc.Create(context.Background(), parisDest(), domain.Contact{Name: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Cancel(context.Background(), "no-such-id", true))
	assert.Len(t, svc.List(), 1, "ledger must be unchanged")
	assert.NoError(t, mock.ExpectationsWereMet(), "a no-op cancel must not persist")
}

func TestLoadRoundTripPreservesOrder(t *testing.T) {
	stored := []domain.Booking{
		{ID: "2-a", Destination: domain.Destination{Name: "Tokyo, Japan"}, Contact: domain.Contact{Name: "Lin", Email: "lin@example.com"}, CreatedAt: time.Unix(200, 0).UTC()},
		{ID: "1-b", Destination: domain.Destination{Name: "Paris, France"}, Contact: domain.Contact{Name: "Ada", Email: "ada@example.com"}, CreatedAt: time.Unix(100, 0).UTC()},
	}
	payload, err := json.Marshal(stored)
	assert.NoError(t, err)

	db, mock := redismock.NewClientMock()
	mock.ExpectGet(repositories.BookingsKey).SetVal(string(payload))

	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	svc.Load(context.Background())

	assert.Equal(t, stored, svc.List())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadToleratesMissingAndCorruptStorage(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet(repositories.BookingsKey).RedisNil()

	svc := &BookingService{Store: repositories.BookingStore{Client: db}}
	svc.Load(context.Background())
	assert.Empty(t, svc.List())

	db2, mock2 := redismock.NewClientMock()
	mock2.ExpectGet(repositories.BookingsKey).SetVal("{not json")

	svc2 := &BookingService{Store: repositories.BookingStore{Client: db2}}
	svc2.Load(context.Background())
	assert.Empty(t, svc2.List())
}
