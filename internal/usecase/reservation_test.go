//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/gcal"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase"
	usecasemock "restaurant-booking/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	repo         *usecasemock.MockReservationRepository
	settingsRepo *usecasemock.MockSettingsRepository
	availability *usecasemock.MockAvailabilityUseCase
	calendar     *usecasemock.MockCalendarService
	uc           usecase.ReservationUseCase
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockReservationRepository(s.mockCtrl)
	s.settingsRepo = usecasemock.NewMockSettingsRepository(s.mockCtrl)
	s.availability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.calendar = usecasemock.NewMockCalendarService(s.mockCtrl)
	s.uc = usecase.NewReservationUseCase(s.repo, s.settingsRepo, s.availability, s.calendar)
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func createParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		CustomerName:   "María García",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "+593991234567",
		NumberOfGuests: 4,
		Date:           testDate,
		StartTime:      "19:00",
		MenuType:       "degustacion",
	}
}

func storedReservation(t interface{ Helper() }, status reservation.Status, eventID *string) *reservation.Reservation {
	t.Helper()
	email, _ := reservation.NewEmail("maria@example.com")
	customer, _ := reservation.NewCustomer("María García", email, "+593991234567")
	return reservation.ReconstructReservation(
		uuid.New(), customer, 4, testDate, "19:00", nil,
		"degustacion", nil, nil, nil, nil,
		status, eventID, time.Now(), time.Now(),
	)
}

func (s *ReservationUseCaseTestSuite) TestCreate() {
	s.Run("full slot rejects without persisting", func() {
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).Return(false, nil)

		_, err := s.uc.Create(context.Background(), createParams())
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("availability error propagates", func() {
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).
			Return(false, errs.ErrConfigurationMissing)

		_, err := s.uc.Create(context.Background(), createParams())
		s.ErrorIs(err, errs.ErrConfigurationMissing)
	})

	s.Run("invalid customer data never reaches the store", func() {
		params := createParams()
		params.CustomerEmail = "not-an-email"
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).Return(true, nil)

		_, err := s.uc.Create(context.Background(), params)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("successful create confirms with the event reference", func() {
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).Return(true, nil)

		var created *reservation.Reservation
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(reservation.StatusPending, res.Status())
				created = res
				return nil
			})
		s.settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), 30).Return("evt_123", nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(reservation.StatusConfirmed, res.Status())
				s.Require().NotNil(res.GoogleEventID())
				s.Equal("evt_123", *res.GoogleEventID())
				return nil
			})
		s.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
				s.Equal(created.ID(), id)
				return created, nil
			})

		res, err := s.uc.Create(context.Background(), createParams())
		s.NoError(err)
		s.NotNil(res)
	})

	s.Run("calendar failure still confirms the reservation", func() {
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).Return(true, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), 30).
			Return("", errs.ErrExternalService)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(reservation.StatusConfirmed, res.Status())
				s.Nil(res.GoogleEventID())
				return nil
			})
		s.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(storedReservation(s.T(), reservation.StatusConfirmed, nil), nil)

		res, err := s.uc.Create(context.Background(), createParams())
		s.NoError(err)
		s.NotNil(res)
	})

	s.Run("unreadable settings fall back to a 30 minute slot", func() {
		s.availability.EXPECT().CheckAvailability(gomock.Any(), testDate, "19:00", 4).Return(true, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.settingsRepo.EXPECT().Get(gomock.Any()).
			Return(testSettings(), errors.New("connection refused"))
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), 30).Return("evt_9", nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(storedReservation(s.T(), reservation.StatusConfirmed, nil), nil)

		_, err := s.uc.Create(context.Background(), createParams())
		s.NoError(err)
	})
}

func (s *ReservationUseCaseTestSuite) TestGetByID() {
	s.Run("missing reservation maps to not found", func() {
		id := uuid.New()
		notFound := infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound)
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound)

		_, err := s.uc.GetByID(context.Background(), id)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("other repository errors are not masked", func() {
		id := uuid.New()
		dbErr := infra.WrapRepoErr("query failed", errors.New("connection refused"))
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, dbErr)

		_, err := s.uc.GetByID(context.Background(), id)
		s.Error(err)
		s.NotErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestUpdate() {
	s.Run("moving a mirrored reservation re-syncs the event", func() {
		eventID := "evt_123"
		stored := storedReservation(s.T(), reservation.StatusConfirmed, &eventID)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)
		s.settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)

		newDate := "2026-09-20"
		newStart := "20:00"
		s.calendar.EXPECT().UpdateEvent(gomock.Any(), "evt_123", gomock.Any(), 30).
			DoAndReturn(func(_ context.Context, _ string, changes gcal.EventChanges, _ int) error {
				s.Require().NotNil(changes.Date)
				s.Equal(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), *changes.Date)
				s.Require().NotNil(changes.StartTime)
				s.Equal("20:00", *changes.StartTime)
				return nil
			})

		res, err := s.uc.Update(context.Background(), stored.ID(), usecase.UpdateReservationParams{
			RawDate:   &newDate,
			StartTime: &newStart,
		})
		s.NoError(err)
		s.Equal("20:00", res.StartTime())
	})

	s.Run("non-time updates do not touch the calendar", func() {
		eventID := "evt_123"
		stored := storedReservation(s.T(), reservation.StatusConfirmed, &eventID)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		guests := 6
		res, err := s.uc.Update(context.Background(), stored.ID(), usecase.UpdateReservationParams{
			NumberOfGuests: &guests,
		})
		s.NoError(err)
		s.Equal(6, res.NumberOfGuests())
	})

	s.Run("calendar re-sync failure is swallowed", func() {
		eventID := "evt_stale"
		stored := storedReservation(s.T(), reservation.StatusConfirmed, &eventID)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)
		s.settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
		s.calendar.EXPECT().UpdateEvent(gomock.Any(), "evt_stale", gomock.Any(), 30).
			Return(errs.ErrExternalService)

		newStart := "21:00"
		_, err := s.uc.Update(context.Background(), stored.ID(), usecase.UpdateReservationParams{
			StartTime: &newStart,
		})
		s.NoError(err)
	})

	s.Run("malformed date is a validation error", func() {
		stored := storedReservation(s.T(), reservation.StatusConfirmed, nil)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		bad := "15/09/2026"
		_, err := s.uc.Update(context.Background(), stored.ID(), usecase.UpdateReservationParams{
			RawDate: &bad,
		})
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("unknown status is a validation error", func() {
		stored := storedReservation(s.T(), reservation.StatusConfirmed, nil)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		bad := "NO_SHOW"
		_, err := s.uc.Update(context.Background(), stored.ID(), usecase.UpdateReservationParams{
			RawStatus: &bad,
		})
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *ReservationUseCaseTestSuite) TestCancel() {
	s.Run("cancels and deletes the mirrored event", func() {
		eventID := "evt_123"
		stored := storedReservation(s.T(), reservation.StatusConfirmed, &eventID)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt_123").Return(nil)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		res, err := s.uc.Cancel(context.Background(), stored.ID())
		s.NoError(err)
		s.True(res.IsCancelled())
	})

	s.Run("stale event reference does not block cancellation", func() {
		eventID := "evt_gone"
		stored := storedReservation(s.T(), reservation.StatusConfirmed, &eventID)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt_gone").Return(errs.ErrExternalService)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		res, err := s.uc.Cancel(context.Background(), stored.ID())
		s.NoError(err)
		s.True(res.IsCancelled())
	})

	s.Run("reservation without an event skips the calendar", func() {
		stored := storedReservation(s.T(), reservation.StatusConfirmed, nil)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		_, err := s.uc.Cancel(context.Background(), stored.ID())
		s.NoError(err)
	})

	s.Run("double cancel is a validation error", func() {
		stored := storedReservation(s.T(), reservation.StatusCancelled, nil)
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		_, err := s.uc.Cancel(context.Background(), stored.ID())
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}
