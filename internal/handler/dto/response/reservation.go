package response

import (
	"time"

	"restaurant-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                  uuid.UUID `json:"id"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail"`
	CustomerPhone       string    `json:"customerPhone"`
	NumberOfGuests      int       `json:"numberOfGuests"`
	ReservationDate     string    `json:"reservationDate"`
	ReservationTime     string    `json:"reservationTime"`
	ReservationEndTime  *string   `json:"reservationEndTime,omitempty"`
	MenuType            string    `json:"menuType"`
	Theme               *string   `json:"theme,omitempty"`
	TablePreference     *string   `json:"tablePreference,omitempty"`
	SpecialRequests     *string   `json:"specialRequests,omitempty"`
	DietaryRestrictions *string   `json:"dietaryRestrictions,omitempty"`
	Status              string    `json:"status"`
	GoogleEventID       *string   `json:"googleEventId,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                  res.ID(),
		CustomerName:        res.Customer().Name(),
		CustomerEmail:       res.Customer().Email().Value(),
		CustomerPhone:       res.Customer().Phone(),
		NumberOfGuests:      res.NumberOfGuests(),
		ReservationDate:     res.Date().Format(time.DateOnly),
		ReservationTime:     res.StartTime(),
		ReservationEndTime:  res.EndTime(),
		MenuType:            res.MenuType(),
		Theme:               res.Theme(),
		TablePreference:     res.TablePreference(),
		SpecialRequests:     res.SpecialRequests(),
		DietaryRestrictions: res.DietaryRestrictions(),
		Status:              res.Status().String(),
		GoogleEventID:       res.GoogleEventID(),
		CreatedAt:           res.CreatedAt(),
		UpdatedAt:           res.UpdatedAt(),
	}
}
