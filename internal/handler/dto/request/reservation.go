package request

import (
	"time"

	"restaurant-booking/internal/usecase"
)

// CreateReservationRequest mirrors the booking form. Dates travel as
// "YYYY-MM-DD" and times as "HH:MM" labels.
type CreateReservationRequest struct {
	CustomerName        string  `json:"customerName" binding:"required"`
	CustomerEmail       string  `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string  `json:"customerPhone" binding:"required"`
	NumberOfGuests      int     `json:"numberOfGuests" binding:"required,min=1"`
	ReservationDate     string  `json:"reservationDate" binding:"required,datetime=2006-01-02"`
	ReservationTime     string  `json:"reservationTime" binding:"required,datetime=15:04"`
	ReservationEndTime  *string `json:"reservationEndTime,omitempty"`
	MenuType            string  `json:"menuType" binding:"required"`
	Theme               *string `json:"theme,omitempty"`
	TablePreference     *string `json:"tablePreference,omitempty"`
	SpecialRequests     *string `json:"specialRequests,omitempty"`
	DietaryRestrictions *string `json:"dietaryRestrictions,omitempty"`
}

func (r CreateReservationRequest) ToParams() (usecase.CreateReservationParams, error) {
	date, err := time.Parse(time.DateOnly, r.ReservationDate)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}
	return usecase.CreateReservationParams{
		CustomerName:        r.CustomerName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
		NumberOfGuests:      r.NumberOfGuests,
		Date:                date,
		StartTime:           r.ReservationTime,
		EndTime:             r.ReservationEndTime,
		MenuType:            r.MenuType,
		Theme:               r.Theme,
		TablePreference:     r.TablePreference,
		SpecialRequests:     r.SpecialRequests,
		DietaryRestrictions: r.DietaryRestrictions,
	}, nil
}

// UpdateReservationRequest is a partial update; absent fields stay
// untouched. Date and status are forwarded raw and parsed in the usecase.
type UpdateReservationRequest struct {
	NumberOfGuests      *int    `json:"numberOfGuests,omitempty" binding:"omitempty,min=1"`
	ReservationDate     *string `json:"reservationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ReservationTime     *string `json:"reservationTime,omitempty" binding:"omitempty,datetime=15:04"`
	ReservationEndTime  *string `json:"reservationEndTime,omitempty"`
	MenuType            *string `json:"menuType,omitempty"`
	Theme               *string `json:"theme,omitempty"`
	TablePreference     *string `json:"tablePreference,omitempty"`
	SpecialRequests     *string `json:"specialRequests,omitempty"`
	DietaryRestrictions *string `json:"dietaryRestrictions,omitempty"`
	Status              *string `json:"status,omitempty"`
}

func (r UpdateReservationRequest) ToParams() usecase.UpdateReservationParams {
	return usecase.UpdateReservationParams{
		NumberOfGuests:      r.NumberOfGuests,
		RawDate:             r.ReservationDate,
		StartTime:           r.ReservationTime,
		EndTime:             r.ReservationEndTime,
		MenuType:            r.MenuType,
		Theme:               r.Theme,
		TablePreference:     r.TablePreference,
		SpecialRequests:     r.SpecialRequests,
		DietaryRestrictions: r.DietaryRestrictions,
		RawStatus:           r.Status,
	}
}
