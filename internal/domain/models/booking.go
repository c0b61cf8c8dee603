package models

import "flyaway/internal/domain"

// ContactDetails is the booking contact. All fields are required.
type ContactDetails struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required,mobile10"`
	Email        string `json:"email" validate:"required,email"`
}

// PassengerRecord holds one traveler's identity details.
type PassengerRecord struct {
	Title       string `json:"title" validate:"required,oneof=Mr Mrs Ms"`
	FirstName   string `json:"firstName" validate:"required,alphaspace"`
	LastName    string `json:"lastName" validate:"required,alphaspace"`
	DOB         string `json:"dob" validate:"required,datetime=2006-01-02,notfuture"`
	Nationality string `json:"nationality" validate:"required,alphaspace"`
	PassportNo  string `json:"passportNo" validate:"required,passport"`
}

// AddOnSelection carries the four independent add-on toggles.
type AddOnSelection struct {
	FlightInsurance  bool `json:"flightInsurance"`
	MealOption       bool `json:"mealOption"`
	SeatSelection    bool `json:"seatSelection"`
	BaggageAllowance bool `json:"baggageAllowance"`
}

// Has reports whether add-on a is selected.
func (s AddOnSelection) Has(a domain.AddOn) bool {
	switch a {
	case domain.AddOnInsurance:
		return s.FlightInsurance
	case domain.AddOnMeal:
		return s.MealOption
	case domain.AddOnSeat:
		return s.SeatSelection
	case domain.AddOnBaggage:
		return s.BaggageAllowance
	}
	return false
}

// BaggageSelection is the chosen weight tier (kg) per leg; 0 means none chosen.
type BaggageSelection struct {
	Outward int `json:"outward"`
	Inward  int `json:"inward"`
}

// ReservationPayload is the aggregate handed to the submission collaborator.
type ReservationPayload struct {
	ContactDetails    ContactDetails     `json:"contactDetails"`
	PassengerDetails  []PassengerRecord  `json:"passengerDetails"`
	AddOns            AddOnSelection     `json:"addOns"`
	BaggageSelections []BaggageSelection `json:"baggageSelections"`
}
