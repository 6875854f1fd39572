package models

import "time"

// ============================================================================
// API RESPONSE ENVELOPE
// ============================================================================

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

// VehicleSummaryResponse is the vehicle & policy details view with the
// freshly evaluated status and renewal figures.
type VehicleSummaryResponse struct {
	Vehicle       Vehicle      `json:"vehicle"`
	Status        StatusResult `json:"status"`
	StatusLabel   string       `json:"status_label"`
	BasePremium   float64      `json:"base_premium"`
	ReferenceDate string       `json:"reference_date"`
}
