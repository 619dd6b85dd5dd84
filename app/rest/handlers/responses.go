package handlers

import "staff-auth/app/validation"

// Response envelope shared by every endpoint

// SuccessResponse is the success envelope: message and content are optional
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Content interface{} `json:"content,omitempty"`
}

// LoginResponse is the success envelope of the login endpoints
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ErrorResponse is the failure envelope for a single error
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse lists every collected field failure of one request
type ValidationErrorResponse struct {
	Success bool                    `json:"success"`
	Errors  []validation.FieldError `json:"errors"`
}
