package model

// FavoriteDTO is the body accepted by the remove favorite endpoint
type FavoriteDTO struct {
	City  string `json:"city" validate:"required,ne=undefined"`
	State string `json:"state" validate:"required,ne=undefined"`
}

// MessageResponse is the acknowledgement returned by favorites mutations
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned when a request could not be handled
type ErrorResponse struct {
	Error string `json:"error"`
}
