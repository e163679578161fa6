package dto

// DateLayout is the wire format of all date fields (dates only, no time part).
const DateLayout = "2006-01-02"

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
