package handler

// Plain-text response bodies.
const (
	MessageBody             = "Hello, World!"
	NotFoundBody            = "Not Found"
	InvalidDateFormatBody   = "Invalid date format"
	InternalServerErrorBody = "Internal Server Error"
)

// DateTimeQueryParam is the optional query parameter of /api/berlin-time.
const DateTimeQueryParam = "datetime"
