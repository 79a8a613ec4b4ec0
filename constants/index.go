package constants

const (
	MISSING_LOGIN_INPUT  = "Username and password are required"
	INVALID_CREDENTIALS  = "Invalid username or password"
	ERROR_INTERNAL_ERROR = "Internal server error"

	INVALID_EVENT_INPUT   = "Fill in all event fields"
	INVALID_BOOKING_INPUT = "Fill in all booking fields"
	INVALID_EVENT_ID      = "Invalid event id"
	INVALID_DATE_FORMAT   = "Invalid date format"

	EVENT_CREATED     = "Event created successfully!"
	BOOKING_CREATED   = "Seats booked successfully!"
	BOOKING_CONFIRMED = "Booking confirmed successfully!"
	BOOKING_CANCELLED = "Booking cancelled successfully!"

	CREATE_EVENT_FAILED    = "Event creation failed"
	BOOK_SEATS_FAILED      = "Booking failed"
	CONFIRM_BOOKING_FAILED = "Confirmation failed"
	CANCEL_BOOKING_FAILED  = "Cancellation failed"
)
