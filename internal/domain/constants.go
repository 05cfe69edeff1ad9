package domain

// Submission field bounds, applied after trimming surrounding whitespace.
const (
	MinCustomerNameLength = 3
	MaxCustomerNameLength = 100
	MinPhoneLength        = 10
	MaxPhoneLength        = 20
	MinDeviceModelLength  = 2
	MaxDeviceModelLength  = 100
	MinDescriptionLength  = 10
	MaxDescriptionLength  = 500
)

// DeliveryEstimateDays is the offset added to the booking date to compute the
// estimated delivery date stored with the appointment.
const DeliveryEstimateDays = 3

// OptionLabel prefixes the selected extra option when it is folded into the
// persisted problem description.
const OptionLabel = "Opção selecionada"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
