package constant

// IntentExtractionPromptV1 asks the generation model for strict JSON.
// Fields the user did not supply come back as the literal "missing",
// which the parser normalizes to empty strings.
const IntentExtractionPromptV1 = `Extract appointment booking details from the following user message. If any information is missing, indicate "missing".
Return the response in JSON format with these fields:
{
  "intent": "book_appointment" or "not_appointment",
  "service": "the requested service",
  "date": "YYYY-MM-DD format if provided",
  "time": "HH:MM format if provided",
  "name": "customer name if provided",
  "phone": "phone number if provided",
  "email": "email if provided"
}

Business Services Available: %s

User message: %s`

const (
	IntentBookAppointment = "book_appointment"
	IntentNotAppointment  = "not_appointment"

	MissingSentinel = "missing"
)
