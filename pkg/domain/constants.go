package domain

// Session-scoped store keys. Values are plain strings.
const (
	KeyFirstName = "userFirstName"
	KeyLastName  = "userLName"
	KeyDOB       = "userDOB"
	KeyEmail     = "userEmail"
	KeyMobile    = "userMobile"
	KeyGender    = "userGender"
	KeyTravelers = "numTravelers"
	KeyDuration  = "tripDuration"
)

// Durable store keys. Selections are JSON-serialized records.
const (
	KeySelectedDestination = "selectedDestination"
	KeySelectedGuide       = "selectedGuide"

	// KeyNoGuide marks that the traveller chose to explore without a guide.
	KeyNoGuide = "noGuide"
)

// NotAvailable is the display placeholder for absent text fields.
const NotAvailable = "N/A"

// DOBLayout is the layout of the date of birth captured by the profile page.
const DOBLayout = "2006-01-02"

// MissingCostDataMessage is reported instead of a breakdown when a cost input is absent.
const MissingCostDataMessage = "Missing data for cost calculation."
