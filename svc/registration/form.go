package registration

import "github.com/dmitrymomot/campkit/pkg/location"

// Form field names, shared by the JSON payload, HTML inputs and validation
// errors.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldPhone         = "phone"
	FieldGuardianPhone = "guardian_phone"
	FieldBirthDate     = "birth_date"
	FieldGender        = "gender"
	FieldCountry       = "country"
	FieldCity          = "city"
	FieldDelegation    = "delegation"
)

// Genders accepted by the backend.
var Genders = []string{"M", "F"}

// Form is the participant sign-up form as submitted by the browser.
// Locations are chosen by name; ids are resolved on submission.
type Form struct {
	CampID        int    `json:"camp_id" form:"camp_id"`
	FirstName     string `json:"first_name" form:"first_name"`
	LastName      string `json:"last_name" form:"last_name"`
	Phone         string `json:"phone" form:"phone"`
	GuardianPhone string `json:"guardian_phone" form:"guardian_phone"`
	BirthDate     string `json:"birth_date" form:"birth_date"`
	Gender        string `json:"gender" form:"gender"`
	Country       string `json:"country" form:"country"`
	City          string `json:"city" form:"city"`
	Delegation    string `json:"delegation" form:"delegation"`
}

// Selection returns the location part of the form.
func (f Form) Selection() location.Selection {
	return location.Selection{Country: f.Country, City: f.City, Delegation: f.Delegation}
}
