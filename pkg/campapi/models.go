package campapi

import "time"

// Role is a staff role known by the backend.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLeader    Role = "leader"
	RoleTreasurer Role = "treasurer"
)

// Valid reports whether r is a role that can be managed from the admin area.
func (r Role) Valid() bool {
	return r == RoleLeader || r == RoleTreasurer
}

// Credentials are posted to the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the signed-in account.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Camp is the canonical camp shape, whatever keys the backend used.
type Camp struct {
	ID              int       `json:"id"`
	Type            string    `json:"type"`
	TrancheAge      string    `json:"trancheAge"`
	Price           int64     `json:"price"`
	FondationAmount int64     `json:"fondationAmount"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
}

// Registration is the validated, id-resolved participant payload.
type Registration struct {
	CampID        int    `json:"campId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	BirthDate     string `json:"birthDate"`
	Gender        string `json:"gender"`
	CountryID     int    `json:"countryId"`
	CityID        int    `json:"cityId"`
	DelegationID  int    `json:"delegationId"`
	GuardianPhone string `json:"guardianPhone,omitempty"`
}

// Participant is a registered camper identified by an opaque code.
type Participant struct {
	Code         string    `json:"code"`
	CampID       int       `json:"campId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	BirthDate    string    `json:"birthDate"`
	Gender       string    `json:"gender"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Delegation   string    `json:"delegation"`
	AmountPaid   int64     `json:"amountPaid"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// FullName returns "First Last".
func (p Participant) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ParticipantFilter narrows ListParticipants. Zero fields are ignored.
type ParticipantFilter struct {
	CampID int
}

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodMobileMoney  PaymentMethod = "mobile_money"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodMobileMoney, MethodBankTransfer}

// PaymentInput records a payment against a participant code.
type PaymentInput struct {
	Code      string        `json:"code"`
	Amount    int64         `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Reference string        `json:"reference,omitempty"`
}

// Payment is a recorded payment.
type Payment struct {
	ID         int           `json:"id"`
	Code       string        `json:"code"`
	Amount     int64         `json:"amount"`
	Method     PaymentMethod `json:"method"`
	Reference  string        `json:"reference,omitempty"`
	RecordedAt time.Time     `json:"recordedAt"`
	RecordedBy string        `json:"recordedBy,omitempty"`
}

// StaffInput creates a leader or treasurer account.
type StaffInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CampID    int    `json:"campId,omitempty"`
}

// StaffMember is a leader or treasurer.
type StaffMember struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CampID    int    `json:"campId,omitempty"`
}

// CampCount is the number of participants of one camp.
type CampCount struct {
	CampID       int    `json:"campId"`
	CampType     string `json:"campType"`
	Participants int    `json:"participants"`
}

// CountryCount is the number of participants from one country.
type CountryCount struct {
	Country      string `json:"country"`
	Participants int    `json:"participants"`
}

// Statistics are the aggregates computed by the backend.
type Statistics struct {
	TotalParticipants int            `json:"totalParticipants"`
	TotalCollected    int64          `json:"totalCollected"`
	ByCamp            []CampCount    `json:"byCamp"`
	ByCountry         []CountryCount `json:"byCountry"`
}
