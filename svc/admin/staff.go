package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// Staff form field names.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldRole      = "role"
)

// StaffForm creates a leader or treasurer.
type StaffForm struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Phone     string `json:"phone" form:"phone"`
	Email     string `json:"email" form:"email"`
	Role      string `json:"role" form:"role"`
	CampID    int    `json:"camp_id" form:"camp_id"`
}

// ValidateStaff checks a staff form.
func ValidateStaff(form StaffForm) error {
	return validator.Collect(
		validator.ValidateName(form.FirstName, "Prénom").For(FieldFirstName),
		validator.ValidateName(form.LastName, "Nom").For(FieldLastName),
		validator.ValidatePhoneField(FieldPhone, form.Phone),
		validator.First(validator.ValidEmail(FieldEmail, sanitizer.Email(form.Email))),
		validator.First(validator.InList(FieldRole, campapi.Role(form.Role), []campapi.Role{campapi.RoleLeader, campapi.RoleTreasurer})),
	)
}

// CreateStaff validates and creates a staff member.
func (s *Service) CreateStaff(ctx context.Context, form StaffForm) (campapi.StaffMember, error) {
	if err := ValidateStaff(form); err != nil {
		return campapi.StaffMember{}, err
	}
	in := campapi.StaffInput{
		FirstName: sanitizer.Title(sanitizer.Name(form.FirstName)),
		LastName:  sanitizer.Title(sanitizer.Name(form.LastName)),
		Phone:     validator.NormalizePhone(form.Phone),
		Email:     sanitizer.Email(form.Email),
		Role:      campapi.Role(form.Role),
		CampID:    form.CampID,
	}
	m, err := s.backend.CreateStaff(ctx, in)
	if err != nil {
		return campapi.StaffMember{}, mapBackendError(err)
	}
	s.logger.InfoContext(ctx, "staff member created",
		slog.Int("id", m.ID),
		slog.String("role", string(m.Role)),
	)
	return m, nil
}

// Staff lists the members of a role matching the query, one page at a time.
func (s *Service) Staff(ctx context.Context, role campapi.Role, q ListQuery) (List[campapi.StaffMember], error) {
	if !role.Valid() {
		return List[campapi.StaffMember]{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	members, err := s.backend.ListStaff(ctx, role)
	if err != nil {
		return List[campapi.StaffMember]{}, mapBackendError(err)
	}
	return paginate(members, q, s.pageSize, func(m campapi.StaffMember) []string {
		return []string{m.FirstName, m.LastName, m.Phone, m.Email}
	}), nil
}
