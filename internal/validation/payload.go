package validation

import (
	"strings"

	"github.com/iliyamo/studio-booking/internal/model"
)

// BookingRequest is the public booking submission.  Call Normalize before
// validating.
type BookingRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	IDNumber      string   `json:"idNumber" validate:"required"`
	Phone         string   `json:"phone" validate:"min=5"`
	Department    string   `json:"department" validate:"required,department"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string   `json:"time" validate:"required,len=5,datetime=15:04"`
	Duration      FlexInt  `json:"duration" validate:"min=1,max=5"`
	EquipmentList []string `json:"equipmentList" validate:"required"` // present, may be empty
	Notes         *string  `json:"notes"`
}

// Normalize trims every string, lower-cases the email, collapses the
// equipment list to unique non-blank names in first-seen order and drops
// blank notes.
func (r *BookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.IDNumber = strings.TrimSpace(r.IDNumber)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Department = strings.TrimSpace(r.Department)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	if r.EquipmentList != nil {
		r.EquipmentList = UniqueNames(r.EquipmentList)
	}
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

// Booking converts the request into a new booking.  Reference, status and
// timestamps are assigned by the service.
func (r *BookingRequest) Booking() *model.Booking {
	return &model.Booking{
		Name:          r.Name,
		Email:         r.Email,
		IDNumber:      r.IDNumber,
		Phone:         r.Phone,
		Department:    r.Department,
		Date:          r.Date,
		Time:          r.Time,
		Duration:      int(r.Duration),
		EquipmentList: append([]string{}, r.EquipmentList...),
		Notes:         r.Notes,
	}
}

// UniqueNames trims names, drops blanks and removes duplicates keeping the
// first occurrence.  The result is never nil.
func UniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// StatusRequest is the body of a booking decision.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// EquipmentRequest creates an equipment item.  Omitted counts default to 1.
type EquipmentRequest struct {
	Name      string `json:"name" validate:"required,notblank"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=0"`
	Available *int   `json:"available" validate:"omitempty,min=0"`
}

// Equipment builds the item to store.
func (r *EquipmentRequest) Equipment() *model.Equipment {
	e := &model.Equipment{Name: strings.TrimSpace(r.Name), Quantity: 1, Available: 1}
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.Available != nil {
		e.Available = *r.Available
	}
	return e
}

// EquipmentPatchRequest is a partial equipment update; only the fields
// present in the body change.
type EquipmentPatchRequest struct {
	Name      *string `json:"name" validate:"omitempty,notblank"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=0"`
	Available *int    `json:"available" validate:"omitempty,min=0"`
}

// Patch converts the request into a model.EquipmentPatch with a trimmed
// name.
func (r *EquipmentPatchRequest) Patch() model.EquipmentPatch {
	p := model.EquipmentPatch{Quantity: r.Quantity, Available: r.Available}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		p.Name = &n
	}
	return p
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
