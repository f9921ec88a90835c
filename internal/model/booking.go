package model

import "time"

// BookingStatus is the review state of a booking request.
type BookingStatus string

const (
    StatusPending  BookingStatus = "pending"
    StatusApproved BookingStatus = "approved"
    StatusRejected BookingStatus = "rejected"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{StatusPending, StatusApproved, StatusRejected}

// ParseBookingStatus returns the status named by s and whether it is known.
func ParseBookingStatus(s string) (BookingStatus, bool) {
    for _, st := range BookingStatuses {
        if string(st) == s {
            return st, true
        }
    }
    return "", false
}

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
    return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether a booking in status s may move to next.
// Only pending bookings can be decided, and only to approved or rejected.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
    return s == StatusPending && next.Terminal()
}

// Departments is the fixed set of departments a booking may be filed under.
var Departments = []string{
    "Aitmad",
    "Atfal",
    "Tarbiyyat",
    "Maal",
    "Tabligh",
    "Tajneed",
    "Taleem",
    "Waqar-e-Amal",
    "Khidmat-e-Khalq",
    "Sanat-o-Tijarat",
    "Isha'at",
    "Sehat-e-Jismani",
    "Umur-e-Tulaba",
    "Tahrik-e-Jadid",
    "Tarbiyyat Nau Mubae'in",
    "Umumi",
    "MTA",
}

// IsDepartment reports whether name is one of Departments.
func IsDepartment(name string) bool {
    for _, d := range Departments {
        if d == name {
            return true
        }
    }
    return false
}

// Booking is a request to use the studio for a time slot.  Bookings are
// created by public submission, mutated only by a status decision and never
// deleted.
//
// Fields:
//  ID            – primary key identifier.
//  Reference     – human readable ISH-YYYYMMDD-NNNN code.
//  Name          – requester name.
//  Email         – requester email, lower-cased.
//  IDNumber      – requester membership/identity number.
//  Phone         – contact phone.
//  Department    – one of Departments.
//  Date          – requested day, YYYY-MM-DD.
//  Time          – requested start, HH:MM.
//  Duration      – hours, 1 to 5.
//  EquipmentList – requested equipment names, duplicates removed.
//  Notes         – optional free text.
//  Status        – review state.
//  CreatedAt     – submission timestamp (UTC).
type Booking struct {
    ID            uint64        `json:"id"`            // bookings.id
    Reference     string        `json:"reference"`     // bookings.reference
    Name          string        `json:"name"`          // bookings.name
    Email         string        `json:"email"`         // bookings.email
    IDNumber      string        `json:"idNumber"`      // bookings.id_number
    Phone         string        `json:"phone"`         // bookings.phone
    Department    string        `json:"department"`    // bookings.department
    Date          string        `json:"date"`          // bookings.date
    Time          string        `json:"time"`          // bookings.time
    Duration      int           `json:"duration"`      // bookings.duration
    EquipmentList []string      `json:"equipmentList"` // bookings.equipment_list (JSON array)
    Notes         *string       `json:"notes"`         // bookings.notes (nullable)
    Status        BookingStatus `json:"status"`        // bookings.status
    CreatedAt     time.Time     `json:"createdAt"`     // bookings.created_at
}

// BookingFilter narrows a booking listing.  Zero values disable a filter.
type BookingFilter struct {
    Status BookingStatus // exact status
    Search string        // case-insensitive substring of name, reference or department
    Date   string        // exact YYYY-MM-DD
}
