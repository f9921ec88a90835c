package utils // package utils provides helpers for booking references and session tokens

import (
    "fmt"          // fmt formats the reference string
    "math/rand"    // non-cryptographic randomness is enough for a display code
    "regexp"       // regexp validates reference strings
    "time"         // time supplies the date part
)

// ReferencePattern matches a booking reference such as ISH-20240308-4821.
var ReferencePattern = regexp.MustCompile(`^ISH-\d{8}-\d{4}$`)

// FormatReference builds a reference from the UTC date of t and a four digit
// suffix n.
func FormatReference(t time.Time, n int) string {
    return fmt.Sprintf("ISH-%s-%04d", t.UTC().Format("20060102"), n)
}

// NewReference returns a reference for t with a random suffix in 1000..9999.
// Two bookings on the same day can draw the same suffix; storage rejects
// the duplicate and the caller draws again.
func NewReference(t time.Time) string {
    return FormatReference(t, 1000+rand.Intn(9000))
}
