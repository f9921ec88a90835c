package model

// User represents an account allowed to sign in.  Users are seeded at
// startup and never modified through the API.  The password is stored as
// provided by the seed configuration.
//
// Fields:
//  ID       – primary key identifier.
//  Username – unique login name.
//  Password – plain password compared on login.
//  IsAdmin  – grants access to the admin endpoints.
type User struct {
    ID       uint64 `json:"id"`       // users.id
    Username string `json:"username"` // users.username
    Password string `json:"-"`        // users.password
    IsAdmin  bool   `json:"isAdmin"`  // users.is_admin
}
