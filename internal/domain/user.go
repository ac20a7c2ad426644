package domain

// User is the authenticated caller, taken from a verified Supabase access
// token.
type User struct {
	ID    string
	Email *string
	Role  string
}
