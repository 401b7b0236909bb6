package domain

// Session identifies the caller. It is issued by an external identity
// provider and read from the bearer token on every request.
type Session struct {
	EnterpriseID int64
	UserID       int64
}
