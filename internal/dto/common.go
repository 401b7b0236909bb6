package dto

// CreatedResponse acknowledges a create with the canonical identifier.
type CreatedResponse struct {
	UUID string `json:"uuid"`
}

// DeletedResponse reports how many rows a delete removed.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
