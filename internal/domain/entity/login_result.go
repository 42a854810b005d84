package entity

// LoginResult is the transient outcome of a login attempt. It is shaped once
// per attempt and returned to the caller; it is never persisted. APIKey is
// set only when the caller asked for a token rotation and the credentials
// checked out.
type LoginResult struct {
	Username string `json:"username"`
	APIKey   string `json:"api_key,omitempty"`
	Success  bool   `json:"success"`
	UserID   uint   `json:"user_id"`
}
