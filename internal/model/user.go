package model

// User is the authenticated backend user from the session check.
type User struct {
	Email     string `json:"email"`
	HasTokens bool   `json:"hasTokens"`
}
