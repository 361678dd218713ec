package models

// User is the locally stored profile; there is no server-side account.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthState is a UI-gating session flag, not a security boundary.
type AuthState struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}
