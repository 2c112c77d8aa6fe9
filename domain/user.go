package domain

import "time"

// User is keyed by its email. Username is unique as well and usable to log in.
type User struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	LastState    LastState `json:"last_state"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public view of a user.
type Profile struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (u User) Profile() Profile {
	return Profile{Email: u.Email, Username: u.Username}
}

// LastState is the navigation triple a user left off at.
// A nil field means "no position at that level".
type LastState struct {
	LastWorkspace *string `json:"lastWorkspace"`
	LastChannel   *string `json:"lastChannel"`
	LastMessage   *string `json:"lastMessage"`
}
