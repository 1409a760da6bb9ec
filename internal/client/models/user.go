package models

// User is a profile as returned by /tokenInfo and /users/{id}.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    float64   `json:"rating,omitempty"`
	Followers []UserRef `json:"followers,omitempty"`
	Following []UserRef `json:"following,omitempty"`
}

// UserRef is the short form embedded in follow edges and list owners.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// IsFollowing reports whether u has an outgoing follow edge to userID.
func (u *User) IsFollowing(userID string) bool {
	if u == nil {
		return false
	}
	for _, f := range u.Following {
		if f.ID == userID {
			return true
		}
	}
	return false
}

// LoginResult is the /login response body.
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
