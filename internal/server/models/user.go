// Package models holds the server-side domain records.
package models

// User is one account in the directory. ID is assigned by the store and never
// reused; Login is unique and case-sensitive. Hash and Salt never leave the
// server boundary; transports expose Profile instead.
type User struct {
	ID    int64
	Login string
	Hash  string
	Salt  string
}

// Profile is the public projection of a User.
type Profile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Profile drops the credential fields.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Login: u.Login}
}

// Profiles projects a list of users, preserving order.
func Profiles(users []*User) []Profile {
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}
