package models

// User is the snapshot of the signed-in account returned by GET /auth/me.
type User struct {
	UserID   int64  `json:"id" msgpack:"id"`
	Phone    string `json:"phone,omitempty" msgpack:"phone"`
	Username string `json:"username,omitempty" msgpack:"username"`
	Nickname string `json:"nickname,omitempty" msgpack:"nickname"`
}

// DisplayName returns the nickname, falling back to the username.
func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Friend is one accepted contact of the signed-in user.
type Friend struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname,omitempty"`
	Username string `json:"username,omitempty"`
	IsOnline bool   `json:"is_online"`
	Status   string `json:"status"`
	Note     string `json:"note,omitempty"`
}
