package model

// PasswordCost is the bcrypt cost factor applied to stored passwords.
const PasswordCost = 10

// A User represents a database record.
// Password holds the bcrypt hash and is never rendered in API payloads.
type User struct {
	Base `msgpack:",inline" storm:"inline"`

	Username string `json:"username" msgpack:"username" storm:"unique"`
	Email    string `json:"email"    msgpack:"email"    storm:"unique"`
	Password string `json:"-"        msgpack:"password"`
}
