package models

// User is a member of the planning community. Wallet and handle are optional
// profile fields; PasswordHash never leaves the server.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Initials     string `json:"initials" bson:"initials"`
	AvatarURL    string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Handle       string `json:"handle,omitempty" bson:"handle,omitempty"`
	Wallet       string `json:"wallet,omitempty" bson:"wallet,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash,omitempty"`
}
