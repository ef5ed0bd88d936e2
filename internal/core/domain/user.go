package domain

// User models a registered catalog user. Email is the unique identifier.
// Preferences is a free-form mapping replaced wholesale on update.
type User struct {
	Name           string         `json:"name" bson:"name"`
	Email          string         `json:"email" bson:"email"`
	HashedPassword string         `json:"-" bson:"password"`
	Preferences    map[string]any `json:"preferences" bson:"preferences"`
}

// Session holds the active authentication token for a user. At most one
// session exists per user; logins upsert this document.
type Session struct {
	UserID string `json:"user_id" bson:"user_id"`
	JWT    string `json:"jwt" bson:"jwt"`
}
