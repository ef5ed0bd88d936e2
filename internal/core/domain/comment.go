package domain

import "time"

// Comment is a user-authored comment on a movie. The ID is assigned by the
// application before insert; ownership is carried by the Email field and
// enforced in the repository filters, never after fetch.
type Comment struct {
	ID      string    `json:"id" bson:"_id"`
	Name    string    `json:"name" bson:"name"`
	Email   string    `json:"email" bson:"email"`
	MovieID string    `json:"movie_id" bson:"movie_id"`
	Text    string    `json:"text" bson:"text"`
	Date    time.Time `json:"date" bson:"date"`
}
