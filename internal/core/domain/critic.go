package domain

// Critic is a derived reporting row: a commenter email and how many comments
// they authored. Produced only by the most-active-commenters aggregation,
// never persisted. The email lands in ID because $sortByCount groups into _id.
type Critic struct {
	ID    string `json:"email" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}
