package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	WatchlistFieldUserEmail = "userEmail"
	WatchlistFieldMovieID   = "movieId"
	WatchlistFieldMovie     = "movie"
	WatchlistFieldAddedAt   = "addedAt"
	// older entries carry createdAt instead of addedAt
	WatchlistFieldCreatedAt = "createdAt"
)

// WatchlistEntry is a saved movie reference. (UserEmail, MovieID) is unique
// only as far as the pre-insert check can guarantee.
type WatchlistEntry struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string        `bson:"userEmail" json:"userEmail"`
	MovieID   string        `bson:"movieId" json:"movieId"`
	Movie     Document      `bson:"movie,omitempty" json:"movie,omitempty"`
	AddedAt   time.Time     `bson:"addedAt" json:"addedAt"`
}

// ToDocument flattens the entry into its stored shape.
func (e *WatchlistEntry) ToDocument() Document {
	doc := Document{
		WatchlistFieldUserEmail: e.UserEmail,
		WatchlistFieldMovieID:   e.MovieID,
		WatchlistFieldAddedAt:   e.AddedAt,
	}
	if !e.ID.IsZero() {
		doc[FieldID] = e.ID
	}
	if e.Movie != nil {
		doc[WatchlistFieldMovie] = e.Movie
	}
	return doc
}
