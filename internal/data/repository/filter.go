package repository

import (
	"regexp"

	"movie-master/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortRating SortOrder = "rating"
	SortTitle  SortOrder = "title"
)

// Rating bounds used when a range query supplies only one side.
const (
	DefaultMinRating = 0.0
	DefaultMaxRating = 10.0
)

// MovieFilter is the store-independent form of a movie listing query.
// Zero values impose no constraint.
type MovieFilter struct {
	Search    string
	Genre     string
	Genres    []string
	MinRating *float64
	MaxRating *float64
	Language  string
	Country   string
	Owner     string
	Sort      SortOrder
}

// RatingBounds returns the inclusive rating range and whether one applies.
func (f MovieFilter) RatingBounds() (lo, hi float64, ok bool) {
	if f.MinRating == nil && f.MaxRating == nil {
		return 0, 0, false
	}

	lo, hi = DefaultMinRating, DefaultMaxRating
	if f.MinRating != nil {
		lo = *f.MinRating
	}
	if f.MaxRating != nil {
		hi = *f.MaxRating
	}
	return lo, hi, true
}

// Query builds the Mongo filter document.
func (f MovieFilter) Query() bson.M {
	filter := bson.M{}

	if f.Search != "" {
		filter[entity.MovieFieldTitle] = bson.M{
			"$regex":   regexp.QuoteMeta(f.Search),
			"$options": "i",
		}
	}

	switch {
	case len(f.Genres) > 0:
		filter[entity.MovieFieldGenre] = bson.M{"$in": f.Genres}
	case f.Genre != "":
		filter[entity.MovieFieldGenre] = f.Genre
	}

	if lo, hi, ok := f.RatingBounds(); ok {
		filter[entity.MovieFieldRating] = bson.M{"$gte": lo, "$lte": hi}
	}

	if f.Language != "" {
		filter[entity.MovieFieldLanguage] = f.Language
	}
	if f.Country != "" {
		filter[entity.MovieFieldCountry] = f.Country
	}

	if f.Owner != "" {
		filter["$or"] = bson.A{
			bson.M{entity.MovieFieldAddedBy: f.Owner},
			bson.M{entity.MovieFieldUserEmail: f.Owner},
		}
	}

	return filter
}

// SortDoc builds the Mongo sort document, defaulting to latest first.
func (f MovieFilter) SortDoc() bson.D {
	switch f.Sort {
	case SortRating:
		return bson.D{{Key: entity.MovieFieldRating, Value: -1}}
	case SortTitle:
		return bson.D{{Key: entity.MovieFieldTitle, Value: 1}}
	default:
		return bson.D{{Key: entity.MovieFieldCreatedAt, Value: -1}}
	}
}
