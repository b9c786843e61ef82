package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func ptr(f float64) *float64 { return &f }

func TestMovieFilterQuery(t *testing.T) {
	for name, test := range map[string]struct {
		filter MovieFilter
		want   bson.M
	}{
		"Empty": {
			filter: MovieFilter{},
			want:   bson.M{},
		},
		"SearchIsEscapedAndCaseInsensitive": {
			filter: MovieFilter{Search: "Dune (2021)"},
			want: bson.M{
				"title": bson.M{"$regex": `Dune \(2021\)`, "$options": "i"},
			},
		},
		"SingleGenre": {
			filter: MovieFilter{Genre: "Sci-Fi"},
			want:   bson.M{"genre": "Sci-Fi"},
		},
		"GenresWinOverGenre": {
			filter: MovieFilter{Genre: "Drama", Genres: []string{"Sci-Fi", "Horror"}},
			want:   bson.M{"genre": bson.M{"$in": []string{"Sci-Fi", "Horror"}}},
		},
		"BothRatingBounds": {
			filter: MovieFilter{MinRating: ptr(6.5), MaxRating: ptr(8)},
			want:   bson.M{"rating": bson.M{"$gte": 6.5, "$lte": 8.0}},
		},
		"OnlyMinRatingDefaultsMax": {
			filter: MovieFilter{MinRating: ptr(7)},
			want:   bson.M{"rating": bson.M{"$gte": 7.0, "$lte": 10.0}},
		},
		"OnlyMaxRatingDefaultsMin": {
			filter: MovieFilter{MaxRating: ptr(3)},
			want:   bson.M{"rating": bson.M{"$gte": 0.0, "$lte": 3.0}},
		},
		"LanguageAndCountry": {
			filter: MovieFilter{Language: "English", Country: "USA"},
			want:   bson.M{"language": "English", "country": "USA"},
		},
		"Owner": {
			filter: MovieFilter{Owner: "a@b.com"},
			want: bson.M{"$or": bson.A{
				bson.M{"addedBy": "a@b.com"},
				bson.M{"userEmail": "a@b.com"},
			}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, test.filter.Query())
		})
	}
}

func TestMovieFilterSortDoc(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, MovieFilter{}.SortDoc())
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, MovieFilter{Sort: SortLatest}.SortDoc())
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, MovieFilter{Sort: SortRating}.SortDoc())
	assert.Equal(t, bson.D{{Key: "title", Value: 1}}, MovieFilter{Sort: SortTitle}.SortDoc())
}

func TestRatingBounds(t *testing.T) {
	_, _, ok := MovieFilter{}.RatingBounds()
	assert.False(t, ok)

	lo, hi, ok := MovieFilter{MinRating: ptr(2)}.RatingBounds()
	assert.True(t, ok)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, DefaultMaxRating, hi)
}
