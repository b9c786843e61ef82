package request

import (
	"net/url"
	"strings"

	"movie-master/pkg/utils"
)

// MovieQuery holds the listing filters taken from the query string.
type MovieQuery struct {
	Search    string   `json:"search"`
	Genre     string   `json:"genre"`
	Genres    []string `json:"genres"`
	MinRating *float64 `json:"minRating"`
	MaxRating *float64 `json:"maxRating"`
	Language  string   `json:"language"`
	Country   string   `json:"country"`
	Sort      string   `json:"sort" validate:"omitempty,oneof=latest rating title"`
}

// ParseMovieQuery reads the listing parameters. Malformed numbers are reported
// per parameter instead of being silently ignored.
func ParseMovieQuery(values url.Values) (*MovieQuery, map[string]string) {
	q := &MovieQuery{
		Search:   strings.TrimSpace(values.Get("search")),
		Genre:    strings.TrimSpace(values.Get("genre")),
		Genres:   utils.SplitList(values.Get("genres")),
		Language: strings.TrimSpace(values.Get("language")),
		Country:  strings.TrimSpace(values.Get("country")),
		Sort:     strings.TrimSpace(values.Get("sort")),
	}

	errs := map[string]string{}

	minRating, err := utils.ParseFloatPtr(values.Get("minRating"))
	if err != nil {
		errs["minRating"] = "Must be a number"
	}
	q.MinRating = minRating

	maxRating, err := utils.ParseFloatPtr(values.Get("maxRating"))
	if err != nil {
		errs["maxRating"] = "Must be a number"
	}
	q.MaxRating = maxRating

	if len(errs) > 0 {
		return q, errs
	}
	return q, nil
}
