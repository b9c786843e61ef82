package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-master/internal/data/entity"
	"movie-master/internal/data/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MovieRepository is an in-memory repository.MovieRepository. It applies the
// same identifier resolution and filter semantics as the Mongo one.
type MovieRepository struct {
	mu   sync.Mutex
	Docs []entity.Document

	// Err, when set, is returned by every call.
	Err error
	// Filters records every filter passed to FindAll.
	Filters []repository.MovieFilter
}

func NewMovieRepository(docs ...entity.Document) *MovieRepository {
	return &MovieRepository{Docs: docs}
}

func (r *MovieRepository) Create(_ context.Context, doc entity.Document) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	doc = doc.Clone()
	if !doc.HasUsableID() {
		doc[entity.FieldID] = bson.NewObjectID()
	}
	for _, existing := range r.Docs {
		if sameID(existing.ID(), doc.ID()) {
			return nil, fmt.Errorf("create %v: %w", doc.ID(), repository.ErrDuplicateID)
		}
	}

	r.Docs = append(r.Docs, doc)
	return doc.ID(), nil
}

func (r *MovieRepository) FindByID(_ context.Context, id string) (entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	idx := r.resolve(id)
	if idx < 0 {
		return nil, nil
	}
	return r.Docs[idx].Clone(), nil
}

func (r *MovieRepository) FindAll(_ context.Context, filter repository.MovieFilter) ([]entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Filters = append(r.Filters, filter)
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]entity.Document, 0, len(r.Docs))
	for _, doc := range r.Docs {
		if MatchMovie(filter, doc) {
			out = append(out, doc.Clone())
		}
	}

	sortMovies(out, filter.Sort)
	return out, nil
}

func (r *MovieRepository) Update(_ context.Context, id string, fields entity.Document) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, 0, r.Err
	}

	idx := r.resolve(id)
	if idx < 0 {
		return false, 0, nil
	}
	for k, v := range fields {
		r.Docs[idx][k] = v
	}
	return true, 1, nil
}

func (r *MovieRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}

	idx := r.resolve(id)
	if idx < 0 {
		return false, nil
	}
	r.Docs = append(r.Docs[:idx], r.Docs[idx+1:]...)
	return true, nil
}

// resolve returns the index of the document id refers to, or -1.
func (r *MovieRepository) resolve(id string) int {
	idx := -1
	_, _ = repository.Resolve(id, func(key repository.LookupKey) (bool, error) {
		for i, doc := range r.Docs {
			if sameID(doc.ID(), key.Value()) {
				idx = i
				return true, nil
			}
		}
		return false, nil
	})
	return idx
}

// MatchMovie evaluates filter against doc the way Query() does in Mongo.
func MatchMovie(filter repository.MovieFilter, doc entity.Document) bool {
	if filter.Search != "" {
		title, _ := doc[entity.MovieFieldTitle].(string)
		if !strings.Contains(strings.ToLower(title), strings.ToLower(filter.Search)) {
			return false
		}
	}

	genre, _ := doc[entity.MovieFieldGenre].(string)
	switch {
	case len(filter.Genres) > 0:
		found := false
		for _, g := range filter.Genres {
			if g == genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	case filter.Genre != "":
		if genre != filter.Genre {
			return false
		}
	}

	if lo, hi, ok := filter.RatingBounds(); ok {
		rating, isNum := toFloat(doc[entity.MovieFieldRating])
		if !isNum || rating < lo || rating > hi {
			return false
		}
	}

	if filter.Language != "" && doc[entity.MovieFieldLanguage] != filter.Language {
		return false
	}
	if filter.Country != "" && doc[entity.MovieFieldCountry] != filter.Country {
		return false
	}

	if filter.Owner != "" &&
		doc[entity.MovieFieldAddedBy] != filter.Owner &&
		doc[entity.MovieFieldUserEmail] != filter.Owner {
		return false
	}

	return true
}

func sortMovies(docs []entity.Document, order repository.SortOrder) {
	sort.SliceStable(docs, func(i, j int) bool {
		switch order {
		case repository.SortRating:
			a, _ := toFloat(docs[i][entity.MovieFieldRating])
			b, _ := toFloat(docs[j][entity.MovieFieldRating])
			return a > b
		case repository.SortTitle:
			a, _ := docs[i][entity.MovieFieldTitle].(string)
			b, _ := docs[j][entity.MovieFieldTitle].(string)
			return a < b
		default:
			a, _ := docs[i][entity.MovieFieldCreatedAt].(time.Time)
			b, _ := docs[j][entity.MovieFieldCreatedAt].(time.Time)
			return a.After(b)
		}
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// sameID compares primary keys without panicking on uncomparable values.
func sameID(a, b any) bool {
	switch x := a.(type) {
	case bson.ObjectID:
		y, ok := b.(bson.ObjectID)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	default:
		return false
	}
}
