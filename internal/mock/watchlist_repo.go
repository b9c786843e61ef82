package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"movie-master/internal/data/entity"
	"movie-master/internal/data/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WatchlistRepository is an in-memory repository.WatchlistRepository.
type WatchlistRepository struct {
	mu      sync.Mutex
	Entries []entity.Document

	Err error
}

func NewWatchlistRepository(entries ...entity.Document) *WatchlistRepository {
	return &WatchlistRepository{Entries: entries}
}

func (r *WatchlistRepository) Exists(_ context.Context, userEmail, movieID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}
	return r.count(userEmail, movieID) > 0, nil
}

// Count returns how many entries exist for the pair.
func (r *WatchlistRepository) Count(userEmail, movieID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count(userEmail, movieID)
}

func (r *WatchlistRepository) count(userEmail, movieID string) int {
	n := 0
	for _, e := range r.Entries {
		if e[entity.WatchlistFieldUserEmail] == userEmail && e[entity.WatchlistFieldMovieID] == movieID {
			n++
		}
	}
	return n
}

func (r *WatchlistRepository) Create(_ context.Context, entry *entity.WatchlistEntry) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	stored := *entry
	if stored.ID.IsZero() {
		stored.ID = bson.NewObjectID()
	}
	r.Entries = append(r.Entries, stored.ToDocument())
	return stored.ID, nil
}

func (r *WatchlistRepository) FindByUser(_ context.Context, userEmail string) ([]entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]entity.Document, 0)
	for _, e := range r.Entries {
		if e[entity.WatchlistFieldUserEmail] == userEmail {
			out = append(out, e.Clone())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i][entity.WatchlistFieldAddedAt].(time.Time)
		b, _ := out[j][entity.WatchlistFieldAddedAt].(time.Time)
		return a.After(b)
	})
	return out, nil
}

func (r *WatchlistRepository) Delete(_ context.Context, id, userEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}

	idx := -1
	_, _ = repository.Resolve(id, func(key repository.LookupKey) (bool, error) {
		for i, e := range r.Entries {
			if !sameID(e.ID(), key.Value()) {
				continue
			}
			if userEmail != "" && e[entity.WatchlistFieldUserEmail] != userEmail {
				continue
			}
			idx = i
			return true, nil
		}
		return false, nil
	})
	if idx < 0 {
		return false, nil
	}

	r.Entries = append(r.Entries[:idx], r.Entries[idx+1:]...)
	return true, nil
}
