package mock

import (
	"context"
	"sync"

	"movie-master/internal/data/entity"
)

// MovieCache is an in-memory cache.MovieCache that counts its traffic.
type MovieCache struct {
	mu    sync.Mutex
	Items map[string]entity.Document

	Hits    int
	Misses  int
	Deletes int

	// GetErr and SetErr simulate an unreachable cache.
	GetErr error
	SetErr error
}

func NewMovieCache() *MovieCache {
	return &MovieCache{Items: map[string]entity.Document{}}
}

func (c *MovieCache) Get(_ context.Context, id string) (entity.Document, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.GetErr != nil {
		return nil, false, c.GetErr
	}

	doc, ok := c.Items[id]
	if !ok {
		c.Misses++
		return nil, false, nil
	}
	c.Hits++
	return doc.Clone(), true, nil
}

func (c *MovieCache) Set(_ context.Context, id string, movie entity.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.SetErr != nil {
		return c.SetErr
	}
	c.Items[id] = movie.Clone()
	return nil
}

func (c *MovieCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Deletes++
	delete(c.Items, id)
	return nil
}

func (c *MovieCache) Close() error { return nil }

// Pinger is a database.Pinger with a scripted answer.
type Pinger struct {
	Err error
}

func (p Pinger) Ping(context.Context) error { return p.Err }
