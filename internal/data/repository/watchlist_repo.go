package repository

import (
	"context"
	"fmt"

	"movie-master/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	Exists(ctx context.Context, userEmail, movieID string) (bool, error)
	Create(ctx context.Context, entry *entity.WatchlistEntry) (any, error)
	FindByUser(ctx context.Context, userEmail string) ([]entity.Document, error)
	// Delete removes the entry matched by id. A non-empty userEmail also
	// requires the entry to belong to that user.
	Delete(ctx context.Context, id, userEmail string) (bool, error)
}

type watchlistRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewWatchlistRepository(col *mongo.Collection, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		col: col,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) Exists(ctx context.Context, userEmail, movieID string) (bool, error) {
	filter := bson.M{
		entity.WatchlistFieldUserEmail: userEmail,
		entity.WatchlistFieldMovieID:   movieID,
	}

	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		r.log.Error("Failed to check watchlist entry",
			zap.Error(err),
			zap.String("user_email", userEmail),
			zap.String("movie_id", movieID),
		)
		return false, fmt.Errorf("failed to check watchlist entry: %w", err)
	}

	return count > 0, nil
}

func (r *watchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) (any, error) {
	result, err := r.col.InsertOne(ctx, bson.M(entry.ToDocument()))
	if err != nil {
		r.log.Error("Failed to create watchlist entry",
			zap.Error(err),
			zap.String("user_email", entry.UserEmail),
			zap.String("movie_id", entry.MovieID),
		)
		return nil, fmt.Errorf("failed to create watchlist entry: %w", err)
	}

	return result.InsertedID, nil
}

func (r *watchlistRepository) FindByUser(ctx context.Context, userEmail string) ([]entity.Document, error) {
	filter := bson.M{entity.WatchlistFieldUserEmail: userEmail}
	opts := options.Find().SetSort(bson.D{
		{Key: entity.WatchlistFieldAddedAt, Value: -1},
		{Key: entity.WatchlistFieldCreatedAt, Value: -1},
	})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find watchlist",
			zap.Error(err),
			zap.String("user_email", userEmail),
		)
		return nil, fmt.Errorf("failed to find watchlist: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		r.log.Error("Failed to decode watchlist", zap.Error(err))
		return nil, fmt.Errorf("failed to decode watchlist: %w", err)
	}

	entries := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.Document(row))
	}

	return entries, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id, userEmail string) (bool, error) {
	var owner bson.M
	if userEmail != "" {
		owner = bson.M{entity.WatchlistFieldUserEmail: userEmail}
	}

	deleted, err := Resolve(id, func(key LookupKey) (bool, error) {
		result, err := r.col.DeleteOne(ctx, idFilter(key, owner))
		if err != nil {
			return false, err
		}
		return result.DeletedCount > 0, nil
	})
	if err != nil {
		r.log.Error("Failed to delete watchlist entry",
			zap.Error(err),
			zap.String("entry_id", id),
			zap.String("user_email", userEmail),
		)
		return false, fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	return deleted, nil
}
