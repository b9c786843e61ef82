package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-master/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// ErrDuplicateID reports an insert whose _id is already taken.
var ErrDuplicateID = errors.New("duplicate _id")

type MovieRepository interface {
	// Create stores doc as given and returns its _id. A taken _id yields
	// ErrDuplicateID.
	Create(ctx context.Context, doc entity.Document) (any, error)
	// FindByID returns nil, nil when no interpretation of id matches.
	FindByID(ctx context.Context, id string) (entity.Document, error)
	FindAll(ctx context.Context, filter MovieFilter) ([]entity.Document, error)
	// Update sets fields on the matched record, leaving the others untouched.
	Update(ctx context.Context, id string, fields entity.Document) (matched bool, modified int64, err error)
	Delete(ctx context.Context, id string) (bool, error)
}

type movieRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewMovieRepository(col *mongo.Collection, log *zap.Logger) MovieRepository {
	return &movieRepository{
		col: col,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, doc entity.Document) (any, error) {
	result, err := r.col.InsertOne(ctx, bson.M(doc))
	if mongo.IsDuplicateKeyError(err) {
		r.log.Warn("Movie id already taken", zap.Any("movie_id", doc.ID()))
		return nil, fmt.Errorf("failed to create movie: %w", ErrDuplicateID)
	}
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.Any("title", doc[entity.MovieFieldTitle]),
		)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return result.InsertedID, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	var movie bson.M

	found, err := Resolve(id, func(key LookupKey) (bool, error) {
		err := r.col.FindOne(ctx, idFilter(key, nil)).Decode(&movie)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return err == nil, err
	})
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if !found {
		return nil, nil
	}

	return entity.Document(movie), nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter) ([]entity.Document, error) {
	query := filter.Query()
	opts := options.Find().SetSort(filter.SortDoc())

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Any("filter", query),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		r.log.Error("Failed to decode movies", zap.Error(err))
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	movies := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, entity.Document(row))
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.String("sort", string(filter.Sort)),
	)

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, id string, fields entity.Document) (bool, int64, error) {
	var modified int64

	matched, err := Resolve(id, func(key LookupKey) (bool, error) {
		result, err := r.col.UpdateOne(ctx, idFilter(key, nil), bson.M{"$set": bson.M(fields)})
		if err != nil {
			return false, err
		}
		modified = result.ModifiedCount
		return result.MatchedCount > 0, nil
	})
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return false, 0, fmt.Errorf("failed to update movie: %w", err)
	}

	return matched, modified, nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := Resolve(id, func(key LookupKey) (bool, error) {
		result, err := r.col.DeleteOne(ctx, idFilter(key, nil))
		if err != nil {
			return false, err
		}
		return result.DeletedCount > 0, nil
	})
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}

	if deleted {
		r.log.Info("Movie deleted", zap.String("movie_id", id))
	}
	return deleted, nil
}
