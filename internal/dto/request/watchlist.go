package request

type WatchlistRequest struct {
	UserEmail string `json:"userEmail" validate:"required"`
	MovieID   string `json:"movieId" validate:"required"`
}
