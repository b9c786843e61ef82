package entity

// Conventional movie fields. None of them is enforced by the store.
const (
	MovieFieldTitle     = "title"
	MovieFieldGenre     = "genre"
	MovieFieldRating    = "rating"
	MovieFieldLanguage  = "language"
	MovieFieldCountry   = "country"
	MovieFieldAddedBy   = "addedBy"
	MovieFieldUserEmail = "userEmail"
	MovieFieldCreatedAt = "createdAt"
	MovieFieldUpdatedAt = "updatedAt"
)
