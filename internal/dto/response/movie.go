package response

// InsertResponse answers a successful create.
type InsertResponse struct {
	Success    bool `json:"success"`
	InsertedID any  `json:"insertedId"`
}

type UpdateResponse struct {
	Success       bool  `json:"success"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewInsertResponse(id any) *InsertResponse {
	return &InsertResponse{Success: true, InsertedID: id}
}

func NewUpdateResponse(modified int64) *UpdateResponse {
	return &UpdateResponse{Success: true, ModifiedCount: modified}
}

func NewSuccessResponse(message string) *SuccessResponse {
	return &SuccessResponse{Success: true, Message: message}
}
