package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random v4 UUID string.
func GenerateRequestID() string {
	return uuid.New().String()
}

// IsRequestID reports whether a client supplied id is a well formed UUID.
func IsRequestID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
