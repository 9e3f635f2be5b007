package utils

import "github.com/google/uuid"

// GenerateID returns a random UUID string, used for upload object keys
func GenerateID() string {
	return uuid.New().String()
}
