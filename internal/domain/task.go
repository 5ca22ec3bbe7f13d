package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// entityIDBytes is the number of random bytes in a task or category
// id. Hex encoding doubles it to 32 characters.
const entityIDBytes = 16

// TaskID identifies a task. Uniqueness is scoped to the owning user:
// two users may coincidentally hold the same id value.
type TaskID string

// CategoryID identifies a task category, scoped to the owning user
// like TaskID.
type CategoryID string

// NewEntityID generates a random 32-character hex identifier for tasks
// and categories.
func NewEntityID() (string, error) {
	b := make([]byte, entityIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate entity id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// TaskDescription is a task as stored: owned by one user, assigned to
// one of that user's categories. The store does not verify that
// CategoryID references an existing category; board assembly does.
type TaskDescription struct {
	ID          TaskID     `json:"task_id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	CategoryID  CategoryID `json:"category_id"`
}

// TaskCategoryDescription is a category as stored, owned by exactly
// one user.
type TaskCategoryDescription struct {
	ID    CategoryID `json:"category_id"`
	Label string     `json:"label"`
}
