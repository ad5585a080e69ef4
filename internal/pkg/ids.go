package pkg

import "github.com/google/uuid"

// GenerateGameID - generates an ID for a new round.
func GenerateGameID() string {
	return uuid.NewString()
}
