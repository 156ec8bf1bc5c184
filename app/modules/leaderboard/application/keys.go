package leaderboardservice

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// adminKeyBytes is the entropy of a generated admin key.
const adminKeyBytes = 32

// generateKeys creates the id, public key and admin key of a new leaderboard.
func generateKeys() (*LeaderboardKeys, error) {
	adminKey, err := generateSecureToken(adminKeyBytes)
	if err != nil {
		return nil, err
	}
	return &LeaderboardKeys{
		LeaderboardID: uuid.NewString(),
		PublicKey:     uuid.NewString(),
		AdminKey:      adminKey,
	}, nil
}

func generateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashAdminKey returns the stored form of an admin key.
func hashAdminKey(adminKey string) string {
	hash := sha256.Sum256([]byte(adminKey))
	return hex.EncodeToString(hash[:])
}
