package database

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/validation"
)

// EncodeSnapshot serializes a snapshot for storage
func EncodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("%w: encode snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return data, nil
}

// DecodeSnapshot validates a stored document against the snapshot schema and decodes it
func DecodeSnapshot(data []byte) (*domain.Snapshot, error) {
	if err := validation.ValidateSnapshot(data); err != nil {
		return nil, fmt.Errorf("%w: corrupt snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return &snap, nil
}
