// Package snapshot reads legacy forum snapshots and checks them for
// referential problems before they are adapted.
package snapshot

import (
	"fmt"
	"os"

	"forumcfg/internal/models"
	"forumcfg/internal/storage"
	"forumcfg/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

type Loader struct {
	compressor interfaces.CompressorInterface
}

func NewLoader(compressor interfaces.CompressorInterface) *Loader {
	return &Loader{compressor: compressor}
}

// Load reads a plain or zstd-compressed snapshot file.
func (l *Loader) Load(path string) (*models.ForumData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	data, err := l.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) Decode(raw []byte) (*models.ForumData, error) {
	if storage.IsCompressed(raw) {
		var err error
		raw, err = l.compressor.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	var data models.ForumData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &data, nil
}
