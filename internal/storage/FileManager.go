package storage

import (
	"fmt"
	"os"

	"forumcfg/internal/models"
	"forumcfg/internal/providers"
	"forumcfg/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

// FileManager writes the genesis config as a single JSON document,
// optionally zstd-compressed.
type FileManager struct {
	path       string
	compress   bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(path string, compress bool, compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		path:       path,
		compress:   compress,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Export(cfg *models.ForumConfig) error {
	return f.SaveToFile(f.path, cfg)
}

func (f *FileManager) SaveToFile(fileName string, cfg *models.ForumConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if f.compress {
		data, err = f.compressor.Compress(data)
		if err != nil {
			return err
		}
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		return err
	}
	f.logger.Infof(providers.TypeExport, "Wrote genesis config to %s (%d bytes, compressed=%t)", fileName, len(data), f.compress)
	return nil
}

func (f *FileManager) LoadFromFile(fileName string) (*models.ForumConfig, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if IsCompressed(data) {
		data, err = f.compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", fileName, err)
		}
	}

	var cfg models.ForumConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return &cfg, nil
}
