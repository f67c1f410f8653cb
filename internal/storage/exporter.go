package storage

import (
	"fmt"

	"forumcfg/internal/providers"
	"forumcfg/internal/storage/interfaces"
	"forumcfg/internal/structures"
)

const (
	FormatJSON   = "json"
	FormatPebble = "pebble"
)

func NewExporter(conf *structures.Config, compressor interfaces.CompressorInterface, run *structures.RunInfo, logger providers.Logger) (interfaces.ExporterInterface, error) {
	switch conf.Output.Format {
	case FormatPebble:
		return NewPebbleExporter(conf.Output.Path, conf.Input.Path, run, logger), nil
	case FormatJSON, "":
		return NewFileManager(conf.Output.Path, conf.Output.Compress, compressor, logger), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", conf.Output.Format)
	}
}
