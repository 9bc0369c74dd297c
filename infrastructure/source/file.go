package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/domain/ports"
	"github.com/phpshell/protoreg/infrastructure/parser"
)

// fileSourceConfig holds configuration for the FileSource.
type fileSourceConfig struct {
	maxSize  int64 // Largest file accepted, in bytes
	optional bool  // A missing file yields an empty table
}

func defaultFileSourceConfig() fileSourceConfig {
	return fileSourceConfig{
		maxSize: 16 * 1024 * 1024,
	}
}

// FileSourceOption configures a FileSource instance.
type FileSourceOption func(*fileSourceConfig)

// WithMaxSize sets the largest table file accepted. Default is 16MB.
func WithMaxSize(n int64) FileSourceOption {
	return func(c *fileSourceConfig) {
		c.maxSize = n
	}
}

// WithOptional makes a missing file load as an empty table instead of failing.
func WithOptional(enabled bool) FileSourceOption {
	return func(c *fileSourceConfig) {
		c.optional = enabled
	}
}

// FileSource loads a side-loaded prototype table from disk. The encoding is
// chosen by extension: .json, .yaml/.yml, .toml or .hcl.
type FileSource struct {
	path   string
	config fileSourceConfig
}

// NewFileSource creates a new FileSource for path.
func NewFileSource(path string, opts ...FileSourceOption) ports.PrototypeSource {
	cfg := defaultFileSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileSource{path: path, config: cfg}
}

// Name implements PrototypeSource.
func (s *FileSource) Name() string {
	return s.path
}

// Load reads and decodes the file. JSON files are also checked against the
// table schema, exactly like the embedded asset.
func (s *FileSource) Load(ctx context.Context) (*entities.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, &errors.LoadError{Source: s.path, Err: err}
	}

	info, err := os.Stat(s.path)
	if os.IsNotExist(err) && s.config.optional {
		return &entities.Table{Format: "1.0.0"}, nil
	}
	if err != nil {
		return nil, &errors.LoadError{Source: s.path, Err: err}
	}
	if info.Size() > s.config.maxSize {
		return nil, &errors.LoadError{
			Source: s.path,
			Err:    fmt.Errorf("file size %d exceeds maximum %d bytes", info.Size(), s.config.maxSize),
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &errors.LoadError{Source: s.path, Err: err}
	}

	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		return loadJSON(s.path, data)
	}

	p, err := parser.ForPath(s.path)
	if err != nil {
		return nil, &errors.LoadError{Source: s.path, Err: err}
	}
	table, err := p.Parse(s.path, data)
	if err != nil {
		return nil, &errors.LoadError{Source: s.path, Err: err}
	}
	if err := checkTable(s.path, table); err != nil {
		return nil, err
	}
	return table, nil
}
