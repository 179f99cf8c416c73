// Package loader reads definition documents from disk into identifier trees.
package loader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/oidtool/oids/pkg/tree"
)

// ErrRootNotMapping is returned when a document does not decode to a table.
var ErrRootNotMapping = errors.New("definition root must be a table")

// Loader reads and parses definition documents.
type Loader struct {
	logger *slog.Logger
	parser *toml.TOML
}

// New creates a Loader. A nil logger discards all output.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		logger: logger,
		parser: toml.Parser(),
	}
}

// Load reads the definition document at path and parses it.
// The file is fully read and closed before parsing starts.
func (l *Loader) Load(path string) (*tree.Node, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	l.logger.Debug("read definition", slog.String("path", path), slog.Int("bytes", len(data)))

	root, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a definition document held in memory.
func (l *Loader) Parse(data []byte) (*tree.Node, error) {
	m, err := l.parser.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if m == nil {
		// Documents without any key-value pair still decode to a table.
		m = map[string]any{}
	}

	root, err := NewRoot(m)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("parsed definition", slog.Int("keys", root.Len()))
	return root, nil
}

// NewRoot converts a decoded document into a tree, rejecting documents whose
// root is not a table.
func NewRoot(doc any) (*tree.Node, error) {
	root := tree.FromValue(doc)
	if !root.IsMapping() {
		return nil, ErrRootNotMapping
	}
	return root, nil
}
