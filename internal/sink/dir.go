package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Dir writes each document as an indented JSON file inside a directory.
type Dir struct {
	mu     sync.Mutex
	path   string
	indent string
}

// NewDir creates the directory if needed and returns a sink rooted there.
func NewDir(path string, indent int) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if indent < 0 {
		indent = 0
	}
	return &Dir{path: path, indent: strings.Repeat(" ", indent)}, nil
}

// Path returns the directory the sink writes into.
func (d *Dir) Path() string { return d.path }

// Write encodes v and replaces <dir>/<name> with it.
func (d *Dir) Write(name string, v any) error {
	var (
		data []byte
		err  error
	)
	if d.indent == "" {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", d.indent)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	d.mu.Lock()
	defer d.mu.Unlock()
	return writeFileAtomic(filepath.Join(d.path, name), data)
}
