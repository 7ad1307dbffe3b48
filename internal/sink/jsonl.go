package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
)

// JSONL writes slice documents one element per line, for tools that stream fixtures.
type JSONL struct {
	mu   sync.Mutex
	path string
}

// NewJSONL creates the directory if needed and returns a JSON-lines sink.
func NewJSONL(path string) (*JSONL, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &JSONL{path: path}, nil
}

// Path returns the directory the sink writes into.
func (j *JSONL) Path() string { return j.path }

// Write encodes each element of v on its own line into <dir>/<base>.jsonl.
// Non-slice documents are written as a single line.
func (j *JSONL) Write(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if err := enc.Encode(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("encode %s[%d]: %w", name, i, err)
			}
		}
	} else if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	return writeFileAtomic(filepath.Join(j.path, JSONLName(name)), buf.Bytes())
}

// JSONLName maps "spot_trades.json" to "spot_trades.jsonl".
func JSONLName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jsonl"
}
