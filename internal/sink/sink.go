// Package sink persists generated fixture documents.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives named fixture documents. Names are file names such as "spot_trades.json".
type Sink interface {
	Write(name string, v any) error
}

// writeFileAtomic writes data next to path and renames it into place so readers
// never observe a truncated fixture.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", base, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", base, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", base, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", base, err)
	}
	return nil
}
