package levels

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
	"github.com/vovakirdan/star-pusher/internal/registry"
)

//go:embed packs/*.txt
var packFS embed.FS

// FilePackID is the registry ID used for a user-supplied level file.
const FilePackID = "file"

// builtin lists the embedded packs in display order.
var builtin = []struct {
	id    string
	title string
	file  string
}{
	{id: "starter", title: "Starter", file: "starter.txt"},
	{id: "courtyards", title: "Courtyards", file: "courtyards.txt"},
}

func init() {
	for _, p := range builtin {
		name := path.Join("packs", p.file)
		registry.Register(p.id, p.title, func() ([]*core.Level, error) {
			return LoadEmbedded(name)
		})
	}
}

// LoadEmbedded parses one of the embedded pack files.
func LoadEmbedded(name string) ([]*core.Level, error) {
	data, err := packFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded %s: %w", name, err)
	}
	lvls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvls, nil
}

// LoadFile reads and parses a level file from disk.
func LoadFile(filename string) ([]*core.Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", filename, err)
	}
	lvls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", filename, err)
	}
	return lvls, nil
}

// RegisterFile validates filename and registers it as the FilePackID pack,
// replacing any file pack registered before.
func RegisterFile(filename string) error {
	if _, err := LoadFile(filename); err != nil {
		return err
	}
	registry.Unregister(FilePackID)
	registry.Register(FilePackID, filepath.Base(filename), func() ([]*core.Level, error) {
		return LoadFile(filename)
	})
	return nil
}

// PackIDs returns the IDs of the embedded packs in display order.
func PackIDs() []string {
	ids := make([]string, len(builtin))
	for i, p := range builtin {
		ids[i] = p.id
	}
	return ids
}
