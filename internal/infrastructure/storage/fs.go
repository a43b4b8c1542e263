package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/annehoy/internal/domain"
)

// FS reads solution files from a directory. It never writes.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var extensions = []string{".yaml", ".yml", ".json"}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load finds name in the directory, trying it as given and then with each
// supported extension.
func (s *FS) Load(ctx context.Context, name string) (*domain.Solution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty solution name", domain.ErrInvalidInput)
	}
	candidates := []string{}
	if supported(name) {
		candidates = append(candidates, filepath.Join(s.dir, name))
	}
	for _, ext := range extensions {
		candidates = append(candidates, filepath.Join(s.dir, name+ext))
	}
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr == nil {
			return s.LoadFile(ctx, path)
		}
	}
	return nil, fmt.Errorf("solution %q in %s: %w", name, s.dir, os.ErrNotExist)
}

// LoadFile decodes a single solution file, picking the format from its extension.
func (s *FS) LoadFile(ctx context.Context, path string) (*domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out domain.Solution
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported solution format", domain.ErrInvalidInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// Name defaults to the file stem.
	if out.Name == "" {
		out.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &out, nil
}

// List returns every decodable solution file in the directory. A missing
// directory yields an empty list.
func (s *FS) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.SolutionMeta
	for _, e := range ents {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		sol, err := s.LoadFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		out = append(out, domain.SolutionMeta{
			Name:   sol.Name,
			Path:   path,
			Stools: sol.Stools,
			Discs:  sol.Discs,
			Moves:  len(sol.Moves),
		})
	}
	return out, nil
}
