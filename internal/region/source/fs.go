package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

const (
	provincesFile = "provinces.json"
	regenciesDir  = "regencies"
	districtsDir  = "districts"
)

// FSSource reads the split region layout from a file system:
//
//	provinces.json
//	regencies/<province>.json
//	districts/<province>/<regency>.json
//
// Each file holds a JSON array of entries. Segments are read on demand.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource wraps fsys. Use os.DirFS for a directory on disk or the
// embedded data.FS for the bundled dataset.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Provinces(ctx context.Context) ([]models.Entry, error) {
	return s.read(ctx, provincesFile)
}

func (s *FSSource) Regencies(ctx context.Context, provinceCode string) ([]models.Entry, error) {
	if !validCode(provinceCode) {
		return nil, fmt.Errorf("province %q: %w", provinceCode, sentinel.ErrNotFound)
	}
	return s.read(ctx, path.Join(regenciesDir, provinceCode+".json"))
}

func (s *FSSource) Districts(ctx context.Context, provinceCode, regencyCode string) ([]models.Entry, error) {
	if !validCode(provinceCode) || !validCode(regencyCode) {
		return nil, fmt.Errorf("regency %q.%q: %w", provinceCode, regencyCode, sentinel.ErrNotFound)
	}
	return s.read(ctx, path.Join(districtsDir, provinceCode, regencyCode+".json"))
}

func (s *FSSource) read(ctx context.Context, name string) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w: %w", name, sentinel.ErrUnavailable, err)
	}
	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", name, sentinel.ErrUnavailable, err)
	}
	return entries, nil
}

// validCode keeps caller-supplied codes from escaping the layout as paths.
func validCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
