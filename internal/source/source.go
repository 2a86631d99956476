package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"place-distance/internal/models"
)

// DefaultFile is read when no path is configured.
const DefaultFile = "places.csv"

type Options struct {
	Path   string
	Sheet  string
	Naming Naming
	Random RandomSource
}

// Load produces the places for a run. With no argument the places file is
// read; with a single argument that many random places are generated.
func Load(ctx context.Context, opts Options, args []string) ([]models.Place, error) {
	switch len(args) {
	case 0:
		return LoadFile(ctx, opts.Path, opts.Sheet)
	case 1:
		n, err := ParseCount(args[0])
		if err != nil {
			return nil, err
		}
		rnd := opts.Random
		if rnd == nil {
			rnd = NewTimeSeededSource()
		}
		log.Debugf("generating %d random places", n)
		return Generate(n, rnd, opts.Naming)
	default:
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("expected at most 1 argument, got %d", len(args))}
	}
}

// LoadFile reads places from a .xlsx workbook or a delimited text file,
// depending on the extension of path.
func LoadFile(ctx context.Context, path, sheet string) ([]models.Place, error) {
	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("unable to stat %s: %w", path, err)
	}

	var (
		places []models.Place
		err    error
	)

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		log.Debugf("reading places from workbook %s", path)
		places, err = ReadXLSX(ctx, path, sheet)
	} else {
		log.Debugf("reading places from %s", path)
		places, err = readCSVFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if len(places) < MinPlaces {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("need at least %d places, got %d", MinPlaces, len(places))}
	}
	return places, nil
}

func readCSVFile(ctx context.Context, path string) ([]models.Place, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f, path)
}
