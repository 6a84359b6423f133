package file

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/storage"
)

const backendName = "file"

// Storage keeps the result log in a flat text file, one "username#&#guesses" line per game
type Storage struct {
	path string
}

// New creates a file storage for path. The file is created on first append.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.ResultLog = (*Storage)(nil)

// AppendResult opens the file in append mode for each write.
// Parent directories are not created.
func (s *Storage) AppendResult(ctx context.Context, result model.GameResult) error {
	line, err := scorelog.EncodeLine(result)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return model.NewStorageError(backendName, "open", err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return model.NewStorageError(backendName, "write", err)
	}
	return model.NewStorageError(backendName, "close", f.Close())
}

// LoadResults treats a missing file as an empty log
func (s *Storage) LoadResults(ctx context.Context) ([]model.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.GameResult{}, nil
		}
		return nil, model.NewStorageError(backendName, "open", err)
	}
	defer f.Close()

	results, err := scorelog.ReadAll(f)
	if err != nil {
		if errors.Is(err, model.ErrMalformedRecord) {
			return nil, err
		}
		return nil, model.NewStorageError(backendName, "read", err)
	}
	return results, nil
}

func (s *Storage) Close() error {
	return nil
}
