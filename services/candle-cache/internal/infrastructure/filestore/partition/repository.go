package partition

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// FileStore is the filesystem backed partition repository.
type FileStore struct {
	root   string
	codec  Codec
	logger logger.Interface
}

var _ Repository = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at root. Partitions are written with codec.
func NewFileStore(root string, codec Codec, logger logger.Interface) *FileStore {
	return &FileStore{
		root:   root,
		codec:  codec,
		logger: logger,
	}
}

func (s *FileStore) symbolDir(symbol string) string {
	return filepath.Join(s.root, symbol)
}

func (s *FileStore) path(key barv1.PartitionKey) string {
	return filepath.Join(s.symbolDir(key.Symbol), key.FileName(s.codec.Extension()))
}

// Read loads one partition. A missing file or symbol directory is a miss.
func (s *FileStore) Read(ctx context.Context, key barv1.PartitionKey) (barv1.List, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := s.path(key)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewErrorDetailsWithCause("Failed to open partition", string(errors.PartitionReadError), path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, false, errors.NewErrorDetailsWithCause("Failed to stat partition", string(errors.PartitionReadError), path, err)
	}

	bars, err := s.codec.Decode(f, info.Size())
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{Key: "path", Value: path})
		return nil, false, errors.NewErrorDetailsWithCause("Failed to decode partition", string(errors.PartitionReadError), path, err)
	}

	return bars, true, nil
}

// Write overwrites one partition per calendar month present in bars.
// Each file is written to a temporary name and renamed so readers never see a partial partition.
func (s *FileStore) Write(ctx context.Context, symbol, timeframe string, bars barv1.List) ([]barv1.PartitionKey, error) {
	if len(bars) == 0 {
		return nil, nil
	}

	dir := s.symbolDir(symbol)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to create partition directory", string(errors.PartitionWriteError), dir, err)
	}

	months, groups := bars.GroupByMonth()
	keys := make([]barv1.PartitionKey, 0, len(months))
	for _, m := range months {
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		key := barv1.PartitionKey{Symbol: symbol, Timeframe: timeframe, Year: m.Year, Month: m.Month}
		if err := s.writeFile(dir, s.path(key), groups[m]); err != nil {
			return keys, err
		}
		keys = append(keys, key)

		s.logger.InfoContext(ctx, "Partition written",
			logger.Field{Key: "partition", Value: key.String()},
			logger.Field{Key: "bars", Value: len(groups[m])},
		)
	}

	return keys, nil
}

func (s *FileStore) writeFile(dir, path string, bars barv1.List) error {
	tmp, err := os.CreateTemp(dir, ".partition-*")
	if err != nil {
		return errors.NewErrorDetailsWithCause("Failed to create temporary partition", string(errors.PartitionWriteError), path, err)
	}
	defer os.Remove(tmp.Name())

	if err := s.codec.Encode(tmp, bars); err != nil {
		tmp.Close()
		return errors.NewErrorDetailsWithCause("Failed to encode partition", string(errors.PartitionWriteError), path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewErrorDetailsWithCause("Failed to flush partition", string(errors.PartitionWriteError), path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.NewErrorDetailsWithCause("Failed to move partition into place", string(errors.PartitionWriteError), path, err)
	}
	return nil
}

// Symbols lists every symbol with a partition directory.
func (s *FileStore) Symbols(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to list partition root", string(errors.PartitionReadError), s.root, err)
	}

	var symbols []string
	for _, entry := range entries {
		if entry.IsDir() {
			symbols = append(symbols, entry.Name())
		}
	}
	return symbols, nil
}

func (s *FileStore) entries(symbol string) ([]fs.DirEntry, error) {
	dir := s.symbolDir(symbol)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &barv1.PartitionNotFoundError{Symbol: symbol}
	}
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to list partitions", string(errors.PartitionReadError), dir, err)
	}
	return entries, nil
}

// List decodes the partition file names of symbol, sorted by year, month and timeframe.
// Files that do not follow the naming scheme are ignored.
func (s *FileStore) List(ctx context.Context, symbol string) ([]barv1.PartitionKey, error) {
	entries, err := s.entries(symbol)
	if err != nil {
		return nil, err
	}

	keys := make([]barv1.PartitionKey, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if key, _, ok := barv1.ParsePartitionFileName(symbol, entry.Name()); ok {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		if keys[i].Month != keys[j].Month {
			return keys[i].Month < keys[j].Month
		}
		return keys[i].Timeframe < keys[j].Timeframe
	})
	return keys, nil
}

// Stats counts the files of symbol and their total size.
func (s *FileStore) Stats(ctx context.Context, symbol string) (Stats, error) {
	entries, err := s.entries(symbol)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Symbol: symbol}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping partition without file info",
				logger.Field{Key: "symbol", Value: symbol},
				logger.Field{Key: "file", Value: entry.Name()},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		stats.Files++
		stats.TotalBytes += info.Size()
	}
	return stats, nil
}

// Delete removes the partitions of symbol matching filter, whatever their format.
func (s *FileStore) Delete(ctx context.Context, symbol string, filter barv1.PartitionFilter) ([]barv1.PartitionKey, error) {
	entries, err := s.entries(symbol)
	if err != nil {
		return nil, err
	}

	var deleted []barv1.PartitionKey
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		key, _, ok := barv1.ParsePartitionFileName(symbol, entry.Name())
		if !ok || !filter.Matches(key) {
			continue
		}

		path := filepath.Join(s.symbolDir(symbol), entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, errors.NewErrorDetailsWithCause("Failed to delete partition", string(errors.PartitionDeleteError), path, err)
		}
		deleted = append(deleted, key)
	}

	s.logger.InfoContext(ctx, "Partitions deleted",
		logger.Field{Key: "symbol", Value: symbol},
		logger.Field{Key: "deleted", Value: len(deleted)},
	)
	return deleted, nil
}

// DeleteAll removes every symbol directory under the root. It returns how many symbols were removed.
func (s *FileStore) DeleteAll(ctx context.Context) (int, error) {
	symbols, err := s.Symbols(ctx)
	if err != nil {
		return 0, err
	}

	for i, symbol := range symbols {
		if err := os.RemoveAll(s.symbolDir(symbol)); err != nil {
			return i, errors.NewErrorDetailsWithCause("Failed to delete symbol partitions", string(errors.PartitionDeleteError), symbol, err)
		}
	}

	s.logger.InfoContext(ctx, "All partitions deleted", logger.Field{Key: "symbols", Value: len(symbols)})
	return len(symbols), nil
}
