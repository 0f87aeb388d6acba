// FileCache provides read access to source files through memory-mapped
// regions held in a bounded LRU.
//
// Every file the pipeline inspects (component implementations, index files,
// the stylesheet) is read through one FileCache owned by the run. Nothing is
// shared between runs: construct a cache per run and Close it when done.
//
// Empty files cannot be mapped and are represented with nil Data. If mmap
// fails the file is read with os.ReadFile instead.
package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
	lru "github.com/hashicorp/golang-lru/v2"
)

// FileCache reads files through a bounded cache of mappings.
//
// Thread-safe: Multiple goroutines can call methods concurrently.
type FileCache interface {
	// Read returns a copy of the file contents. The copy stays valid after
	// the mapping is evicted or the cache is closed.
	Read(filePath string) ([]byte, error)

	// ReadString is Read converted to a string.
	ReadString(filePath string) (string, error)

	// Len returns number of currently cached files.
	Len() int

	// Stats returns current cache metrics.
	Stats() FileCacheStats

	// Close unmaps all files and releases resources.
	Close() error
}

// FileCacheConfig controls FileCache behavior.
type FileCacheConfig struct {
	// MaxFiles bounds the number of mappings kept open. When full, the least
	// recently used file is unmapped. Must be > 0.
	MaxFiles int

	// Logger for warnings. If nil, uses slog.Default().
	Logger *slog.Logger
}

// DefaultFileCacheConfig returns defaults sized for a component library
// (a few files per component, tens of components).
func DefaultFileCacheConfig() *FileCacheConfig {
	return &FileCacheConfig{
		MaxFiles: 256,
	}
}

// MappedFile is one cached file.
type MappedFile struct {
	Path string
	// Data is the mapped region, or a heap copy when mmap fell back.
	// Nil for empty files.
	Data mmap.MMap
	// File is kept open for the lifetime of the mapping. Nil for fallbacks.
	File   *os.File
	Size   int64
	mapped bool
}

func (mf *MappedFile) release() error {
	var err error
	if mf.mapped && mf.Data != nil {
		err = mf.Data.Unmap()
	}
	if mf.File != nil {
		if cerr := mf.File.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// FileCacheStats tracks cache performance metrics.
type FileCacheStats struct {
	FilesLoaded  int64
	FilesCached  int
	CacheHits    int64
	CacheMisses  int64
	MmapFailures int64
	Evictions    int64
}

// NewFileCache creates a new FileCache with the given config.
//
// If config is nil, uses DefaultFileCacheConfig().
func NewFileCache(config *FileCacheConfig) (FileCache, error) {
	if config == nil {
		config = DefaultFileCacheConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fc := &fileCacheImpl{logger: logger}

	cache, err := lru.NewWithEvict(config.MaxFiles, func(path string, mf *MappedFile) {
		if err := mf.release(); err != nil {
			fc.logger.Warn("failed to release file", "path", path, "error", err)
		}
		fc.statsMu.Lock()
		fc.stats.Evictions++
		fc.statsMu.Unlock()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create file cache: %w", err)
	}
	fc.cache = cache

	return fc, nil
}

type fileCacheImpl struct {
	logger *slog.Logger

	// mu serializes loads so a file is mapped at most once.
	mu    sync.Mutex
	cache *lru.Cache[string, *MappedFile]

	stats   FileCacheStats
	statsMu sync.Mutex
}

func (fc *fileCacheImpl) Read(filePath string) ([]byte, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	mf, ok := fc.cache.Get(filePath)
	if ok {
		fc.record(func(s *FileCacheStats) { s.CacheHits++ })
	} else {
		fc.record(func(s *FileCacheStats) { s.CacheMisses++ })

		var err error
		mf, err = fc.loadFile(filePath)
		if err != nil {
			return nil, err
		}
		fc.cache.Add(filePath, mf)
		fc.record(func(s *FileCacheStats) { s.FilesLoaded++ })
	}

	// Copy while holding mu: eviction may unmap the region afterwards.
	out := make([]byte, len(mf.Data))
	copy(out, mf.Data)
	return out, nil
}

func (fc *fileCacheImpl) ReadString(filePath string) (string, error) {
	data, err := fc.Read(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadFile opens and mmaps a file, with fallback to os.ReadFile if mmap fails.
//
// Must be called while holding mu.
func (fc *fileCacheImpl) loadFile(filePath string) (*MappedFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file %q: %w", filePath, err)
	}
	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("failed to read %q: is a directory", filePath)
	}

	// Empty files can't be mapped.
	if stat.Size() == 0 {
		file.Close()
		return &MappedFile{Path: filePath}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		fc.logger.Warn("mmap failed, using fallback",
			"file", filePath,
			"size", stat.Size(),
			"error", err)
		file.Close()

		buf, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed and fallback failed for %q: mmap error: %v, read error: %w",
				filePath, err, readErr)
		}
		fc.record(func(s *FileCacheStats) { s.MmapFailures++ })
		return &MappedFile{Path: filePath, Data: mmap.MMap(buf), Size: int64(len(buf))}, nil
	}

	return &MappedFile{
		Path:   filePath,
		Data:   data,
		File:   file,
		Size:   stat.Size(),
		mapped: true,
	}, nil
}

func (fc *fileCacheImpl) Len() int {
	return fc.cache.Len()
}

func (fc *fileCacheImpl) Stats() FileCacheStats {
	fc.statsMu.Lock()
	stats := fc.stats
	fc.statsMu.Unlock()

	stats.FilesCached = fc.cache.Len()
	return stats
}

// Close releases every mapping. Purge runs the eviction callback for each
// entry, so Evictions includes files released here.
func (fc *fileCacheImpl) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.cache.Purge()

	stats := fc.Stats()
	fc.logger.Debug("FileCache closed",
		"files_loaded", stats.FilesLoaded,
		"cache_hits", stats.CacheHits,
		"cache_misses", stats.CacheMisses,
		"mmap_failures", stats.MmapFailures)

	return nil
}

func (fc *fileCacheImpl) record(update func(s *FileCacheStats)) {
	fc.statsMu.Lock()
	update(&fc.stats)
	fc.statsMu.Unlock()
}
