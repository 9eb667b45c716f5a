package storage

import "fmt"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Store is a ranking store that holds resources until closed.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend    string
	Path       string // JSON file path for the file backend
	SQLitePath string
	Redis      RedisConfig
}

// Open creates the store for the configured backend.
// An empty backend name selects the file backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Path)
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(opts.Redis)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
}

// compile-time interface checks
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*RedisStore)(nil)
)
