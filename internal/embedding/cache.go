package embedding

import (
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Cache is a content-addressed vector store. A miss and a failed read are
// the same thing to callers: recompute. Writes are best-effort.
type Cache interface {
	Get(key string) ([]float32, bool)
	Put(key string, vector []float32)
}

// CacheKey derives the content address for a model/text pair.
func CacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// SQLiteCache persists vectors in a single-table sqlite database.
// Concurrent invocations against the same file are not coordinated:
// same key means same recomputed value, so a duplicate-key race only
// wastes work.
type SQLiteCache struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLiteCache opens (and migrates) a sqlite-backed vector cache at path.
func NewSQLiteCache(path string, log *zap.Logger) (*SQLiteCache, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening embedding cache %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS embeddings (
		key TEXT PRIMARY KEY,
		vector BLOB NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating embedding cache: %w", err)
	}

	return &SQLiteCache{db: db, log: log}, nil
}

// Get implements Cache. Read failures are logged and reported as misses.
func (c *SQLiteCache) Get(key string) ([]float32, bool) {
	var blob []byte
	err := c.db.QueryRow(`SELECT vector FROM embeddings WHERE key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		c.log.Debug("embedding cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	vector, err := decodeVector(blob)
	if err != nil {
		c.log.Debug("embedding cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return vector, true
}

// Put implements Cache. Write failures are logged and dropped.
func (c *SQLiteCache) Put(key string, vector []float32) {
	if len(vector) == 0 {
		return
	}
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO embeddings (key, vector) VALUES (?, ?)`,
		key, encodeVector(vector),
	)
	if err != nil {
		c.log.Debug("embedding cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func encodeVector(vector []float32) []byte {
	buf := make([]byte, 4*len(vector))
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("vector blob length %d is not a multiple of 4", len(blob))
	}
	vector := make([]float32, len(blob)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vector, nil
}
