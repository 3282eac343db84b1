package redisstore

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/milk9111/levelgen/structure"
)

// DefaultPrefix namespaces template keys: structure:<id>.
const DefaultPrefix = "structure:"

// Config holds the dependencies of a Store.
type Config struct {
	Client Client
	// Prefix overrides DefaultPrefix.
	Prefix string
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("redisstore: config cannot be nil")
	}
	if c.Client == nil {
		return errors.New("redisstore: redis client is required")
	}
	return nil
}

// Store is a structure.Store reading template records from Redis string
// keys. Records use the same YAML or JSON shape as template files.
type Store struct {
	client Client
	prefix string
}

var _ structure.Store = (*Store)(nil)

func NewRedis(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: cfg.Client, prefix: prefix}, nil
}

func (s *Store) Template(ctx context.Context, id string) (*structure.Template, error) {
	if id == "" {
		return nil, errors.Wrap(structure.ErrTemplateNotFound, "redisstore: empty id")
	}
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrapf(structure.ErrTemplateNotFound, "redisstore: %s", id)
		}
		return nil, errors.Wrapf(err, "redisstore: get %s", id)
	}
	return structure.Decode(id, data)
}

// Put validates data as a template record and stores it under id.
func (s *Store) Put(ctx context.Context, id string, data []byte) (*structure.Template, error) {
	if id == "" {
		return nil, errors.New("redisstore: id cannot be empty")
	}
	tpl, err := structure.Decode(id, data)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, s.key(id), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "redisstore: set %s", id)
	}
	return tpl, nil
}

// Delete removes id. Deleting a missing template is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrapf(err, "redisstore: del %s", id)
	}
	return nil
}

// IDs lists the stored template ids in sorted order.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redisstore: scan")
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}
