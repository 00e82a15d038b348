package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/depot/internal/platform/logger"
)

// Keyed is the capability set a value must provide to live in a
// KeyedRepository: it must expose the unique key it is stored under.
type Keyed[K comparable] interface {
	Key() K
}

// ValidateFunc checks a value against its domain constraints before it is
// stored. A nil ValidateFunc accepts every value.
type ValidateFunc[V any] func(V) error

// KeyedRepository is a generic in-memory collection mapping unique keys to
// values. It enforces uniqueness on insert and existence on lookup, update,
// and remove. Failed operations leave the repository's contents untouched.
//
// The repository is not safe for concurrent use; the demo programs drive it
// from a single goroutine.
type KeyedRepository[K comparable, V Keyed[K]] struct {
	entity   string
	validate ValidateFunc[V]
	logger   *slog.Logger
	items    map[K]V
	order    []K
}

// NewKeyedRepository creates an empty repository for the named entity type.
// validate may be nil if the value type carries no storage-time constraints.
// If logger is nil, the default logger is used.
func NewKeyedRepository[K comparable, V Keyed[K]](
	entity string,
	validate ValidateFunc[V],
	log *slog.Logger,
) *KeyedRepository[K, V] {
	if log == nil {
		log = slog.Default()
	}

	return &KeyedRepository[K, V]{
		entity:   entity,
		validate: validate,
		logger:   log.With(slog.String("component", entity+"_repository")),
		items:    make(map[K]V),
		order:    make([]K, 0),
	}
}

// Insert stores a new value under its key.
// Returns ErrInvalidValue if the value fails validation, and ErrDuplicateKey
// if a value already exists under the same key.
func (r *KeyedRepository[K, V]) Insert(ctx context.Context, value V) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := r.check(value); err != nil {
		log.Warn("validation failed during insert",
			slog.String("error", err.Error()))
		return err
	}

	key := value.Key()
	if _, exists := r.items[key]; exists {
		log.Warn("duplicate key during insert",
			slog.Any("key", key))
		return fmt.Errorf("%w: %s %v", ErrDuplicateKey, r.entity, key)
	}

	r.items[key] = value
	r.order = append(r.order, key)

	log.Debug("value inserted", slog.Any("key", key))
	return nil
}

// Get retrieves the value stored under key.
// Returns ErrNotFound if no value exists under the key.
func (r *KeyedRepository[K, V]) Get(ctx context.Context, key K) (V, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	value, exists := r.items[key]
	if !exists {
		log.Debug("key not found during get", slog.Any("key", key))
		var zero V
		return zero, fmt.Errorf("%w: %s %v", ErrNotFound, r.entity, key)
	}

	return value, nil
}

// Update replaces the value stored under newValue's key.
// Returns ErrInvalidValue if newValue fails validation, and ErrNotFound if no
// value exists under the key. The stored value is unchanged in either case.
func (r *KeyedRepository[K, V]) Update(ctx context.Context, newValue V) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if err := r.check(newValue); err != nil {
		log.Warn("validation failed during update",
			slog.String("error", err.Error()))
		return err
	}

	key := newValue.Key()
	if _, exists := r.items[key]; !exists {
		log.Warn("key not found during update", slog.Any("key", key))
		return fmt.Errorf("%w: %s %v", ErrNotFound, r.entity, key)
	}

	r.items[key] = newValue

	log.Debug("value updated", slog.Any("key", key))
	return nil
}

// Remove deletes the value stored under key.
// Returns ErrNotFound if no value exists under the key.
func (r *KeyedRepository[K, V]) Remove(ctx context.Context, key K) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if _, exists := r.items[key]; !exists {
		log.Warn("key not found during remove", slog.Any("key", key))
		return fmt.Errorf("%w: %s %v", ErrNotFound, r.entity, key)
	}

	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	log.Debug("value removed", slog.Any("key", key))
	return nil
}

// List returns a snapshot of all stored values in insertion order.
// Mutating the returned slice does not affect the repository.
func (r *KeyedRepository[K, V]) List(ctx context.Context) []V {
	values := make([]V, 0, len(r.order))
	for _, key := range r.order {
		values = append(values, r.items[key])
	}
	return values
}

// Len returns the number of stored values.
func (r *KeyedRepository[K, V]) Len() int {
	return len(r.items)
}

// check runs the configured validator, wrapping failures in ErrInvalidValue
// so callers can match the condition with errors.Is.
func (r *KeyedRepository[K, V]) check(value V) error {
	if r.validate == nil {
		return nil
	}
	if err := r.validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}
