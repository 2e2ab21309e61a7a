// Package optimistic держит состояние коллекции сущностей согласованным с
// удаленным хранилищем: обновления применяются локально сразу и
// откатываются при ошибке записи, создание и удаление применяются только
// после подтверждения хранилищем.
package optimistic

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

// WriteFunc выполняет удаленную запись обновления.
// nil без ошибки означает, что хранилище не вернуло каноническую запись.
type WriteFunc[T any] func(ctx context.Context) (*T, error)

// Collection упорядоченная коллекция сущностей с ключом idOf.
// Версии записей берутся из общего счетчика seq и не повторяются даже после Replace.
type Collection[T any] struct {
	mu       sync.Mutex
	name     string
	idOf     func(T) string
	items    []T
	versions map[string]uint64
	seq      uint64
	closed   bool
	log      *zap.Logger
}

// NewCollection создает пустую коллекцию
func NewCollection[T any](name string, idOf func(T) string, log *zap.Logger) *Collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[T]{
		name:     name,
		idOf:     idOf,
		versions: make(map[string]uint64),
		log:      log.With(zap.String("collection", name)),
	}
}

// Replace заменяет состояние загруженными данными.
// Записи без id и повторы отбрасываются, возвращается число отброшенных.
func (c *Collection[T]) Replace(items []T) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0
	}

	clean := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	dropped := 0
	for _, item := range items {
		id := c.idOf(item)
		if id == "" {
			dropped++
			continue
		}
		if _, ok := seen[id]; ok {
			dropped++
			continue
		}
		seen[id] = struct{}{}
		clean = append(clean, item)
	}

	if dropped > 0 {
		c.log.Warn("dropped malformed entries", zap.Int("dropped", dropped))
	}

	c.items = clean
	c.versions = make(map[string]uint64, len(clean))
	return dropped
}

// Items возвращает копию текущего состояния
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len возвращает размер коллекции
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get возвращает сущность по id
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Put добавляет или заменяет сущность, прочитанную из хранилища
func (c *Collection[T]) Put(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsert(item, false)
}

// Update применяет патч локально, выполняет запись и согласует результат:
// каноническая запись хранилища заменяет локальную догадку, при ошибке
// восстанавливается прежнее значение и ошибка возвращается вызывающему.
// Повторов нет.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(T) T, write WriteFunc[T]) (T, error) {
	var zero T

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, domainErrors.ErrClosed
	}
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return zero, domainErrors.ErrNotFound
	}
	previous := c.items[i]
	guess := apply(previous)
	c.items[i] = guess
	c.seq++
	version := c.seq
	c.versions[id] = version
	c.mu.Unlock()

	canonical, err := write(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	// запись устарела: коллекция закрыта или ключ уже обновлен позже
	stale := c.closed || c.versions[id] != version

	if err != nil {
		if !stale {
			if j := c.indexOf(id); j >= 0 {
				c.items[j] = previous
			}
		}
		c.log.Warn("optimistic update rolled back",
			zap.String("id", id),
			zap.Bool("stale", stale),
			zap.Error(err),
		)
		return previous, err
	}

	result := guess
	if canonical != nil && c.idOf(*canonical) == id {
		result = *canonical
	}
	if !stale {
		if j := c.indexOf(id); j >= 0 {
			c.items[j] = result
		}
	}
	return result, nil
}

// Insert выполняет создание и добавляет запись в начало только после подтверждения
func (c *Collection[T]) Insert(ctx context.Context, write func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if c.isClosed() {
		return zero, domainErrors.ErrClosed
	}

	item, err := write(ctx)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.upsert(item, true)
	}
	return item, nil
}

// Remove выполняет удаление и убирает запись только после подтверждения
func (c *Collection[T]) Remove(ctx context.Context, id string, write func(ctx context.Context) error) error {
	if c.isClosed() {
		return domainErrors.ErrClosed
	}

	if err := write(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	delete(c.versions, id)
	return nil
}

// Close отключает коллекцию от владельца: записи, завершившиеся позже,
// состояние уже не меняют
func (c *Collection[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.items = nil
	c.versions = nil
}

func (c *Collection[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// upsert вызывается под блокировкой
func (c *Collection[T]) upsert(item T, front bool) {
	id := c.idOf(item)
	if id == "" {
		c.log.Warn("ignored entry without id")
		return
	}
	if i := c.indexOf(id); i >= 0 {
		c.items[i] = item
		return
	}
	if front {
		c.items = append([]T{item}, c.items...)
		return
	}
	c.items = append(c.items, item)
}

// indexOf вызывается под блокировкой
func (c *Collection[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}
