package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"laundryadmin/internal/store"
)

type Entity interface {
	EntityID() int64
}

type Action string

const (
	ActionSeeded    Action = "seeded"
	ActionRecovered Action = "recovered"
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionRestored  Action = "restored"
)

// ChangeEvent tells subscribers that a collection was rewritten.
type ChangeEvent struct {
	Key    string    `json:"key"`
	Action Action    `json:"action"`
	IDs    []int64   `json:"ids,omitempty"`
	At     time.Time `json:"at"`
}

// Decoded is the tagged result of decoding a persisted collection.
type Decoded[T Entity] struct {
	Items []T
	Err   error
}

func (d Decoded[T]) OK() bool { return d.Err == nil }

// Decode parses a JSON array of records. Dates are parsed here, not in the
// store. Anything that is not an array of records with unique positive ids
// fails with ErrDeserialization.
func Decode[T Entity](raw []byte) Decoded[T] {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return Decoded[T]{Err: fmt.Errorf("%w: %v", ErrDeserialization, err)}
	}
	if items == nil {
		return Decoded[T]{Err: fmt.Errorf("%w: expected an array", ErrDeserialization)}
	}

	seen := make(map[int64]struct{}, len(items))
	for i, it := range items {
		id := it.EntityID()
		if id <= 0 {
			return Decoded[T]{Err: fmt.Errorf("%w: record %d has invalid id %d", ErrDeserialization, i, id)}
		}
		if _, dup := seen[id]; dup {
			return Decoded[T]{Err: fmt.Errorf("%w: duplicate id %d", ErrDeserialization, id)}
		}
		seen[id] = struct{}{}
	}
	return Decoded[T]{Items: items}
}

// Collection owns one entity collection stored under a single key.
//
// Every mutation re-reads the store, applies the operation to a copy and
// writes the whole collection back. Mutations are serialized within the
// process only; another process writing the same key wins if it writes last.
type Collection[T Entity] struct {
	key   string
	store store.Store
	seed  func() []T
	log   *zap.Logger

	mu sync.Mutex
	// highWater is the largest id ever held, valid while mu is held inside Mutate.
	highWater int64

	stateMu sync.RWMutex
	items   []T

	subsMu  sync.Mutex
	subs    map[int]func(ChangeEvent)
	nextSub int
}

func NewCollection[T Entity](key string, st store.Store, seed func() []T, log *zap.Logger) *Collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Collection[T]{
		key:   key,
		store: st,
		seed:  seed,
		log:   log.With(zap.String("collection", key)),
		subs:  make(map[int]func(ChangeEvent)),
	}
}

func (c *Collection[T]) seqKey() string { return c.key + ".seq" }

// Init loads the collection, seeding and persisting defaults when the key is
// absent or its value cannot be decoded.
func (c *Collection[T]) Init(ctx context.Context) error {
	c.mu.Lock()
	items, action, err := c.current(ctx)
	if err == nil && action != "" {
		err = c.persist(ctx, items)
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.setItems(items)
	c.mu.Unlock()

	if action != "" {
		c.emit(action, nil)
	}
	return nil
}

// Reset discards whatever is stored, including the id high-water mark, and
// writes the seed collection.
func (c *Collection[T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	items := c.seed()
	if err := c.store.Delete(ctx, c.seqKey()); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("reset %s: %w", c.seqKey(), err)
	}
	if err := c.persist(ctx, items); err != nil {
		c.mu.Unlock()
		return err
	}
	c.setItems(items)
	c.mu.Unlock()

	c.emit(ActionSeeded, nil)
	return nil
}

// current reads the stored collection. A non-empty action means the returned
// items came from the seed and still need persisting.
func (c *Collection[T]) current(ctx context.Context) ([]T, Action, error) {
	raw, found, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", c.key, err)
	}
	if !found {
		return c.seed(), ActionSeeded, nil
	}

	d := Decode[T](raw)
	if !d.OK() {
		c.log.Warn("falling back to seed data", zap.Error(d.Err))
		return c.seed(), ActionRecovered, nil
	}
	return d.Items, "", nil
}

func (c *Collection[T]) persist(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) setItems(items []T) {
	c.stateMu.Lock()
	c.items = items
	c.stateMu.Unlock()
}

// List returns a copy of the in-memory collection.
func (c *Collection[T]) List() []T {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Find(id int64) (T, bool) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Mutate runs op against the freshly loaded collection and persists the
// result. op returns the new collection and the ids it touched. When op
// fails nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, action Action, op func(items []T) ([]T, []int64, error)) error {
	c.mu.Lock()
	items, _, err := c.current(ctx)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	stored, err := c.loadHighWater(ctx)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.highWater = max(stored, maxID(items))

	next, ids, err := op(items)
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	if hw := max(c.highWater, maxID(next)); hw > stored {
		if err := c.store.Save(ctx, c.seqKey(), []byte(strconv.FormatInt(hw, 10))); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("save %s: %w", c.seqKey(), err)
		}
	}
	if err := c.persist(ctx, next); err != nil {
		c.mu.Unlock()
		return err
	}
	c.setItems(next)
	c.mu.Unlock()

	c.emit(action, ids)
	return nil
}

// Update applies fn to the record with id. Returns false without writing when
// no such record exists.
func (c *Collection[T]) Update(ctx context.Context, id int64, fn func(*T) error) (bool, error) {
	changed := false
	err := c.Mutate(ctx, ActionUpdated, func(items []T) ([]T, []int64, error) {
		for i := range items {
			if items[i].EntityID() == id {
				if err := fn(&items[i]); err != nil {
					return nil, nil, err
				}
				changed = true
				return items, []int64{id}, nil
			}
		}
		return nil, nil, errUnchanged
	})
	return changed, err
}

// Remove deletes the record with id and returns it so callers can offer undo.
func (c *Collection[T]) Remove(ctx context.Context, id int64) (T, error) {
	var removed T
	err := c.Mutate(ctx, ActionDeleted, func(items []T) ([]T, []int64, error) {
		for i := range items {
			if items[i].EntityID() == id {
				removed = items[i]
				return append(items[:i], items[i+1:]...), []int64{id}, nil
			}
		}
		return nil, nil, fmt.Errorf("%s %d: %w", c.key, id, ErrNotFound)
	})
	return removed, err
}

// Restore re-inserts a removed record unless its id has been taken since.
// Ids this collection never issued are rejected.
func (c *Collection[T]) Restore(ctx context.Context, item T) error {
	id := item.EntityID()
	if id <= 0 {
		return NewValidationError("id", "must be positive")
	}
	return c.Mutate(ctx, ActionRestored, func(items []T) ([]T, []int64, error) {
		if id > c.highWater {
			return nil, nil, NewValidationError("id", "was never issued")
		}
		for _, it := range items {
			if it.EntityID() == id {
				return nil, nil, fmt.Errorf("%s %d: %w", c.key, id, ErrDuplicateID)
			}
		}
		items = append(items, item)
		sort.SliceStable(items, func(i, j int) bool { return items[i].EntityID() < items[j].EntityID() })
		return items, []int64{id}, nil
	})
}

// Subscribe registers fn for change events and returns a function that removes it.
func (c *Collection[T]) Subscribe(fn func(ChangeEvent)) func() {
	c.subsMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

func (c *Collection[T]) emit(action Action, ids []int64) {
	c.subsMu.Lock()
	fns := make([]func(ChangeEvent), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()

	ev := ChangeEvent{Key: c.key, Action: action, IDs: ids, At: time.Now().UTC()}
	for _, fn := range fns {
		fn(ev)
	}
}

// issueID returns the next id. Ids are never reused, even after the highest
// record was deleted. Only valid inside a Mutate op.
func (c *Collection[T]) issueID() int64 {
	return c.highWater + 1
}

func (c *Collection[T]) loadHighWater(ctx context.Context) (int64, error) {
	raw, found, err := c.store.Load(ctx, c.seqKey())
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", c.seqKey(), err)
	}
	if !found {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		c.log.Warn("ignoring unreadable id high-water mark", zap.Error(err))
		return 0, nil
	}
	return n, nil
}

func maxID[T Entity](items []T) int64 {
	var m int64
	for _, it := range items {
		if id := it.EntityID(); id > m {
			m = id
		}
	}
	return m
}
