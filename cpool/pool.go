// Package cpool provides a constant pool that implements jclass.Pool, either
// transient or persisted in a Bolt file, so that constants from many class
// files can be merged into one shared, deduplicated pool.
//
// Only the constant kinds that jclass records reference are supported: Utf8,
// Class, String, Module and Package. Ordinals start at 1; ordinal 0 is never
// allocated.
package cpool

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/andreyvit/jclass"
	"go.etcd.io/bbolt"
)

const (
	constantsBucket = "constants"
	metaBucket      = "meta"
	version1        = 1

	// MaxLen is the largest number of constants a class file can address
	// (constant_pool_count is a u2 and ordinal 0 is unused).
	MaxLen = math.MaxUint16 - 1
)

var versionKey = []byte("version")

type Options struct {
	Context   context.Context
	DebugName string
	Logger    *slog.Logger

	// Timeout bounds waiting for the Bolt file lock; 0 means wait forever.
	Timeout time.Duration
}

func (o *Options) setDefaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.DebugName == "" {
		o.DebugName = "cpool"
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Pool is safe for concurrent use.
type Pool struct {
	context   context.Context
	debugName string
	logger    *slog.Logger

	mu       sync.RWMutex
	store    storage
	entries  []jclass.Constant // entries[i] has ordinal i+1
	byKey    map[uint64][]uint16
	flushed  int // number of entries already in store
	closed   bool
	scratch  bytes.Buffer
	encCache [][]byte // encoded form of entries[flushed:]
}

var _ jclass.Pool = (*Pool)(nil)

// New returns a transient pool.
func New(o Options) *Pool {
	o.setDefaults()
	p := newPool(newMemStorage(), o)
	ensure(p.initStore())
	return p
}

// Open opens or creates a pool persisted at path.
func Open(path string, o Options) (*Pool, error) {
	o.setDefaults()
	bdb, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: o.Timeout})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.DebugName, err)
	}
	p := newPool(newBoltStorage(bdb), o)
	if err := p.initStore(); err != nil {
		bdb.Close()
		return nil, err
	}
	if err := p.load(); err != nil {
		bdb.Close()
		return nil, err
	}
	p.logger.LogAttrs(p.context, slog.LevelDebug, "cpool: opened", slog.String("pool", p.debugName), slog.String("path", path), slog.Int("constants", len(p.entries)))
	return p, nil
}

func newPool(store storage, o Options) *Pool {
	return &Pool{
		context:   o.Context,
		debugName: o.DebugName,
		logger:    o.Logger,
		store:     store,
		byKey:     make(map[uint64][]uint16),
	}
}

func (p *Pool) initStore() error {
	tx, err := p.store.BeginTx(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	meta, err := tx.CreateBucket(metaBucket)
	if err != nil {
		return err
	}
	if v := meta.Get(versionKey); v == nil {
		if err := meta.Put(versionKey, []byte{version1}); err != nil {
			return err
		}
	} else if len(v) != 1 {
		return fmt.Errorf("%s: %w: version key is %x", p.debugName, ErrIncompatible, v)
	} else if v[0] != version1 {
		return fmt.Errorf("%s: %w: %d", p.debugName, ErrUnsupportedVersion, v[0])
	}
	if _, err := tx.CreateBucket(constantsBucket); err != nil {
		return err
	}
	return tx.Commit()
}

func (p *Pool) load() error {
	tx, err := p.store.BeginTx(false)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	b := tx.Bucket(constantsBucket)
	p.entries = make([]jclass.Constant, 0, b.KeyCount())
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		idx, ok := parseIndexKey(k)
		if !ok || int(idx) != len(p.entries)+1 {
			return fmt.Errorf("%s: %w: unexpected key %x after %d constants", p.debugName, ErrCorrupted, k, len(p.entries))
		}
		cnst, err := decodeConstant(v)
		if err != nil {
			return fmt.Errorf("%s: %w: #%d: %v", p.debugName, ErrCorrupted, idx, err)
		}
		if err := p.validateLocked(cnst); err != nil {
			return fmt.Errorf("%s: %w: #%d: %v", p.debugName, ErrCorrupted, idx, err)
		}
		p.entries = append(p.entries, cnst)
		key := constantKey(v)
		p.byKey[key] = append(p.byKey[key], idx)
	}
	p.flushed = len(p.entries)
	return nil
}

// Len returns the number of constants; valid ordinals are 1..Len().
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

func (p *Pool) Constant(kind jclass.ConstKind, idx uint16) (jclass.Constant, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if idx == 0 || int(idx) > len(p.entries) {
		return jclass.Constant{}, false
	}
	c := p.entries[idx-1]
	if c.Kind != kind {
		return jclass.Constant{}, false
	}
	return c, true
}

// All yields every constant with its ordinal, in ordinal order.
func (p *Pool) All() iter.Seq2[uint16, jclass.Constant] {
	return func(yield func(uint16, jclass.Constant) bool) {
		p.mu.RLock()
		entries := p.entries
		p.mu.RUnlock()
		for i, c := range entries {
			if !yield(uint16(i+1), c) {
				return
			}
		}
	}
}

// Intern returns the ordinal of a constant equal to c, adding it if needed.
// Class, String, Module and Package constants must name an existing Utf8
// entry of this pool.
func (p *Pool) Intern(c jclass.Constant) (uint16, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}
	if err := p.validateLocked(c); err != nil {
		return 0, fmt.Errorf("%s: cannot intern %v: %w", p.debugName, c, err)
	}

	encodeConstant(&p.scratch, c)
	key := constantKey(p.scratch.Bytes())
	for _, idx := range p.byKey[key] {
		if p.entries[idx-1] == c {
			return idx, nil
		}
	}

	if len(p.entries) >= MaxLen {
		return 0, fmt.Errorf("%s: cannot intern %v: %w", p.debugName, c, ErrFull)
	}
	p.entries = append(p.entries, c)
	idx := uint16(len(p.entries))
	p.byKey[key] = append(p.byKey[key], idx)
	p.encCache = append(p.encCache, bytes.Clone(p.scratch.Bytes()))
	return idx, nil
}

func (p *Pool) validateLocked(c jclass.Constant) error {
	switch c.Kind {
	case jclass.ConstUtf8:
		if c.Name != 0 {
			return fmt.Errorf("utf8 constant with a name reference")
		}
		return nil
	case jclass.ConstClass, jclass.ConstString, jclass.ConstModule, jclass.ConstPackage:
		if c.Text != "" {
			return fmt.Errorf("%v constant with inline text", c.Kind)
		}
		if c.Name == 0 || int(c.Name) > len(p.entries) || p.entries[c.Name-1].Kind != jclass.ConstUtf8 {
			return fmt.Errorf("%v constant names %v, which is not a Utf8 entry", c.Kind, c.Name)
		}
		return nil
	default:
		return fmt.Errorf("unsupported constant kind %v", c.Kind)
	}
}

// Flush writes constants interned since the last flush to the backing store
// in a single transaction.
func (p *Pool) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushLocked()
}

func (p *Pool) flushLocked() error {
	if p.closed {
		return ErrClosed
	}
	pending := len(p.entries) - p.flushed
	if pending == 0 {
		return nil
	}

	tx, err := p.store.BeginTx(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	b := tx.Bucket(constantsBucket)
	for i, raw := range p.encCache {
		idx := uint16(p.flushed + i + 1)
		if err := b.Put(indexKey(idx), raw); err != nil {
			return fmt.Errorf("%s: writing #%d: %w", p.debugName, idx, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", p.debugName, err)
	}

	p.flushed = len(p.entries)
	p.encCache = p.encCache[:0]
	p.logger.LogAttrs(p.context, slog.LevelDebug, "cpool: flushed", slog.String("pool", p.debugName), slog.Int("written", pending), slog.Int("constants", len(p.entries)))
	return nil
}

// Close flushes pending constants and releases the backing store.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	err := p.flushLocked()
	if err != nil {
		p.logger.LogAttrs(p.context, slog.LevelError, "cpool: flush on close failed", slog.String("pool", p.debugName), slog.Any("err", err))
	}
	p.closed = true
	if cerr := p.store.Close(); err == nil {
		err = cerr
	}
	return err
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}
