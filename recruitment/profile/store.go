package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/Abraxas-365/medjobb/pkg/logx"
)

// Op names a persistence call made by the store
type Op string

const (
	OpProbe Op = "probe"
	OpWrite Op = "write"
	OpClear Op = "clear"
)

// Result is the outcome of one persistence call. Failures are logged and
// kept here; they never reach callers of Login, Update or Logout.
type Result struct {
	Op  Op
	Err error
}

// OK reports whether the call succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Snapshot is what subscribers observe after every state change
type Snapshot struct {
	Profile *StudentProfile
	Active  bool
}

// Store caches the current student's profile and writes it through to a
// Slot. Build one at startup and pass it to whatever needs it.
//
// Mutations are serialized so the slot and the cache always agree on the
// last call; reads only take the cache lock.
type Store struct {
	slot Slot

	writeMu sync.Mutex

	mu      sync.RWMutex
	profile *StudentProfile
	last    Result

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewStore probes slot and starts ACTIVE if it holds a valid profile
func NewStore(ctx context.Context, slot Slot) *Store {
	s := &Store{
		slot: slot,
		subs: make(map[int]func(Snapshot)),
	}
	s.probe(ctx)
	return s
}

// ============================================================================
// Reads
// ============================================================================

// Current returns a copy of the cached profile
func (s *Store) Current() (*StudentProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil, false
	}
	p := s.profile.Clone()
	return &p, true
}

// IsActive reports whether a profile is cached
func (s *Store) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil
}

// LastResult is the outcome of the most recent persistence call
func (s *Store) LastResult() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// ============================================================================
// Mutations
// ============================================================================

// Login stores p without its password and activates the store
func (s *Store) Login(ctx context.Context, p StudentProfile) {
	s.save(ctx, p)
}

// Update replaces the stored profile. Called while inactive it behaves
// like Login.
func (s *Store) Update(ctx context.Context, p StudentProfile) {
	if !s.IsActive() {
		logx.Warn("profile update while signed out, treating as login", "email", string(p.Email))
	}
	s.save(ctx, p)
}

// Logout clears the slot and the cache
func (s *Store) Logout(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res := Result{Op: OpClear}
	if err := s.slot.Clear(ctx); err != nil {
		res.Err = err
	}
	logResult(res)

	s.mu.Lock()
	s.profile = nil
	s.last = res
	s.mu.Unlock()

	s.notify()
}

// Reload re-reads the slot as a fresh process would
func (s *Store) Reload(ctx context.Context) {
	s.probe(ctx)
}

// Subscribe registers fn to observe every state change. fn runs in the
// mutating goroutine and must not call Login, Update, Logout or Reload.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// ============================================================================
// Internals
// ============================================================================

func (s *Store) save(ctx context.Context, p StudentProfile) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stripped := p.Strip()
	res := s.write(ctx, stripped)
	logResult(res)

	s.mu.Lock()
	s.profile = &stripped
	s.last = res
	s.mu.Unlock()

	s.notify()
}

func (s *Store) write(ctx context.Context, p StudentProfile) Result {
	res := Result{Op: OpWrite}
	data, err := json.Marshal(p)
	if err != nil {
		res.Err = errx.Wrap(err, "failed to encode profile", errx.TypeInternal)
		return res
	}
	if err := s.slot.Write(ctx, data); err != nil {
		res.Err = err
	}
	return res
}

func (s *Store) probe(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	p, res := s.read(ctx)
	logResult(res)

	s.mu.Lock()
	s.profile = p
	s.last = res
	s.mu.Unlock()

	s.notify()
}

// read never fails outward: empty, null or malformed content all mean
// "no profile".
func (s *Store) read(ctx context.Context) (*StudentProfile, Result) {
	res := Result{Op: OpProbe}

	data, err := s.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty()) {
			return nil, res
		}
		res.Err = err
		return nil, res
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, res
	}

	var p StudentProfile
	if err := json.Unmarshal(data, &p); err != nil {
		res.Err = ErrMalformedProfile().WithCause(err)
		return nil, res
	}

	stripped := p.Strip()
	return &stripped, res
}

func (s *Store) notify() {
	s.mu.RLock()
	snap := Snapshot{Active: s.profile != nil}
	if s.profile != nil {
		p := s.profile.Clone()
		snap.Profile = &p
	}
	s.mu.RUnlock()

	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func logResult(res Result) {
	if res.OK() {
		logx.Debug("profile slot", "op", string(res.Op))
		return
	}
	switch res.Op {
	case OpProbe:
		logx.Warn("stored profile ignored, starting signed out", "err", res.Err.Error())
	default:
		logx.Warn("profile slot unavailable, keeping in-memory profile only", "op", string(res.Op), "err", res.Err.Error())
	}
}
