package reservation

import (
	"context"
	"sync"
	"time"

	"flyaway/internal/domain"

	"github.com/google/uuid"
)

// Store keeps one State per open reservation page. Sessions idle for longer
// than the TTL are dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

type session struct {
	state    State
	lastSeen time.Time
}

func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{ttl: ttl, now: now, sessions: map[string]*session{}}
}

// Create stores s under a fresh id.
func (st *Store) Create(s State) string {
	id := uuid.NewString()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = &session{state: s, lastSeen: st.now()}
	return id
}

func (st *Store) Get(id string) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, err := st.lookup(id)
	if err != nil {
		return State{}, err
	}
	sess.lastSeen = st.now()
	return sess.state, nil
}

// Update replaces the session state with fn's result. fn runs under the store
// lock and must not block; on error the state is left as it was.
func (st *Store) Update(id string, fn func(State) (State, error)) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, err := st.lookup(id)
	if err != nil {
		return State{}, err
	}
	next, err := fn(sess.state)
	if err != nil {
		return sess.state, err
	}
	sess.state = next
	sess.lastSeen = st.now()
	return next, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, sess := range st.sessions {
		if st.expired(sess) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (st *Store) lookup(id string) (*session, error) {
	sess, ok := st.sessions[id]
	if !ok || st.expired(sess) {
		delete(st.sessions, id)
		return nil, domain.NotFoundError{Resource: "reservation"}
	}
	return sess, nil
}

func (st *Store) expired(sess *session) bool {
	return st.ttl > 0 && st.now().Sub(sess.lastSeen) > st.ttl
}
