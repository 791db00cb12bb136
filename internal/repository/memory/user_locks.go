package memory

import "sync"

// UserLocks serializes event handling per user id. Two concurrent events
// for the same user must not race on the session or the pending-message
// buffer; events for different users proceed in parallel.
//
// Entries are reference counted and evicted once the last holder
// unlocks, so the map does not grow with the number of distinct users
// seen over the process lifetime.
type userLock struct {
	mu   sync.Mutex
	refs int
}

type UserLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

func NewUserLocks() *UserLocks {
	return &UserLocks{
		locks: make(map[int64]*userLock),
	}
}

func (l *UserLocks) Lock(userID int64) {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *UserLocks) Unlock(userID int64) {
	l.mu.Lock()
	entry := l.locks[userID]
	if entry != nil {
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, userID)
		}
	}
	l.mu.Unlock()

	if entry != nil {
		entry.mu.Unlock()
	}
}
