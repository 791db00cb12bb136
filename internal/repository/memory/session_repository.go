package memory

import (
	"strconv"
	"time"

	"devlabs-intake-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Abandoned conversations fall back to idle after an hour; expired
	// entries are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(key(session.UserID), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(userID int64) (*store.Session, bool) {
	if x, found := r.cache.Get(key(userID)); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userID int64) {
	r.cache.Delete(key(userID))
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
