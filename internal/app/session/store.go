package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/observability/metrics"
)

// Store keeps sessions in memory. Idle sessions expire after ttl; every
// lookup extends the lifetime.
type Store struct {
	items  *gocache.Cache
	ttl    time.Duration
	mapCfg mappane.Config
	logger *zap.Logger
}

func NewStore(ttl time.Duration, mapCfg mappane.Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		items:  gocache.New(ttl, ttl/2),
		ttl:    ttl,
		mapCfg: mapCfg,
		logger: logger,
	}
	s.items.OnEvicted(func(id string, _ interface{}) {
		s.logger.Debug("Session expired", zap.String("session_id", id))
	})
	return s
}

// Get returns a live session and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, found := s.items.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	s.items.Set(id, sess, gocache.DefaultExpiration)
	return sess, true
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// empty or unknown. created reports whether a new session was made.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if existing, ok := s.Get(id); ok {
		return existing, false
	}

	for {
		sess = New(uuid.NewString(), s.mapCfg)
		if err := s.items.Add(sess.ID, sess, gocache.DefaultExpiration); err == nil {
			break
		}
	}
	count := s.items.ItemCount()
	metrics.Get().ActiveSessionsGauge.Record(context.Background(), int64(count))
	s.logger.Debug("Session created", zap.String("session_id", sess.ID), zap.Int("sessions", count))
	return sess, true
}

func (s *Store) Len() int {
	return s.items.ItemCount()
}
