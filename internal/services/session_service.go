package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/logger"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/session"
	"github.com/Lyn1194/hsk1-app/internal/vocab"
)

// SessionService owns the live drill sessions, one per profile. Starting
// a new session silently discards the previous one for that profile.
type SessionService interface {
	Start(ctx context.Context, profileID int64, mode models.Mode, scope session.Scope) (*models.SessionSnapshot, error)
	Current(ctx context.Context, profileID int64) (*models.SessionSnapshot, error)
	SubmitAnswer(ctx context.Context, profileID int64, answer session.Answer) (*models.SessionSnapshot, error)
	Advance(ctx context.Context, profileID int64) (*models.SessionSnapshot, error)
	Retreat(ctx context.Context, profileID int64) (*models.SessionSnapshot, error)
	Reshuffle(ctx context.Context, profileID int64) (*models.SessionSnapshot, error)
}

// SessionConfig carries the engine tunables from app configuration.
type SessionConfig struct {
	OptionCount  int
	StrictPinyin bool
}

type sessionService struct {
	catalog  *vocab.Catalog
	statsSvc StatsService
	cfg      SessionConfig

	mu       sync.Mutex
	sessions map[int64]*session.Session
	rng      *rand.Rand
}

// NewSessionService creates a new SessionService
func NewSessionService(catalog *vocab.Catalog, statsSvc StatsService, cfg SessionConfig) SessionService {
	return &sessionService{
		catalog:  catalog,
		statsSvc: statsSvc,
		cfg:      cfg,
		sessions: make(map[int64]*session.Session),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *sessionService) Start(ctx context.Context, profileID int64, mode models.Mode, scope session.Scope) (*models.SessionSnapshot, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting session: profile_id=%d, mode=%s, scope=%s", profileID, mode, scope.String())

	pool, err := session.BuildPool(s.catalog, scope)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := session.New(pool, session.Config{
		Mode:         mode,
		OptionCount:  s.cfg.OptionCount,
		StrictPinyin: s.cfg.StrictPinyin,
		Rand:         s.rng,
	})
	if err != nil {
		return nil, err
	}

	if old := s.sessions[profileID]; old != nil {
		log.Debug("discarding previous session %s for profile %d", old.ID(), profileID)
	}
	s.sessions[profileID] = sess

	log.Info("session started: profile_id=%d, mode=%s, scope=%s, items=%d",
		profileID, mode, scope.String(), sess.Snapshot().Total)

	snap := sess.Snapshot()
	return &snap, nil
}

func (s *sessionService) get(profileID int64) (*session.Session, error) {
	sess := s.sessions[profileID]
	if sess == nil {
		return nil, errors.NewNotFoundError("session", profileID)
	}
	return sess, nil
}

func (s *sessionService) Current(ctx context.Context, profileID int64) (*models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(profileID)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, profileID int64, answer session.Answer) (*models.SessionSnapshot, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(profileID)
	if err != nil {
		return nil, err
	}

	correct, err := sess.Submit(answer)
	if err != nil {
		return nil, err
	}
	log.Debug("answer submitted: profile_id=%d, session=%s, correct=%t", profileID, sess.ID(), correct)

	snap := sess.Snapshot()
	return &snap, nil
}

func (s *sessionService) Advance(ctx context.Context, profileID int64) (*models.SessionSnapshot, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(profileID)
	if err != nil {
		return nil, err
	}

	if err := sess.Advance(); err != nil {
		return nil, err
	}

	if sess.Finished() {
		outcome, err := sess.Outcome()
		if err != nil {
			return nil, err
		}
		// A failed flush must not lose the finished snapshot.
		if _, err := s.statsSvc.RecordOutcome(ctx, profileID, outcome); err != nil {
			log.Error("failed to record session outcome: profile_id=%d: %v", profileID, err)
		}
		log.Info("session finished: profile_id=%d, session=%s, correct=%d, incorrect=%d",
			profileID, sess.ID(), outcome.Correct, outcome.Incorrect)
	}

	snap := sess.Snapshot()
	return &snap, nil
}

func (s *sessionService) Retreat(ctx context.Context, profileID int64) (*models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(profileID)
	if err != nil {
		return nil, err
	}
	if err := sess.Retreat(); err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}

func (s *sessionService) Reshuffle(ctx context.Context, profileID int64) (*models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(profileID)
	if err != nil {
		return nil, err
	}
	if err := sess.Reshuffle(); err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}
