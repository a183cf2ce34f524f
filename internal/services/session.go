package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillscan/resume-analyzer/internal/models"
)

// ErrAnalysisPending means the background compatibility analysis had not
// finished within the join deadline. The session stays valid so the
// caller can submit again.
var ErrAnalysisPending = errors.New("analysis is still running")

// QuizSession holds the state of one advanced-analysis run: the
// generated quiz plus a future for the compatibility analysis that was
// launched in the background.
type QuizSession struct {
	ID        uuid.UUID
	Questions []models.QuizQuestion

	resultCh chan analysisOutcome
	expires  time.Time

	mu      sync.Mutex
	settled *analysisOutcome
}

type analysisOutcome struct {
	result *models.CompatibilityResult
	err    error
}

// Deliver resolves the session's analysis future. Called exactly once by
// the background goroutine.
func (s *QuizSession) Deliver(result *models.CompatibilityResult, err error) {
	s.resultCh <- analysisOutcome{result: result, err: err}
}

// Join waits up to wait for the background analysis to resolve. A
// timeout returns ErrAnalysisPending without consuming anything, so a
// later Join can still succeed. Once resolved, the outcome is cached and
// every subsequent Join returns it immediately.
func (s *QuizSession) Join(wait time.Duration) (*models.CompatibilityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settled != nil {
		return s.settled.result, s.settled.err
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case outcome := <-s.resultCh:
		s.settled = &outcome
		return outcome.result, outcome.err
	case <-timer.C:
		return nil, ErrAnalysisPending
	}
}

type SessionStore interface {
	Create(questions []models.QuizQuestion) *QuizSession
	Get(id uuid.UUID) (*QuizSession, bool)
	Delete(id uuid.UUID)
	Start()
	Stop()
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*QuizSession
	ttl      time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewSessionStore(ttl time.Duration) SessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*QuizSession),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
}

func (st *sessionStore) Create(questions []models.QuizQuestion) *QuizSession {
	session := &QuizSession{
		ID:        uuid.New(),
		Questions: questions,
		resultCh:  make(chan analysisOutcome, 1),
		expires:   time.Now().Add(st.ttl),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

func (st *sessionStore) Get(id uuid.UUID) (*QuizSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok || time.Now().After(session.expires) {
		return nil, false
	}
	return session, true
}

func (st *sessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Start launches the expiry janitor.
func (st *sessionStore) Start() {
	st.wg.Add(1)
	go st.evictExpired()
	log.Println("✅ Session store started")
}

// Stop shuts the janitor down and waits for it to exit.
func (st *sessionStore) Stop() {
	close(st.stopChan)
	st.wg.Wait()
	log.Println("✅ Session store stopped")
}

func (st *sessionStore) evictExpired() {
	defer st.wg.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopChan:
			return
		case <-ticker.C:
			now := time.Now()
			st.mu.Lock()
			for id, session := range st.sessions {
				if now.After(session.expires) {
					delete(st.sessions, id)
					log.Printf("🧹 Evicted expired quiz session %s\n", id)
				}
			}
			st.mu.Unlock()
		}
	}
}
