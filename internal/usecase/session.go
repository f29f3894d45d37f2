package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nexus-bank/internal/domain"
)

// Session holds the seed users and the currently authenticated user.
type Session struct {
	repo  UserRepository
	delay time.Duration

	mu      sync.Mutex
	users   []*domain.User
	loaded  bool
	current *domain.User
	pending *PendingLogin
}

// NewSession creates a session store. delay is the simulated latency
// between a successful credential check and the session becoming active.
func NewSession(repo UserRepository, delay time.Duration) *Session {
	return &Session{repo: repo, delay: delay}
}

// Users returns the seed users, loading them from the repository on first use.
func (s *Session) Users(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers(ctx)
}

func (s *Session) loadUsers(ctx context.Context) ([]*domain.User, error) {
	if s.loaded {
		return s.users, nil
	}
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load users: %w", err)
	}
	s.users = users
	s.loaded = true
	return s.users, nil
}

// Login authenticates the user and waits out the login delay.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	p, err := s.BeginLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return p.Wait(ctx)
}

// BeginLogin checks the credentials and starts the login delay. The session
// is not modified until the returned PendingLogin completes.
func (s *Session) BeginLogin(ctx context.Context, email, password string) (*PendingLogin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return nil, domain.ErrLoginInProgress
	}
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var match *domain.User
	for _, u := range users {
		if u.Email == email && u.Password == password {
			match = u
			break
		}
	}
	if match == nil {
		return nil, domain.ErrInvalidCredentials
	}

	p := &PendingLogin{
		session: s,
		user:    match,
		timer:   time.NewTimer(s.delay),
		done:    make(chan struct{}),
	}
	s.pending = p
	return p, nil
}

// LoginPending reports whether a login is waiting for its delay to elapse.
// The login form keeps its submit control disabled during this window.
func (s *Session) LoginPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Logout clears the session. It is safe to call when nobody is logged in.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CurrentUser returns the authenticated user, or nil.
func (s *Session) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *Session) finish(p *PendingLogin, commit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != p {
		return
	}
	s.pending = nil
	if commit {
		s.current = p.user
	}
}

// PendingLogin is a login whose credentials were accepted but whose delay
// has not elapsed yet.
type PendingLogin struct {
	session *Session
	user    *domain.User
	timer   *time.Timer

	once sync.Once
	done chan struct{}
	err  error
}

// User returns the user that will be logged in.
func (p *PendingLogin) User() *domain.User {
	return p.user
}

// Wait blocks until the delay elapses and then activates the session.
// If ctx ends first the login is abandoned and ctx.Err() is returned.
func (p *PendingLogin) Wait(ctx context.Context) (*domain.User, error) {
	select {
	case <-p.timer.C:
		p.complete(nil)
	case <-ctx.Done():
		p.complete(ctx.Err())
	case <-p.done:
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.user, nil
}

// Cancel abandons the login. The session stays as it was.
func (p *PendingLogin) Cancel() {
	p.complete(context.Canceled)
}

func (p *PendingLogin) complete(err error) {
	p.once.Do(func() {
		p.timer.Stop()
		p.err = err
		p.session.finish(p, err == nil)
		close(p.done)
	})
}
