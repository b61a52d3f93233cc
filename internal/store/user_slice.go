package store

import "sixcities/internal/domain"

type userState struct {
	authStatus domain.AuthStatus
	info       *domain.UserInfo
}

func newUserState() userState {
	return userState{authStatus: domain.AuthUnknown}
}

func (s *Store) sessionConfirmed(info *domain.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.authStatus = domain.AuthAuthorized
	s.user.info = info
}

func (s *Store) sessionRejected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.authStatus = domain.AuthUnauthorized
	s.user.info = nil
}

// ForceUnauthorized is the target of the transport-level 401 hook: any
// unauthorized response anywhere drops the session, independent of which
// action produced it.
func (s *Store) ForceUnauthorized() {
	s.sessionRejected()
}

func (s *Store) AuthStatus() domain.AuthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.authStatus
}

func (s *Store) UserInfo() *domain.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.info == nil {
		return nil
	}
	info := *s.user.info
	return &info
}
