package store

import "sixcities/internal/domain"

// setServerError is called only by rejections that carry a structured
// payload; rejections without one leave the slice untouched.
func (s *Store) setServerError(e *domain.ServerError) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.srvErr = e
}

// ResetError clears the current server error. The UI dispatches it on every
// form edit so stale validation feedback does not linger.
func (s *Store) ResetError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.srvErr = nil
}

func (s *Store) ServerError() *domain.ServerError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srvErr == nil {
		return nil
	}
	e := *s.srvErr
	return &e
}
