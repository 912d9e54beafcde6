package snapshot

import (
	"strings"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/google/uuid"
)

// RegisterUser adds an account. Join-link signups arrive with status PENDING;
// the store does not second-guess the caller's choice of role or status.
func (s *Store) RegisterUser(user domain.User) domain.User {
	user.ID = uuid.NewString()
	s.mutate(func(next *domain.Snapshot) bool {
		next.Users = append(append([]domain.User{}, next.Users...), user)
		return true
	})
	return user
}

func (s *Store) UpdateUser(userID string, update domain.UserUpdate) *domain.User {
	var updated *domain.User
	s.mutate(func(next *domain.Snapshot) bool {
		users := append([]domain.User{}, next.Users...)
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			u := users[i]
			if update.FullName != nil {
				u.FullName = *update.FullName
			}
			if update.UnitID != nil {
				u.UnitID = *update.UnitID
			}
			if update.Role != nil {
				u.Role = *update.Role
			}
			if update.Status != nil {
				u.Status = *update.Status
			}
			if update.DateOfBirth != nil {
				u.DateOfBirth = *update.DateOfBirth
			}
			if update.AnniversaryDate != nil {
				u.AnniversaryDate = *update.AnniversaryDate
			}
			users[i] = u
			updated = &u
			next.Users = users
			return true
		}
		return false
	})
	return updated
}

// DeleteUser removes the account. References left in assignedTo or headIds
// are not cleaned up; dangling ids simply never resolve in joined views.
func (s *Store) DeleteUser(userID string) {
	s.mutate(func(next *domain.Snapshot) bool {
		users := make([]domain.User, 0, len(next.Users))
		for _, u := range next.Users {
			if u.ID != userID {
				users = append(users, u)
			}
		}
		next.Users = users
		return true
	})
}

func (s *Store) FindUserByID(userID string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findUser(s.snap.Users, userID)
}

func (s *Store) FindUserByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.Users {
		if strings.EqualFold(s.snap.Users[i].Email, email) {
			u := s.snap.Users[i]
			return &u
		}
	}
	return nil
}

func (s *Store) ListUsersByChurch(churchID string) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.User{}
	for _, u := range s.snap.Users {
		if u.ChurchID == churchID {
			out = append(out, u)
		}
	}
	return out
}

// ApproveUser sets status APPROVED unconditionally; approving an already
// approved user is a harmless repeat.
func (s *Store) ApproveUser(userID string) *domain.User {
	status := domain.UserApproved
	return s.UpdateUser(userID, domain.UserUpdate{Status: &status})
}

// ToggleAccountingAccess flips the flag. There is deliberately no way to set
// it to an explicit value.
func (s *Store) ToggleAccountingAccess(userID string) *domain.User {
	var updated *domain.User
	s.mutate(func(next *domain.Snapshot) bool {
		users := append([]domain.User{}, next.Users...)
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			u := users[i]
			u.HasAccountingAccess = !u.HasAccountingAccess
			users[i] = u
			updated = &u
			next.Users = users
			return true
		}
		return false
	})
	return updated
}

// Login matches by case-insensitive email and sets the snapshot's current
// user and derived current church. A miss leaves the session unchanged and is
// not signaled; the caller is responsible for pre-checking existence, pending
// approval and suspension before calling.
func (s *Store) Login(email string) *domain.User {
	var matched *domain.User
	s.mutate(func(next *domain.Snapshot) bool {
		for i := range next.Users {
			if strings.EqualFold(next.Users[i].Email, email) {
				u := next.Users[i]
				matched = &u
				next.CurrentUser = &u
				next.CurrentChurch = findChurch(next.Churches, u.ChurchID)
				return true
			}
		}
		return false
	})
	return matched
}

// Logout clears the session views.
func (s *Store) Logout() {
	s.mutate(func(next *domain.Snapshot) bool {
		next.CurrentUser = nil
		next.CurrentChurch = nil
		return true
	})
}
