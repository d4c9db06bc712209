package auth

import (
	"context"
	"time"

	"github.com/ayush/blog-service/internal/models"
)

// inmemUsers is an in-memory UserStore mirroring the Postgres store's error
// contract, including duplicate detection at insert time.
type inmemUsers struct {
	nextID int64
	users  map[int64]*models.User
}

func newInmemUsers() *inmemUsers {
	return &inmemUsers{users: make(map[int64]*models.User)}
}

func (r *inmemUsers) CreateUser(_ context.Context, username, email, hashedPw string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return nil, models.ErrExistingUsername
		}
	}
	for _, u := range r.users {
		if u.Email == email {
			return nil, models.ErrExistingEmail
		}
	}
	r.nextID++
	u := &models.User{
		ID:        r.nextID,
		Username:  username,
		Email:     email,
		Password:  hashedPw,
		CreatedAt: time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *inmemUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *inmemUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *inmemUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}
