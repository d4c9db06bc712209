package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/blog-service/internal/models"
)

// newTestStore connects to the database named by POSTGRES_TEST_DSN, or skips.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := NewPostgresStore(pool)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// uniq returns a value that cannot collide with rows left by earlier runs.
func uniq(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func TestPostgresStore_UserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	username := uniq("alice")
	email := uniq("a") + "@x.com"

	u, err := s.CreateUser(ctx, username, email, "hashed-pw")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	byName, err := s.GetUserByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "hashed-pw", byName.Password)

	byEmail, err := s.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, username, byID.Username)

	_, err = s.GetUserByUsername(ctx, uniq("nobody"))
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestPostgresStore_UniqueViolationsMapToDomainErrors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	username := uniq("alice")
	email := uniq("a") + "@x.com"
	_, err := s.CreateUser(ctx, username, email, "pw")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, username, uniq("b")+"@y.com", "pw")
	assert.ErrorIs(t, err, models.ErrExistingUsername)

	_, err = s.CreateUser(ctx, uniq("bob"), email, "pw")
	assert.ErrorIs(t, err, models.ErrExistingEmail)
}

func TestPostgresStore_BlogRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, uniq("alice"), uniq("a")+"@x.com", "pw")
	require.NoError(t, err)

	b, err := s.CreateBlog(ctx, u.ID, "Hi", "Hello")
	require.NoError(t, err)
	assert.NotZero(t, b.ID)

	blogs, err := s.ListBlogsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, b.ID, blogs[0].ID)
	assert.Equal(t, "Hi", blogs[0].Title)

	// foreign-key violation maps to the owner-not-found domain error
	_, err = s.CreateBlog(ctx, -1, "Hi", "Hello")
	assert.ErrorIs(t, err, models.ErrOwnerNotFound)

	empty, err := s.ListBlogsByUser(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
