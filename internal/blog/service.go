package blog

import (
	"context"
	"errors"

	"github.com/ayush/blog-service/internal/models"
)

// ErrMissingFields is reported before any store access happens.
var ErrMissingFields = errors.New("user id, title, and content are required")

// BlogStore defines the interface for blog persistence.
type BlogStore interface {
	CreateBlog(ctx context.Context, userID int64, title, content string) (*models.Blog, error)
	ListBlogsByUser(ctx context.Context, userID int64) ([]models.Blog, error)
}

// UserStore is the subset of user persistence needed to validate owners.
type UserStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Service implements blog creation and listing.
type Service struct {
	blogs BlogStore
	users UserStore
}

func NewService(blogs BlogStore, users UserStore) *Service {
	return &Service{blogs: blogs, users: users}
}

// CreateBlog inserts a blog after verifying the owner exists. The blogs
// foreign key still rejects the insert if the owner disappears between the
// check and the write.
func (s *Service) CreateBlog(ctx context.Context, req models.CreateBlogRequest) (int64, error) {
	if req.UserID == 0 || req.Title == "" || req.Content == "" {
		return 0, ErrMissingFields
	}

	if _, err := s.users.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return 0, models.ErrOwnerNotFound
		}
		return 0, err
	}

	b, err := s.blogs.CreateBlog(ctx, req.UserID, req.Title, req.Content)
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}

// ListBlogs returns all blogs owned by userID. An empty result is reported
// as ErrNoBlogs; owner existence is deliberately not checked, so an unknown
// owner behaves the same as an owner with no blogs.
func (s *Service) ListBlogs(ctx context.Context, userID int64) ([]models.Blog, error) {
	blogs, err := s.blogs.ListBlogsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, models.ErrNoBlogs
	}
	return blogs, nil
}
