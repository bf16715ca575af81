package repository

import (
	"context"

	"github.com/waste3d/mindwell-api/internal/domain"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

// Feed returns posts of every user, newest first, with the author's username.
func (r *PostRepository) Feed(ctx context.Context, limit, offset int) ([]domain.FeedItem, error) {
	var items []domain.FeedItem
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, users.username, posts.content, posts.likes, posts.created_at").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at desc").
		Order("posts.id desc").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error
	return items, translate(err)
}
