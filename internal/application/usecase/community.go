package usecase

import (
	"context"
	"strings"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type CommunityUseCase struct {
	posts PostStore
	users UserStore
}

func NewCommunityUseCase(posts PostStore, users UserStore) *CommunityUseCase {
	return &CommunityUseCase{posts: posts, users: users}
}

// Feed pages through posts of all users, newest first.
func (uc *CommunityUseCase) Feed(ctx context.Context, limit, offset int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := uc.posts.Feed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.FeedItem{}
	}
	return items, nil
}

func (uc *CommunityUseCase) Publish(ctx context.Context, userID uuid.UUID, content string) (*domain.FeedItem, error) {
	post := &domain.Post{UserID: userID, Content: strings.TrimSpace(content)}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return &domain.FeedItem{
		ID:        post.ID,
		Username:  user.Username,
		Content:   post.Content,
		Likes:     post.Likes,
		CreatedAt: post.CreatedAt,
	}, nil
}
