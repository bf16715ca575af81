package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
)

type ProfileView struct {
	UserID               string    `json:"userId"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	Bio                  string    `json:"bio"`
	AvatarURL            *string   `json:"avatarUrl"`
	Level                int       `json:"level"`
	Experience           int       `json:"experience"`
	NextLevelExperience  int       `json:"nextLevelExperience"`
	DailyNotifications   bool      `json:"dailyNotifications"`
	MissionNotifications bool      `json:"missionNotifications"`
	DarkTheme            bool      `json:"darkTheme"`
	Premium              bool      `json:"premium"`
	JoinedAt             time.Time `json:"joinedAt"`
}

func newProfileView(u *domain.User, p *domain.Profile) *ProfileView {
	return &ProfileView{
		UserID:               u.ID.String(),
		Username:             u.Username,
		Email:                u.Email,
		Bio:                  p.Bio,
		AvatarURL:            p.AvatarURL,
		Level:                p.Level,
		Experience:           p.Experience,
		NextLevelExperience:  p.NextLevelExperience(),
		DailyNotifications:   p.DailyNotifications,
		MissionNotifications: p.MissionNotifications,
		DarkTheme:            p.DarkTheme,
		Premium:              p.Premium,
		JoinedAt:             u.CreatedAt,
	}
}

type AccountUpdate struct {
	Username *string
	Email    *string
}

type ProfileUseCase struct {
	users    UserStore
	profiles ProfileStore
}

func NewProfileUseCase(users UserStore, profiles ProfileStore) *ProfileUseCase {
	return &ProfileUseCase{users: users, profiles: profiles}
}

// GetProfile creates the profile on first access.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newProfileView(user, profile), nil
}

func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, settings domain.ProfileSettings) (*ProfileView, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.UpdateSettings(ctx, userID, settings)
	if err != nil {
		return nil, err
	}
	return newProfileView(user, profile), nil
}

// UpdateAccount changes username and/or email. Every taken value is reported,
// not just the first one.
func (uc *ProfileUseCase) UpdateAccount(ctx context.Context, userID uuid.UUID, upd AccountUpdate) (*ProfileView, error) {
	invalid := domain.NewValidationError()
	updates := map[string]interface{}{}

	if upd.Username != nil {
		username := strings.TrimSpace(*upd.Username)
		if n := len([]rune(username)); n < 3 || n > 50 {
			invalid.Add("username", "must be between 3 and 50 characters")
		} else {
			updates["username"] = username
		}
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if !strings.Contains(email, "@") || len(email) > 100 {
			invalid.Add("email", "must be a valid email address")
		} else {
			updates["email"] = email
		}
	}
	if err := invalid.Err(); err != nil {
		return nil, err
	}

	conflict := domain.NewConflictError()
	if v, ok := updates["username"].(string); ok {
		if err := checkTaken(ctx, uc.users, conflict, "username", v, userID, msgUsernameTaken); err != nil {
			return nil, err
		}
	}
	if v, ok := updates["email"].(string); ok {
		if err := checkTaken(ctx, uc.users, conflict, "email", v, userID, msgEmailTaken); err != nil {
			return nil, err
		}
	}
	if err := conflict.Err(); err != nil {
		return nil, err
	}

	if err := uc.users.UpdateAccount(ctx, userID, updates); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, userID)
}
