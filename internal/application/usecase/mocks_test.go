package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Taken(ctx context.Context, column, value string, except uuid.UUID) (bool, error) {
	args := m.Called(ctx, column, value, except)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) UpdateAccount(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileStore) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) UpdateProgress(ctx context.Context, userID uuid.UUID, fn func(*domain.Profile) error) (*domain.Profile, error) {
	args := m.Called(ctx, userID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) UpdateSettings(ctx context.Context, userID uuid.UUID, settings domain.ProfileSettings) (*domain.Profile, error) {
	args := m.Called(ctx, userID, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// memoryProfiles runs UpdateProgress callbacks for real against stored profiles.
type memoryProfiles struct {
	MockProfileStore
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.Profile
	fail     error
}

func newMemoryProfiles() *memoryProfiles {
	return &memoryProfiles{profiles: map[uuid.UUID]*domain.Profile{}}
}

func (s *memoryProfiles) UpdateProgress(_ context.Context, userID uuid.UUID, fn func(*domain.Profile) error) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return nil, s.fail
	}
	p, ok := s.profiles[userID]
	if !ok {
		p = domain.NewProfile(userID)
	}
	working := *p
	if err := fn(&working); err != nil {
		return nil, err
	}
	s.profiles[userID] = &working
	out := working
	return &out, nil
}

// memoryAchievements backs both the unlock engine and the listing.
type memoryAchievements struct {
	mu      sync.Mutex
	catalog []domain.Achievement
	unlocks []domain.AchievementUnlock
}

func (s *memoryAchievements) GetOrCreate(_ context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.catalog {
		if existing.Name == a.Name {
			out := existing
			return &out, nil
		}
	}
	created := *a
	created.ID = uint(len(s.catalog) + 1)
	s.catalog = append(s.catalog, created)
	return &created, nil
}

func (s *memoryAchievements) Unlock(_ context.Context, userID uuid.UUID, achievementID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.unlocks {
		if u.UserID == userID && u.AchievementID == achievementID {
			return domain.ErrConflict
		}
	}
	s.unlocks = append(s.unlocks, domain.AchievementUnlock{
		UserID:        userID,
		AchievementID: achievementID,
		Achievement:   s.catalog[achievementID-1],
		UnlockedAt:    time.Now(),
	})
	return nil
}

func (s *memoryAchievements) ListAll(context.Context) ([]domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Achievement(nil), s.catalog...), nil
}

func (s *memoryAchievements) ListUnlocks(_ context.Context, userID uuid.UUID) ([]domain.AchievementUnlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.AchievementUnlock
	for _, u := range s.unlocks {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out, nil
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) SaveRefresh(ctx context.Context, userID string, refreshToken string) error {
	return m.Called(ctx, userID, refreshToken).Error(0)
}

func (m *MockTokenStore) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(userID string) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenIssuer) ValidateRefreshToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockAchievementStore struct {
	mock.Mock
}

func (m *MockAchievementStore) ListAll(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementStore) ListUnlocks(ctx context.Context, userID uuid.UUID) ([]domain.AchievementUnlock, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AchievementUnlock), args.Error(1)
}

type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) EvaluateAction(ctx context.Context, userID uuid.UUID, actionType string) ([]string, error) {
	args := m.Called(ctx, userID, actionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type recorder struct {
	xp           int
	levels       int
	achievements []string
}

func (r *recorder) XPGranted(xp int) { r.xp += xp }
func (r *recorder) LevelsGained(n int) { r.levels += n }
func (r *recorder) AchievementUnlocked(name string) { r.achievements = append(r.achievements, name) }

type MockMoodLogStore struct {
	mock.Mock
}

func (m *MockMoodLogStore) Create(ctx context.Context, log *domain.MoodLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockMoodLogStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MoodLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodLog), args.Error(1)
}

func (m *MockMoodLogStore) Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.MoodLog, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoodLog), args.Error(1)
}

func (m *MockMoodLogStore) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockReminderStore struct {
	mock.Mock
}

func (m *MockReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	return m.Called(ctx, reminder).Error(0)
}

func (m *MockReminderStore) List(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderStore) Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.Reminder, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	return m.Called(ctx, reminder).Error(0)
}

func (m *MockReminderStore) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostStore) Feed(ctx context.Context, limit, offset int) ([]domain.FeedItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Generation(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsCache) Get(ctx context.Context, userID string, gen int64) (*dashboard.Stats, error) {
	args := m.Called(ctx, userID, gen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, userID string, gen int64, stats dashboard.Stats) error {
	return m.Called(ctx, userID, gen, stats).Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
