package implementation

import (
	"context"
	"errors"

	"devlabs-intake-be/internal/entity"
	"devlabs-intake-be/internal/mapper"
	"devlabs-intake-be/internal/model"
	"devlabs-intake-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepositoryImpl struct {
	db            *gorm.DB
	mapper        *mapper.PreferenceMapper
	defaultLocale string
}

func NewPreferenceRepository(db *gorm.DB, defaultLocale string) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:            db,
		mapper:        mapper.NewPreferenceMapper(),
		defaultLocale: defaultLocale,
	}
}

// load fetches the user's preference row, or an in-memory default when
// the user has never been seen.
func (r *PreferenceRepositoryImpl) load(ctx context.Context, userId int64) (*entity.Preference, error) {
	var m model.Preference
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Preference{
				UserId:          userId,
				Language:        r.defaultLocale,
				PendingMessages: []string{},
			}, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PreferenceRepositoryImpl) upsert(ctx context.Context, pref *entity.Preference) error {
	m := r.mapper.ToModel(pref)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
}

func (r *PreferenceRepositoryImpl) GetLanguage(ctx context.Context, userId int64, fallback string) (string, error) {
	pref, err := r.load(ctx, userId)
	if err != nil {
		return fallback, err
	}
	if pref.Language == "" {
		return fallback, nil
	}
	return pref.Language, nil
}

func (r *PreferenceRepositoryImpl) SetLanguage(ctx context.Context, userId int64, language string) error {
	pref, err := r.load(ctx, userId)
	if err != nil {
		return err
	}
	pref.Language = language
	return r.upsert(ctx, pref)
}

func (r *PreferenceRepositoryImpl) AppendMessage(ctx context.Context, userId int64, text string) error {
	pref, err := r.load(ctx, userId)
	if err != nil {
		return err
	}
	pref.PendingMessages = append(pref.PendingMessages, text)
	return r.upsert(ctx, pref)
}

func (r *PreferenceRepositoryImpl) GetMessages(ctx context.Context, userId int64) ([]string, error) {
	pref, err := r.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	return pref.PendingMessages, nil
}

func (r *PreferenceRepositoryImpl) ClearMessages(ctx context.Context, userId int64) error {
	pref, err := r.load(ctx, userId)
	if err != nil {
		return err
	}
	pref.PendingMessages = []string{}
	return r.upsert(ctx, pref)
}

func (r *PreferenceRepositoryImpl) ListUserIds(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Preference{}).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
