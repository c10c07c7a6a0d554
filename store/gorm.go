package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-backend/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// GormStore is the PostgreSQL implementation of Store.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UpsertPost(ctx context.Context, post *models.Post) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "title", "body"}),
	}).Create(post).Error
	return translateError(err)
}

func (s *GormStore) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&post).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (s *GormStore) ListPosts(ctx context.Context, q ListQuery) ([]models.Post, int64, error) {
	// a fresh chain per statement, Count must not leak into Find
	filtered := func() *gorm.DB {
		tx := s.db.WithContext(ctx).Model(&models.Post{})
		if q.Filter != "" {
			pattern := "%" + escapeLike(q.Filter) + "%"
			tx = tx.Where("title ILIKE ? OR body ILIKE ?", pattern, pattern)
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	posts := []models.Post{}
	if err := filtered().Order("id ASC").Offset(q.Offset).Limit(q.Limit).Find(&posts).Error; err != nil {
		return nil, 0, translateError(err)
	}
	return posts, total, nil
}

func (s *GormStore) CreateLike(ctx context.Context, like *models.LikedPost) error {
	return translateError(s.db.WithContext(ctx).Create(like).Error)
}

func (s *GormStore) DeleteLike(ctx context.Context, userID string, postID int) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.LikedPost{})
	return res.RowsAffected, translateError(res.Error)
}

func (s *GormStore) DeleteAllLikes(ctx context.Context, userID string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.LikedPost{})
	return res.RowsAffected, translateError(res.Error)
}

func (s *GormStore) LikedPostIDs(ctx context.Context, userID string, postIDs []int) (map[int]bool, error) {
	liked := make(map[int]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []int
	err := s.db.WithContext(ctx).
		Model(&models.LikedPost{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (s *GormStore) LikedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.WithContext(ctx).
		Joins("JOIN liked_posts ON liked_posts.post_id = posts.id").
		Where("liked_posts.user_id = ?", userID).
		Order("posts.id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

func (s *GormStore) UpsertUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attributes", "updated_at"}),
	}).Create(user).Error
	return translateError(err)
}

func (s *GormStore) GetUser(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("external_id = ?", externalID).Take(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translateError maps GORM and PostgreSQL errors to the store sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrMissingReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Message)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrMissingReference, pgErr.Message)
		}
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
