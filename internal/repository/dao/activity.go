package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrActivityIDConflict = errors.New("activity id already taken")
)

type Activity struct {
	ID             uint `gorm:"primaryKey;autoIncrement:false"`
	ImageName      string
	Name           string `gorm:"not null"`
	Description    string `gorm:"not null"`
	Category       string `gorm:"not null"`
	PriceRange     string `gorm:"not null"`
	Popularity     string `gorm:"not null"`
	DietaryOptions string `gorm:"not null"`
	CreatedAt      time.Time
}

func (Activity) TableName() string {
	return "activities"
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) FindAll(ctx context.Context) ([]Activity, error) {
	activities := []Activity{}

	result := d.db.WithContext(ctx).Order("id ASC").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

// InsertNext assigns max(id)+1 to the activity and inserts it. The table lock
// keeps concurrent inserts from computing the same id.
func (d *ActivityDAO) InsertNext(ctx context.Context, activity Activity) (Activity, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE activities IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return fmt.Errorf("lock activities -> %w", err)
		}

		var maxID uint
		if err := tx.Model(&Activity{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fmt.Errorf("select max id -> %w", err)
		}

		activity.ID = maxID + 1

		return tx.Create(&activity).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Activity{}, ErrActivityIDConflict
		}

		return Activity{}, err
	}

	return activity, nil
}

// Seed inserts the given activities with their own ids, but only into an empty table.
func (d *ActivityDAO) Seed(ctx context.Context, activities []Activity) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Activity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(activities) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Create(&activities).Error
}
