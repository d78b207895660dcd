package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/repository/dao"
)

var (
	ErrActivityNotFound   = dao.ErrActivityNotFound
	ErrActivityIDConflict = dao.ErrActivityIDConflict
)

type ActivityDAO interface {
	FindAll(ctx context.Context) ([]dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	InsertNext(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Seed(ctx context.Context, activities []dao.Activity) error
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	activities := make([]domain.Activity, 0, len(found))
	for _, a := range found {
		activities = append(activities, r.daoToDomain(a))
	}

	return activities, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Create ignores activity.ID; the DAO assigns the next free id.
func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.InsertNext(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.InsertNext -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) Seed(ctx context.Context, activities []domain.Activity) error {
	rows := make([]dao.Activity, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, r.domainToDao(a))
	}

	if err := r.dao.Seed(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.Seed -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:             a.ID,
		ImageName:      a.ImageName,
		Name:           a.Name,
		Description:    a.Description,
		Category:       a.Category,
		PriceRange:     a.PriceRange,
		Popularity:     a.Popularity,
		DietaryOptions: a.DietaryOptions,
	}
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:             a.ID,
		ImageName:      a.ImageName,
		Name:           a.Name,
		Description:    a.Description,
		Category:       a.Category,
		PriceRange:     a.PriceRange,
		Popularity:     a.Popularity,
		DietaryOptions: a.DietaryOptions,
	}
}
