package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"

	"go.uber.org/zap"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/repository"
	"github.com/vietanh2810/oktoberfest-api/internal/storage"
)

var (
	ErrActivityNotFound   = repository.ErrActivityNotFound
	ErrActivityIDConflict = repository.ErrActivityIDConflict
	ErrInvalidImageName   = storage.ErrInvalidImageName
	ErrImageTooLarge      = storage.ErrImageTooLarge
)

// ImagesDir is the public path prefix of uploaded activity images.
const ImagesDir = "images"

type ActivityRepository interface {
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
}

// ImageStore persists an uploaded image and reports the file name it was stored under.
type ImageStore interface {
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, name string) error
}

type ActivityService struct {
	repo   ActivityRepository
	images ImageStore
}

func NewActivityService(repo ActivityRepository, images ImageStore) *ActivityService {
	return &ActivityService{
		repo:   repo,
		images: images,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}

// CreateActivity validates req before touching the image store or the
// repository, so a rejected request leaves no trace.
func (s *ActivityService) CreateActivity(ctx context.Context, req request.CreateActivityRequest, image *multipart.FileHeader) (domain.Activity, error) {
	if err := req.Validate(); err != nil {
		return domain.Activity{}, err
	}

	activity := domain.Activity{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		PriceRange:     req.PriceRange,
		Popularity:     req.Popularity,
		DietaryOptions: req.DietaryOptions,
	}
	if activity.DietaryOptions == "" {
		activity.DietaryOptions = domain.DefaultDietaryOptions
	}

	var storedImage string
	if image != nil {
		if s.images == nil {
			return domain.Activity{}, errors.New("no image store configured")
		}

		stored, err := s.images.Store(ctx, image)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("s.images.Store -> %w", err)
		}
		activity.ImageName = path.Join(ImagesDir, stored)
		storedImage = stored
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		if storedImage != "" {
			if rmErr := s.images.Remove(ctx, storedImage); rmErr != nil {
				zap.L().Warn("failed to remove image of rejected activity", zap.String("image", storedImage), zap.Error(rmErr))
			}
		}
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
