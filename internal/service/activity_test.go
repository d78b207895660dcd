package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/repository"
	"github.com/vietanh2810/oktoberfest-api/internal/repository/dao"
)

type stubImageStore struct {
	stored  []string
	removed []string
	err     error
}

func (s *stubImageStore) Remove(_ context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}

func (s *stubImageStore) Store(_ context.Context, file *multipart.FileHeader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.stored = append(s.stored, file.Filename)
	return file.Filename, nil
}

func newActivityService(t *testing.T, seed []domain.Activity, images ImageStore) (*ActivityService, *repository.ActivityRepository) {
	t.Helper()

	repo := repository.NewActivityRepository(dao.NewMemoryActivityDAO())
	require.NoError(t, repo.Seed(context.Background(), seed))

	return NewActivityService(repo, images), repo
}

func fileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func validCreateActivity() request.CreateActivityRequest {
	return request.CreateActivityRequest{
		Name:        "Barrel Rolling",
		Description: "Roll a barrel across the festival grounds against the clock.",
		Category:    "Activities",
		PriceRange:  "$3",
		Popularity:  "Moderate",
	}
}

func TestActivityService_CreateActivity_AssignsNextID(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded store", func(t *testing.T) {
		svc, _ := newActivityService(t, domain.SeedActivities(), nil)

		created, err := svc.CreateActivity(ctx, validCreateActivity(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint(11), created.ID)
		assert.Equal(t, domain.DefaultDietaryOptions, created.DietaryOptions)
		assert.Empty(t, created.ImageName)

		all, err := svc.ListActivities(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 11)
		assert.Equal(t, created, all[10])
	})

	t.Run("empty store", func(t *testing.T) {
		svc, _ := newActivityService(t, nil, nil)

		created, err := svc.CreateActivity(ctx, validCreateActivity(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
	})

	t.Run("gaps in ids", func(t *testing.T) {
		svc, _ := newActivityService(t, []domain.Activity{{ID: 2}, {ID: 40}, {ID: 7}}, nil)

		created, err := svc.CreateActivity(ctx, validCreateActivity(), nil)
		require.NoError(t, err)
		assert.Equal(t, uint(41), created.ID)
	})
}

func TestActivityService_CreateActivity_KeepsDietaryOptions(t *testing.T) {
	svc, _ := newActivityService(t, nil, nil)

	req := validCreateActivity()
	req.DietaryOptions = "Vegan"

	created, err := svc.CreateActivity(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, "Vegan", created.DietaryOptions)
}

func TestActivityService_CreateActivity_WithImage(t *testing.T) {
	images := &stubImageStore{}
	svc, _ := newActivityService(t, nil, images)

	created, err := svc.CreateActivity(context.Background(), validCreateActivity(), fileHeader(t, "barrel.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "images/barrel.jpg", created.ImageName)
	assert.Equal(t, []string{"barrel.jpg"}, images.stored)
}

func TestActivityService_CreateActivity_ValidationLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	images := &stubImageStore{}
	svc, _ := newActivityService(t, domain.SeedActivities(), images)

	req := validCreateActivity()
	req.Name = "ab"

	_, err := svc.CreateActivity(ctx, req, fileHeader(t, "barrel.jpg"))
	var verr *request.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	all, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
	assert.Empty(t, images.stored, "rejected requests must not store their image")
}

func TestActivityService_CreateActivity_ImageStoreFailure(t *testing.T) {
	ctx := context.Background()
	images := &stubImageStore{err: ErrInvalidImageName}
	svc, _ := newActivityService(t, domain.SeedActivities(), images)

	_, err := svc.CreateActivity(ctx, validCreateActivity(), fileHeader(t, "barrel.jpg"))
	assert.ErrorIs(t, err, ErrInvalidImageName)

	all, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestActivityService_GetActivity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityService(t, domain.SeedActivities(), nil)

	first, err := svc.GetActivity(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Traditional Veterans Parade", first.Name)

	second, err := svc.GetActivity(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = svc.GetActivity(ctx, 9999)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

type failingActivityRepository struct {
	err error
}

func (r failingActivityRepository) FindAll(context.Context) ([]domain.Activity, error) {
	return nil, r.err
}

func (r failingActivityRepository) FindByID(context.Context, uint) (domain.Activity, error) {
	return domain.Activity{}, r.err
}

func (r failingActivityRepository) Create(context.Context, domain.Activity) (domain.Activity, error) {
	return domain.Activity{}, r.err
}

func TestActivityService_WrapsRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	svc := NewActivityService(failingActivityRepository{err: boom}, nil)

	_, err := svc.ListActivities(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateActivity(ctx, validCreateActivity(), nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s.repo.Create")
}

func TestActivityService_CreateActivity_RemovesImageWhenRepositoryFails(t *testing.T) {
	images := &stubImageStore{}
	svc := NewActivityService(failingActivityRepository{err: ErrActivityIDConflict}, images)

	_, err := svc.CreateActivity(context.Background(), validCreateActivity(), fileHeader(t, "barrel.jpg"))
	assert.ErrorIs(t, err, ErrActivityIDConflict)
	assert.Equal(t, []string{"barrel.jpg"}, images.stored)
	assert.Equal(t, []string{"barrel.jpg"}, images.removed)
}
