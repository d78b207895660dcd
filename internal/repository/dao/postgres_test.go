package dao

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register the pgx database/sql driver.
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestPostgres starts a throwaway postgres container. The test is skipped
// in -short mode or when docker is not reachable.
func openTestPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool(os.Getenv("DOCKER_HOST"))
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=oktoberfest",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s/oktoberfest?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		sqlDB, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestActivityDAO_Postgres(t *testing.T) {
	db := openTestPostgres(t)
	ctx := context.Background()
	d := NewActivityDAO(db)

	first, err := d.InsertNext(ctx, Activity{Name: "first", Description: "first activity", Category: "c", PriceRange: "p", Popularity: "x", DietaryOptions: "N/A"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)

	require.NoError(t, d.Seed(ctx, []Activity{{ID: 99, Name: "ignored"}}))

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = d.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	require.NoError(t, db.Exec("DELETE FROM activities").Error)
	require.NoError(t, d.Seed(ctx, []Activity{
		{ID: 1, Name: "one", Description: "d", Category: "c", PriceRange: "p", Popularity: "x", DietaryOptions: "N/A"},
		{ID: 10, Name: "ten", Description: "d", Category: "c", PriceRange: "p", Popularity: "x", DietaryOptions: "N/A"},
	}))

	next, err := d.InsertNext(ctx, Activity{Name: "eleven", Description: "d", Category: "c", PriceRange: "p", Popularity: "x", DietaryOptions: "N/A"})
	require.NoError(t, err)
	assert.Equal(t, uint(11), next.ID)

	found, err := d.FindByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "eleven", found.Name)

	all, err = d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{1, 10, 11}, []uint{all[0].ID, all[1].ID, all[2].ID})
}

func TestTicketDAO_Postgres(t *testing.T) {
	db := openTestPostgres(t)
	ctx := context.Background()
	d := NewTicketDAO(db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := d.Insert(ctx, TicketOrder{Name: "Jo", Email: "jo@example.com", Phone: "1234567890", TicketType: "VIP Pass", Quantity: 2, Status: "pending", CreatedAt: now})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Quantity)
	assert.True(t, now.Equal(all[0].CreatedAt.UTC()))
}
