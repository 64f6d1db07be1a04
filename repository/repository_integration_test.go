//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/krishkalaria12/vitalplan-api/database"
	"github.com/krishkalaria12/vitalplan-api/models"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("vitalplan"),
		postgres.WithUsername("vitalplan"),
		postgres.WithPassword("vitalplan"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(dsn, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, users *repository.Users, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "hash", Name: "Test", IsActive: true}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestRepositories(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	users := repository.NewUsers(db)
	alice := createUser(t, users, "Alice@Example.com")
	bob := createUser(t, users, "bob@example.com")

	t.Run("users", func(t *testing.T) {
		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		err = users.Create(ctx, &models.User{Email: "ALICE@example.com", Password: "x", Name: "dup"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)

		_, err = users.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("goals soft delete", func(t *testing.T) {
		goals := repository.NewGoals(db)
		g := &models.Goal{UserID: alice.ID, Type: "muscle-building", Title: "Gain", Priority: "high"}
		require.NoError(t, goals.Create(ctx, g))

		list, err := goals.ListActive(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Gain", list[0].Title)

		assert.ErrorIs(t, goals.Deactivate(ctx, bob.ID, g.ID), repository.ErrNotFound)
		require.NoError(t, goals.Deactivate(ctx, alice.ID, g.ID))

		list, err = goals.ListActive(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		stored, err := goals.Get(ctx, alice.ID, g.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("diet plans", func(t *testing.T) {
		plans := repository.NewDietPlans(db)
		older := &models.DietPlan{UserID: alice.ID, Name: "A", Macros: datatypes.JSON(`{"protein":150}`)}
		require.NoError(t, plans.Create(ctx, older))
		newer := &models.DietPlan{UserID: alice.ID, Name: "B", AIRecommendations: datatypes.JSONSlice[string]{"eat greens"}}
		require.NoError(t, plans.Create(ctx, newer))

		list, err := plans.ListActive(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "B", list[0].Name)
		assert.JSONEq(t, `{"protein":150}`, string(list[1].Macros))

		_, err = plans.Get(ctx, bob.ID, older.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("orders", func(t *testing.T) {
		orders := repository.NewOrders(db)
		o := &models.Order{
			UserID: alice.ID,
			Items:  datatypes.JSONSlice[models.OrderItem]{{ID: "market-1", Name: "Whey", Quantity: 2, Price: 49.99}},
			Total:  99.98,
			Status: models.OrderPending,
		}
		require.NoError(t, orders.Create(ctx, o))

		require.NoError(t, orders.UpdateStatus(ctx, alice.ID, o.ID, models.OrderShipped))
		assert.ErrorIs(t, orders.UpdateStatus(ctx, bob.ID, o.ID, models.OrderDelivered), repository.ErrNotFound)

		got, err := orders.Get(ctx, alice.ID, o.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderShipped, got.Status)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 2, got.Items[0].Quantity)
	})

	t.Run("scans hard delete and history order", func(t *testing.T) {
		scans := repository.NewScans(db)
		now := time.Now().UTC()
		first := &models.ScannedFood{UserID: alice.ID, Name: "Apple", AnalyzedAt: now.Add(-time.Hour)}
		second := &models.ScannedFood{UserID: alice.ID, Name: "Pear", AnalyzedAt: now}
		require.NoError(t, scans.Create(ctx, first))
		require.NoError(t, scans.Create(ctx, second))

		history, err := scans.History(ctx, alice.ID, 1)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "Pear", history[0].Name)

		require.NoError(t, scans.Delete(ctx, alice.ID, second.ID))
		assert.ErrorIs(t, scans.Delete(ctx, alice.ID, second.ID), repository.ErrNotFound)

		history, err = scans.History(ctx, alice.ID, 50)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "Apple", history[0].Name)
	})
}
