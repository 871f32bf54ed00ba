package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-orders/internal/testdb"
	"hotel-orders/models"
	"hotel-orders/repository"
)

func TestGormRepository_SaveAssignsIDAndFindByIDReturnsEqual(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Manager).Key)

	m := &models.Manager{Name: "Alice", Department: "Housekeeping"}
	require.NoError(t, repo.Save(ctx, m))
	require.NotZero(t, m.ID)

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestGormRepository_SaveRejectsAssignedSurrogateKey(t *testing.T) {
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Owner).Key)

	err := repo.Save(context.Background(), &models.Owner{ID: 3, Name: "Bob"})
	require.Error(t, err)
	assert.True(t, repository.IsInvalid(err))
}

func TestGormRepository_FindAllAfterNSaves(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Receptionist).Key)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Save(ctx, &models.Receptionist{Name: "r", ShiftHours: 8 + i}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)
	for i := 1; i < n; i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "ordered by key")
	}
}

func TestGormRepository_FindByIDMissing(t *testing.T) {
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Inventory).Key)

	got, err := repo.FindByID(context.Background(), 42)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	var nf *repository.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Inventory", nf.Entity)
	assert.Equal(t, uint(42), nf.ID)
}

func TestGormRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Inventory).Key)

	item := &models.Inventory{ItemName: "Towels", Quantity: 10}
	require.NoError(t, repo.Save(ctx, item))

	item.Quantity = 0
	item.ItemName = "Bath towels"
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bath towels", got.ItemName)
	assert.Equal(t, 0, got.Quantity, "zero values are written too")
}

func TestGormRepository_UpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Inventory).Key)

	err := repo.Update(ctx, &models.Inventory{ID: 99, ItemName: "ghost"})
	assert.True(t, repository.IsNotFound(err))

	err = repo.Update(ctx, &models.Inventory{ItemName: "no id"})
	assert.True(t, repository.IsInvalid(err))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGormRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormRepository(testdb.Open(t), (*models.Manager).Key)

	m := &models.Manager{Name: "Alice"}
	require.NoError(t, repo.Save(ctx, m))
	require.NoError(t, repo.Delete(ctx, m))

	_, err := repo.FindByID(ctx, m.ID)
	assert.True(t, repository.IsNotFound(err))

	err = repo.Delete(ctx, m)
	assert.True(t, repository.IsNotFound(err), "deleting an absent row reports not found")
}

func TestGormRepository_PreservesCreatedAtOnUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCustomerRepository(testdb.Open(t))

	c := models.NewCustomer("John Doe", "123 Main St", "5551234")
	require.NoError(t, repo.Save(ctx, c))
	stored, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)

	replacement := &models.Customer{ID: c.ID, Name: "John D.", Phone: "5550000"}
	require.NoError(t, repo.Update(ctx, replacement))

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "John D.", got.Name)
	assert.Empty(t, got.Address)
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
}
