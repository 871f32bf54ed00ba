package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-orders/internal/testdb"
	"hotel-orders/models"
	"hotel-orders/repository"
)

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestCustomerRepository_SaveWithRoomAndBills(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testdb.Open(t))

	room := models.NewRoom(101, "First Floor", true)
	require.NoError(t, store.Rooms.Save(ctx, room))

	john := models.NewCustomer("John Doe", "123 Main St", "5551234")
	john.AssignRoom(room)
	john.AddBill(models.NewBill(150, nil))
	john.AddBill(models.NewBill(42.5, nil))
	require.NoError(t, store.Customers.Save(ctx, john))

	got, err := store.Customers.FindByID(ctx, john.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Room)
	assert.Equal(t, uint(101), got.Room.RoomNo)
	require.Len(t, got.Bills, 2)
	for _, b := range got.Bills {
		assert.Equal(t, john.ID, b.CustomerID)
	}
}

func TestCustomerRepository_UnknownRoomIsConstraint(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCustomerRepository(testdb.Open(t))

	c := models.NewCustomer("Nobody", "", "")
	c.AssignRoom(models.NewRoom(999, "", false))
	err := repo.Save(ctx, c)

	require.Error(t, err)
	assert.True(t, repository.IsConstraint(err), "got %v", err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed save leaves nothing behind")
}

func TestCustomerRepository_DeleteCascadesToBillsAndFood(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	store := repository.NewStore(db)

	pasta := models.NewFoodItem("Pasta", 12)
	require.NoError(t, store.FoodItems.Save(ctx, pasta))

	john := models.NewCustomer("John Doe", "", "")
	john.AddBill(models.NewBill(150, nil))
	require.NoError(t, store.Customers.Save(ctx, john))
	require.NoError(t, store.Customers.AttachFood(ctx, john, pasta))
	require.EqualValues(t, 1, countRows(t, db, "customer_food"))

	require.NoError(t, store.Customers.Delete(ctx, john))

	assert.EqualValues(t, 0, countRows(t, db, "bills"))
	assert.EqualValues(t, 0, countRows(t, db, "customer_food"))
	_, err := store.FoodItems.FindByID(ctx, pasta.ID)
	assert.NoError(t, err, "food items outlive their customers")
}

func TestCustomerRepository_AttachFood(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	store := repository.NewStore(db)

	john := models.NewCustomer("John Doe", "", "")
	require.NoError(t, store.Customers.Save(ctx, john))

	pasta := models.NewFoodItem("Pasta", 12)
	soup := models.NewFoodItem("Soup", 6.5)
	require.NoError(t, store.Customers.AttachFood(ctx, john, pasta, soup))
	require.NotZero(t, pasta.ID, "new items are inserted")

	// attaching the same item again adds no row
	require.NoError(t, store.Customers.AttachFood(ctx, john, pasta))
	assert.EqualValues(t, 2, countRows(t, db, "customer_food"))

	got, err := store.Customers.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.Len(t, got.FoodItems, 2)
}

func TestCustomerRepository_AttachFoodToMissingCustomer(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCustomerRepository(testdb.Open(t))

	err := repo.AttachFood(ctx, &models.Customer{ID: 7}, models.NewFoodItem("Pasta", 12))
	assert.True(t, repository.IsNotFound(err))
}

func TestFoodItemRepository_DeleteDropsLinks(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	store := repository.NewStore(db)

	john := models.NewCustomer("John Doe", "", "")
	pasta := models.NewFoodItem("Pasta", 12)
	john.FoodItems = []*models.FoodItem{pasta}
	require.NoError(t, store.Customers.Save(ctx, john))
	require.EqualValues(t, 1, countRows(t, db, "customer_food"))

	require.NoError(t, store.FoodItems.Delete(ctx, pasta))

	assert.EqualValues(t, 0, countRows(t, db, "customer_food"))
	got, err := store.Customers.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FoodItems)
}

func TestFoodItemRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFoodItemRepository(testdb.Open(t))

	pasta := models.NewFoodItem("Pasta", 12)
	soup := models.NewFoodItem("Soup", 6.5)
	require.NoError(t, repo.Save(ctx, pasta))
	require.NoError(t, repo.Save(ctx, soup))

	items, err := repo.FindByIDs(ctx, []uint{soup.ID, 999, pasta.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Pasta", items[0].Name)
	assert.Equal(t, "Soup", items[1].Name)
}

func TestCustomerRepository_FailedSaveCanBeRetried(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := repository.NewCustomerRepository(db)

	john := models.NewCustomer("John Doe", "", "")
	bill := models.NewBill(150, nil)
	john.AddBill(bill)
	missing := &models.FoodItem{ID: 999, Name: "Ghost", Price: 1}
	john.FoodItems = []*models.FoodItem{missing}

	err := repo.Save(ctx, john)
	require.Error(t, err)
	assert.True(t, repository.IsConstraint(err), "got %v", err)

	assert.Zero(t, john.ID, "customer key cleared after rollback")
	assert.Zero(t, bill.BillNo, "bill key cleared after rollback")
	assert.Zero(t, bill.CustomerID)
	assert.EqualValues(t, 0, countRows(t, db, "customers"))
	assert.EqualValues(t, 0, countRows(t, db, "bills"))

	john.FoodItems = nil
	require.NoError(t, repo.Save(ctx, john))
	require.NotZero(t, john.ID)
	require.NotZero(t, bill.BillNo)

	got, err := repo.FindByID(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, got.Bills, 1)
	assert.Equal(t, bill.BillNo, got.Bills[0].BillNo)
}

func TestCustomerRepository_FailedSaveClearsNewFoodKeys(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := repository.NewCustomerRepository(db)

	soup := models.NewFoodItem("Soup", 6.5)
	missing := &models.FoodItem{ID: 999, Name: "Ghost"}
	guest := models.NewCustomer("Guest", "", "")
	guest.FoodItems = []*models.FoodItem{soup, missing}

	err := repo.Save(ctx, guest)
	require.Error(t, err)
	assert.Zero(t, guest.ID)
	assert.Zero(t, soup.ID, "item inserted inside the rolled back save has no key")
	assert.Equal(t, uint(999), missing.ID, "keys set by the caller are kept")
	assert.EqualValues(t, 0, countRows(t, db, "food_items"))

	guest.FoodItems = []*models.FoodItem{soup}
	require.NoError(t, repo.Save(ctx, guest))
	assert.NotZero(t, soup.ID)
	assert.EqualValues(t, 1, countRows(t, db, "customer_food"))
}
