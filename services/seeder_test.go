package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-orders/models"
	"hotel-orders/services"
)

func TestSeeder_SeedsOnceAndReports(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seeder := services.NewSeeder(s.customers, s.rooms, s.billing)

	require.NoError(t, seeder.Seed(ctx))
	require.NoError(t, seeder.Seed(ctx), "second run is a no-op")

	rooms, err := s.rooms.GetAllRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	customers, err := s.customers.GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	bills, err := s.billing.GetAllBills(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.InDelta(t, 150.0, bills[0].Amount, 1e-9)

	with, err := s.customers.GetCustomersWithBills(ctx)
	require.NoError(t, err)
	require.Len(t, with, 1)
	assert.Equal(t, "John Doe", with[0].Name)
	assert.Equal(t, "5551234", with[0].Phone)
	require.NotNil(t, with[0].RoomID)
	assert.Equal(t, uint(101), *with[0].RoomID)

	available, err := s.rooms.GetAvailableRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	revenue, err := s.billing.GetTotalRevenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, revenue, 1e-9)
}

func TestSeeder_SkipsWhenCustomersExist(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	require.NoError(t, s.customers.AddCustomer(ctx, models.NewCustomer("Walk-in", "", "")))

	require.NoError(t, services.NewSeeder(s.customers, s.rooms, s.billing).Seed(ctx))

	rooms, err := s.rooms.GetAllRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
