package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-orders/models"
)

func TestUndoRestoresOldestSnapshot(t *testing.T) {
	bill := &models.Bill{Amount: 10}
	u := &undo{}

	snapshot(u, bill)
	bill.BillNo = 3
	snapshot(u, bill)
	bill.BillNo = 4
	bill.CustomerID = 9

	u.run()
	assert.Equal(t, models.Bill{Amount: 10}, *bill)

	var none *models.Bill
	snapshot(u, none)
	assert.NotPanics(t, u.run)
}
