package utils_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-orders/models"
	"hotel-orders/repository"
	"hotel-orders/services"
	"hotel-orders/utils"
)

func TestStatusFor(t *testing.T) {
	invalidName := services.NewFoodService(nil).AddFoodItem(context.Background(), models.NewFoodItem("", 1))

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing row", &repository.NotFoundError{Entity: "Client", ID: 7}, http.StatusNotFound},
		{"constraint", &repository.PersistenceError{Kind: repository.KindConstraint, Err: errors.New("dup")}, http.StatusConflict},
		{"rejected by repository", &repository.PersistenceError{Kind: repository.KindInvalid, Err: errors.New("bad")}, http.StatusBadRequest},
		{"rejected by service", invalidName, http.StatusBadRequest},
		{"bill without customer", fmt.Errorf("create: %w", services.ErrBillWithoutCustomer), http.StatusBadRequest},
		{"connectivity", &repository.PersistenceError{Kind: repository.KindConnectivity, Err: errors.New("refused")}, http.StatusInternalServerError},
		{"cancelled request", fmt.Errorf("list clients: %w", context.Canceled), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.StatusFor(tc.err))
		})
	}
}

func TestBillWithoutCustomerIsInvalidInput(t *testing.T) {
	assert.ErrorIs(t, services.ErrBillWithoutCustomer, services.ErrInvalidInput)
	assert.EqualError(t, services.ErrBillWithoutCustomer, "invalid input: bill has no customer")
}
