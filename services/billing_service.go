package services

import (
	"context"
	"math"

	"hotel-orders/models"
	"hotel-orders/repository"
)

type BillingService struct {
	repo repository.Repository[models.Bill, uint]
}

func NewBillingService(repo repository.Repository[models.Bill, uint]) *BillingService {
	return &BillingService{repo: repo}
}

// CreateBill saves the bill. When the bill carries its in-memory customer,
// the saved bill is appended to that customer's Bills so the association
// is visible without a reload.
func (s *BillingService) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.Customer != nil {
		bill.CustomerID = bill.Customer.ID
	}
	if bill.CustomerID == 0 {
		return ErrBillWithoutCustomer
	}
	if err := s.repo.Save(ctx, bill); err != nil {
		return err
	}
	if bill.Customer != nil {
		bill.Customer.AddBill(bill)
	}
	return nil
}

func (s *BillingService) GetAllBills(ctx context.Context) ([]models.Bill, error) {
	return s.repo.FindAll(ctx)
}

// GetTotalRevenue sums every bill amount, rounded to cents.
func (s *BillingService) GetTotalRevenue(ctx context.Context) (float64, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, b := range bills {
		total += b.Amount
	}
	return math.Round(total*100) / 100, nil
}

// BillsWithCustomer keeps the bills whose customer row could be loaded.
func (s *BillingService) BillsWithCustomer(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if b.Customer != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BillingService) BillsForCustomer(ctx context.Context, customerID uint) ([]models.Bill, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Bill
	for _, b := range bills {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BillingService) DeleteBill(ctx context.Context, billNo uint) error {
	return s.repo.Delete(ctx, &models.Bill{BillNo: billNo})
}
