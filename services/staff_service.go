package services

import (
	"context"

	"hotel-orders/models"
	"hotel-orders/repository"
)

// StaffService manages the standalone staff records.
type StaffService struct {
	managers      repository.Repository[models.Manager, uint]
	owners        repository.Repository[models.Owner, uint]
	receptionists repository.Repository[models.Receptionist, uint]
}

func NewStaffService(
	managers repository.Repository[models.Manager, uint],
	owners repository.Repository[models.Owner, uint],
	receptionists repository.Repository[models.Receptionist, uint],
) *StaffService {
	return &StaffService{managers: managers, owners: owners, receptionists: receptionists}
}

func (s *StaffService) AddManager(ctx context.Context, m *models.Manager) error {
	return s.managers.Save(ctx, m)
}

func (s *StaffService) Managers(ctx context.Context) ([]models.Manager, error) {
	return s.managers.FindAll(ctx)
}

func (s *StaffService) AddOwner(ctx context.Context, o *models.Owner) error {
	return s.owners.Save(ctx, o)
}

func (s *StaffService) Owners(ctx context.Context) ([]models.Owner, error) {
	return s.owners.FindAll(ctx)
}

// TotalOwnerShare sums the share percentages of all owners.
func (s *StaffService) TotalOwnerShare(ctx context.Context) (float64, error) {
	owners, err := s.owners.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range owners {
		total += o.SharePercentage
	}
	return total, nil
}

func (s *StaffService) AddReceptionist(ctx context.Context, r *models.Receptionist) error {
	return s.receptionists.Save(ctx, r)
}

func (s *StaffService) Receptionists(ctx context.Context) ([]models.Receptionist, error) {
	return s.receptionists.FindAll(ctx)
}
