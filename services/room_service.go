package services

import (
	"context"

	"hotel-orders/models"
	"hotel-orders/repository"
)

type RoomService struct {
	repo repository.Repository[models.Room, uint]
}

func NewRoomService(repo repository.Repository[models.Room, uint]) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) AddRoom(ctx context.Context, room *models.Room) error {
	return s.repo.Save(ctx, room)
}

func (s *RoomService) GetRoom(ctx context.Context, roomNo uint) (*models.Room, error) {
	return s.repo.FindByID(ctx, roomNo)
}

func (s *RoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) GetAvailableRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Available {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RoomService) SetAvailability(ctx context.Context, roomNo uint, available bool) (*models.Room, error) {
	room, err := s.repo.FindByID(ctx, roomNo)
	if err != nil {
		return nil, err
	}
	room.Available = available
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes the room and every customer assigned to it.
func (s *RoomService) DeleteRoom(ctx context.Context, roomNo uint) error {
	return s.repo.Delete(ctx, &models.Room{RoomNo: roomNo})
}
