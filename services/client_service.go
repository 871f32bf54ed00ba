package services

import (
	"context"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-orders/models"
	"hotel-orders/repository"
)

// ClientStore is the persistence the order-tracking sample needs.
type ClientStore interface {
	repository.Repository[models.Client, uint]
	FindCommande(ctx context.Context, id uint) (*models.Commande, error)
	RemoveCommande(ctx context.Context, id uint) error
}

type ClientService struct {
	repo ClientStore
}

func NewClientService(repo ClientStore) *ClientService {
	return &ClientService{repo: repo}
}

// Register saves a new client together with the commandes added to it.
func (s *ClientService) Register(ctx context.Context, client *models.Client) error {
	log.Printf("➡️ ClientService.Register name=%q commandes=%d", client.Name, len(client.Commandes))
	if strings.TrimSpace(client.Name) == "" {
		return invalidf("client name is required")
	}
	if err := s.repo.Save(ctx, client); err != nil {
		return err
	}
	log.Printf("⬅️ ClientService.Register ok: client_id=%d", client.ID)
	return nil
}

func (s *ClientService) Get(ctx context.Context, id uint) (*models.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.FindAll(ctx)
}

// ChangeEmail updates the stored email and returns the previous one.
func (s *ClientService) ChangeEmail(ctx context.Context, id uint, email string) (string, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	old := client.Email
	client.Email = strings.TrimSpace(email)
	if err := s.repo.Update(ctx, client); err != nil {
		return "", err
	}
	return old, nil
}

// AddCommande attaches a new commande to an existing client.
func (s *ClientService) AddCommande(ctx context.Context, clientID uint, cmd *models.Commande) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.AddCommande(cmd)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetCommande(ctx context.Context, id uint) (*models.Commande, error) {
	return s.repo.FindCommande(ctx, id)
}

func (s *ClientService) RemoveCommande(ctx context.Context, id uint) error {
	return s.repo.RemoveCommande(ctx, id)
}

func (s *ClientService) Delete(ctx context.Context, client *models.Client) error {
	return s.repo.Delete(ctx, client)
}

// ClientsWithCommandes keeps the clients that have at least one commande.
func (s *ClientService) ClientsWithCommandes(ctx context.Context) ([]models.Client, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if len(c.Commandes) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

// TotalAmount sums every commande of the client as stored.
func (s *ClientService) TotalAmount(ctx context.Context, id uint) (decimal.Decimal, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return client.TotalAmount(), nil
}
