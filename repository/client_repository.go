package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-orders/models"
)

// ClientRepository cascades saves and deletes to the client's commandes.
type ClientRepository struct {
	*GormRepository[models.Client, uint]
	commandes *GormRepository[models.Commande, uint]
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		GormRepository: NewGormRepository(db, (*models.Client).Key, WithPreload("Commandes")),
		commandes:      NewGormRepository(db, (*models.Commande).Key),
	}
}

func (r *ClientRepository) Save(ctx context.Context, client *models.Client) error {
	return r.transact(ctx, "save", client, func(tx *gorm.DB, u *undo) error {
		if err := r.insert(tx, client); err != nil {
			return err
		}
		return saveCommandes(tx, u, client)
	})
}

// Update replaces the client row and inserts commandes added since the last
// save. Existing commandes are left as stored.
func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.transact(ctx, "update", client, func(tx *gorm.DB, u *undo) error {
		if err := r.replace(tx, client); err != nil {
			return err
		}
		return saveCommandes(tx, u, client)
	})
}

func (r *ClientRepository) Delete(ctx context.Context, client *models.Client) error {
	return r.transact(ctx, "delete", client, func(tx *gorm.DB, _ *undo) error {
		if err := r.exists(tx, "delete", client.ID); err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Commande{}).Error; err != nil {
			return err
		}
		return r.remove(tx, client.ID)
	})
}

// FindByID loads the client together with its commandes.
func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := r.GormRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	linkCommandes(client)
	return client, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	clients, err := r.GormRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		linkCommandes(&clients[i])
	}
	return clients, nil
}

func (r *ClientRepository) FindCommande(ctx context.Context, id uint) (*models.Commande, error) {
	return r.commandes.FindByID(ctx, id)
}

// RemoveCommande deletes one commande without touching its client.
func (r *ClientRepository) RemoveCommande(ctx context.Context, id uint) error {
	return r.commandes.Delete(ctx, &models.Commande{ID: id})
}

func saveCommandes(tx *gorm.DB, u *undo, client *models.Client) error {
	for _, cmd := range client.Commandes {
		snapshot(u, cmd)
		cmd.Client = client
		if cmd.ID != 0 {
			if cmd.ClientID != client.ID {
				cmd.ClientID = client.ID
				if err := tx.Model(&models.Commande{}).Where("id = ?", cmd.ID).Update("client_id", client.ID).Error; err != nil {
					return err
				}
			}
			continue
		}
		cmd.ClientID = client.ID
		if err := tx.Omit(clause.Associations).Create(cmd).Error; err != nil {
			return err
		}
	}
	return nil
}

func linkCommandes(client *models.Client) {
	for _, cmd := range client.Commandes {
		cmd.Client = client
	}
}
