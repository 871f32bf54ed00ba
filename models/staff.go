package models

// Manager, Owner and Receptionist are standalone records without relations.

type Manager struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Department string `gorm:"size:100" json:"department"`
}

func (m *Manager) Key() uint { return m.ID }

type Owner struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:255;not null" json:"name"`
	SharePercentage float64 `gorm:"column:share_percentage" json:"share_percentage"`
}

func (o *Owner) Key() uint { return o.ID }

type Receptionist struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	ShiftHours int    `gorm:"column:shift_hours" json:"shift_hours"`
}

func (r *Receptionist) Key() uint { return r.ID }
