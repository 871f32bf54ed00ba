package models

// Room is keyed by its room number, which the caller assigns.
type Room struct {
	RoomNo    uint        `gorm:"primaryKey;autoIncrement:false;column:room_no" json:"room_no"`
	Location  string      `gorm:"column:location;size:100" json:"location"`
	Available bool        `gorm:"column:available;not null;default:false" json:"available"`
	Customers []*Customer `gorm:"foreignKey:RoomID;references:RoomNo;constraint:OnDelete:CASCADE" json:"customers,omitempty"`
}

func NewRoom(roomNo uint, location string, available bool) *Room {
	return &Room{RoomNo: roomNo, Location: location, Available: available}
}

func (r *Room) Key() uint { return r.RoomNo }
