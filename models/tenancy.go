package models

import "time"

type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleFirmAdmin    Role = "FIRM_ADMIN"
	RoleStoreManager Role = "STORE_MANAGER"
	RoleStaff        Role = "STAFF"
)

// Firm is the top-level tenant owning stores.
type Firm struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:150;not null;unique" json:"name"`
	ContactEmail string    `gorm:"size:150" json:"contactEmail"`
	Stores       []Store   `gorm:"foreignKey:FirmID" json:"stores,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Store struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirmID    uint      `gorm:"not null;index" json:"firmId"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	City      string    `gorm:"size:100" json:"city"`
	Address   string    `gorm:"size:256" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:150;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Name         string    `gorm:"size:150" json:"name"`
	Role         Role      `gorm:"size:30;not null" json:"role"`
	FirmID       *uint     `gorm:"index" json:"firmId"`
	StoreID      *uint     `json:"storeId"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
