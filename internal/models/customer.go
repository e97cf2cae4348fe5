package models

import (
	"time"
)

type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	AccountNumber string    `json:"accountNumber" gorm:"size:50;unique;not null"`
	Password      string    `json:"-" gorm:"not null"`
	Name          string    `json:"name" gorm:"not null"`
	PhoneNumber   string    `json:"phoneNumber" gorm:"size:20;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CustomerProfile is the customer shape returned by the API. The bcrypt
// hash never leaves the server.
type CustomerProfile struct {
	ID            uint   `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
}

func (c *Customer) Profile() CustomerProfile {
	return CustomerProfile{
		ID:            c.ID,
		AccountNumber: c.AccountNumber,
		Name:          c.Name,
		PhoneNumber:   c.PhoneNumber,
	}
}
