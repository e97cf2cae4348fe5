package models

import (
	"time"
)

// Settings is a singleton row (id = 1) holding company display info and
// the numbering configuration for generated order/account numbers.
type Settings struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	CompanyName          string    `json:"companyName"`
	CompanyLogo          string    `json:"companyLogo"`
	CompanyAddress       string    `json:"companyAddress"`
	CompanyPhone         string    `json:"companyPhone"`
	CompanyEmail         string    `json:"companyEmail"`
	CompanyWebsite       string    `json:"companyWebsite"`
	OrderPrefix          string    `json:"orderPrefix"`
	OrderStartNumber     int       `json:"orderStartNumber"`
	OrderNumberFormat    int       `json:"orderNumberFormat"`
	CustomerPrefix       string    `json:"customerPrefix"`
	CustomerStartNumber  int       `json:"customerStartNumber"`
	CustomerNumberFormat int       `json:"customerNumberFormat"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

const SettingsRowID = 1

const (
	DefaultOrderPrefix          = "ORD-"
	DefaultCustomerPrefix       = "CUST-"
	DefaultSequenceStartNumber  = 1
	DefaultSequenceNumberFormat = 4
)

// ApplyDefaults fills in the numbering fields a stored row may have
// left empty. A missing settings row behaves as all-defaults.
func (s *Settings) ApplyDefaults() {
	if s.OrderPrefix == "" {
		s.OrderPrefix = DefaultOrderPrefix
	}
	if s.OrderStartNumber <= 0 {
		s.OrderStartNumber = DefaultSequenceStartNumber
	}
	if s.OrderNumberFormat <= 0 {
		s.OrderNumberFormat = DefaultSequenceNumberFormat
	}
	if s.CustomerPrefix == "" {
		s.CustomerPrefix = DefaultCustomerPrefix
	}
	if s.CustomerStartNumber <= 0 {
		s.CustomerStartNumber = DefaultSequenceStartNumber
	}
	if s.CustomerNumberFormat <= 0 {
		s.CustomerNumberFormat = DefaultSequenceNumberFormat
	}
}
