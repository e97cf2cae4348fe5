package models

import (
	"time"
)

type Order struct {
	ID                    uint          `json:"id" gorm:"primaryKey"`
	OrderNumber           string        `json:"orderNumber" gorm:"size:50;unique;not null"`
	CustomerID            *uint         `json:"customerId" gorm:"index"`
	CustomerName          string        `json:"customerName" gorm:"not null"`
	PhoneNumber           string        `json:"phoneNumber" gorm:"size:20;index"`
	OrderStatus           string        `json:"orderStatus" gorm:"default:'تم استلام الطلب'"`
	EstimatedDeliveryDate string        `json:"estimatedDeliveryDate"`
	AdminNotes            string        `json:"adminNotes"`
	OrderValue            *float64      `json:"orderValue"`
	ItemsCount            *int          `json:"itemsCount"`
	ShippingCost          *float64      `json:"shippingCost"`
	StatusHistory         StatusHistory `json:"statusHistory" gorm:"type:json"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// OrderStatuses is the fixed set of states an order can be in, listed in
// shipment order. Labels are the exact strings shown to customers.
var OrderStatuses = []string{
	"تم استلام الطلب",
	"تم تأكيد الدفع",
	"تم الشراء من الموقع",
	"قيد الشحن من المصدر",
	"وصلت إلى بلد العبور",
	"وصلت إلى ليبيا",
	"قيد التوصيل",
	"تم التسليم",
	"ملغاة / توجد مشكلة",
}

const DefaultOrderStatus = "تم استلام الطلب"

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
