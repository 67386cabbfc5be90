package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Enumerated domains (closed sets)
// ============================================================

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Credit request statuses
const (
	CreditStatusPending  = "pending"
	CreditStatusApproved = "approved"
	CreditStatusDenied   = "denied"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
)

// Payment methods
const (
	PaymentMethodKPay    = "kpay"
	PaymentMethodWavePay = "wavepay"
)

// CreditRateMMK is the fixed exchange rate: 1 credit = 100 MMK
const CreditRateMMK = 100

// IsValidOrderStatus reports whether s belongs to the order status set
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusFailed:
		return true
	}
	return false
}

// IsValidPaymentMethod reports whether m belongs to the payment method set
func IsValidPaymentMethod(m string) bool {
	return m == PaymentMethodKPay || m == PaymentMethodWavePay
}

// IsValidRole reports whether r belongs to the role set
func IsValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Credits        float64        `gorm:"type:decimal(12,2);not null;default:0" json:"credits"`
	Role           string         `gorm:"size:20;default:'user'" json:"role"`
	IsBanned       bool           `gorm:"default:false" json:"is_banned"`
	ProfilePicture *string        `gorm:"size:255" json:"profile_picture"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Credits        float64   `json:"credits"`
	Role           string    `json:"role"`
	IsBanned       bool      `json:"is_banned"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Credits:        u.Credits,
		Role:           u.Role,
		IsBanned:       u.IsBanned,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// IsAdmin reports whether the stored role grants admin access.
// The stored role is the single authority; there is no email fallback.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Catalog Tables (read-only reference data)
// ============================================================

// Operator is a telecom provider (ATOM, MPT, Mytel, Ooredoo)
type Operator struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DisplayName string    `gorm:"size:100;not null" json:"display_name"`
	ColorScheme string    `gorm:"size:50;not null" json:"color_scheme"`
	LogoURL     *string   `gorm:"size:255" json:"logo_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Operator) TableName() string {
	return "operators"
}

// Category is a product grouping (data, minutes, points, ...)
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Icon        string `gorm:"size:50;not null" json:"icon"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}

// Product belongs to one Operator and one Category
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OperatorID   uint      `gorm:"not null;index" json:"operator_id"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	PriceMMK     float64   `gorm:"type:decimal(12,2);not null" json:"price_mmk"`
	PriceCredits float64   `gorm:"type:decimal(12,2);not null" json:"price_credits"`
	SortOrder    int       `gorm:"default:0" json:"sort_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Operator *Operator `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductResponse DTO with joined display metadata
type ProductResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	PriceMMK            float64 `json:"price_mmk"`
	PriceCredits        float64 `json:"price_credits"`
	OperatorName        string  `json:"operator_name,omitempty"`
	OperatorDisplay     string  `json:"operator_display_name,omitempty"`
	OperatorColorScheme string  `json:"operator_color_scheme,omitempty"`
	CategoryName        string  `json:"category_name,omitempty"`
	CategoryDisplay     string  `json:"category_display_name,omitempty"`
	CategoryIcon        string  `json:"category_icon,omitempty"`
}

func (p *Product) ToResponse() *ProductResponse {
	resp := &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PriceMMK:     p.PriceMMK,
		PriceCredits: p.PriceCredits,
	}

	if p.Operator != nil {
		resp.OperatorName = p.Operator.Name
		resp.OperatorDisplay = p.Operator.DisplayName
		resp.OperatorColorScheme = p.Operator.ColorScheme
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
		resp.CategoryDisplay = p.Category.DisplayName
		resp.CategoryIcon = p.Category.Icon
	}

	return resp
}

// ============================================================
// Credit Request Table
// ============================================================

// CreditRequest is a user-submitted claim of an external payment,
// pending admin verification before balance adjustment
type CreditRequest struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	CreditsRequested float64   `gorm:"type:decimal(12,2);not null" json:"credits_requested"`
	AmountMMK        float64   `gorm:"type:decimal(12,2);not null" json:"amount_mmk"`
	PaymentMethod    string    `gorm:"size:20;not null" json:"payment_method"`
	PaymentProofURL  string    `gorm:"size:500;not null" json:"payment_proof_url"`
	AdminNotes       *string   `gorm:"type:text" json:"admin_notes"`
	Status           string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CreditRequest) TableName() string {
	return "credit_requests"
}

// IsResolved reports whether the request reached a terminal state
func (cr *CreditRequest) IsResolved() bool {
	return cr.Status != CreditStatusPending
}

// CreditRequestResponse DTO with joined requester identity
type CreditRequestResponse struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	UserName         string    `json:"user_name,omitempty"`
	UserEmail        string    `json:"user_email,omitempty"`
	CreditsRequested float64   `json:"credits_requested"`
	AmountMMK        float64   `json:"amount_mmk"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentProofURL  string    `json:"payment_proof_url"`
	AdminNotes       *string   `json:"admin_notes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (cr *CreditRequest) ToResponse() *CreditRequestResponse {
	resp := &CreditRequestResponse{
		ID:               cr.ID,
		UserID:           cr.UserID,
		CreditsRequested: cr.CreditsRequested,
		AmountMMK:        cr.AmountMMK,
		PaymentMethod:    cr.PaymentMethod,
		PaymentProofURL:  cr.PaymentProofURL,
		AdminNotes:       cr.AdminNotes,
		Status:           cr.Status,
		CreatedAt:        cr.CreatedAt,
		UpdatedAt:        cr.UpdatedAt,
	}

	if cr.User != nil {
		resp.UserName = cr.User.Name
		resp.UserEmail = cr.User.Email
	}

	return resp
}

// ============================================================
// Order Table
// ============================================================

// Order belongs to one User and one Product; price_credits is
// captured at order time
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	PhoneNumber  string    `gorm:"size:20;not null" json:"phone_number"`
	PriceCredits float64   `gorm:"type:decimal(12,2);not null" json:"price_credits"`
	Status       string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNotes   *string   `gorm:"type:text" json:"admin_notes"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderResponse DTO with joined requester and product metadata
type OrderResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	UserEmail    string    `json:"user_email,omitempty"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	OperatorName string    `json:"operator_name,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	PhoneNumber  string    `json:"phone_number"`
	PriceCredits float64   `json:"price_credits"`
	Status       string    `json:"status"`
	AdminNotes   *string   `json:"admin_notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func (o *Order) ToResponse() *OrderResponse {
	resp := &OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		ProductID:    o.ProductID,
		PhoneNumber:  o.PhoneNumber,
		PriceCredits: o.PriceCredits,
		Status:       o.Status,
		AdminNotes:   o.AdminNotes,
		CreatedAt:    o.CreatedAt,
	}

	if o.User != nil {
		resp.UserName = o.User.Name
		resp.UserEmail = o.User.Email
	}
	if o.Product != nil {
		resp.ProductName = o.Product.Name
		if o.Product.Operator != nil {
			resp.OperatorName = o.Product.Operator.DisplayName
		}
		if o.Product.Category != nil {
			resp.CategoryName = o.Product.Category.DisplayName
		}
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Operator{},
		&Category{},
		&Product{},
		&CreditRequest{},
		&Order{},
	)
}
