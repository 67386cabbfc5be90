package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusFailed} {
		assert.True(t, IsValidOrderStatus(status), status)
	}
	assert.False(t, IsValidOrderStatus("shipped"))
	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("Pending"))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentMethodKPay))
	assert.True(t, IsValidPaymentMethod(PaymentMethodWavePay))
	assert.False(t, IsValidPaymentMethod("paypal"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleUser))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole("ADMIN"))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())

	// Only the stored role grants access, never the email
	assert.False(t, (&User{Role: RoleUser, Email: "admin@shwetopup.com"}).IsAdmin())
}

func TestUserToResponseOmitsPassword(t *testing.T) {
	user := &User{ID: 1, Name: "Aung", Email: "aung@example.com", Password: "hashed", Credits: 50, Role: RoleUser}
	resp := user.ToResponse()

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, user.Credits, resp.Credits)
}

func TestRefreshTokenState(t *testing.T) {
	token := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, token.IsRevoked())
	assert.False(t, token.IsExpired())

	now := time.Now()
	token.RevokedAt = &now
	assert.True(t, token.IsRevoked())

	expired := &RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.True(t, expired.IsExpired())
}

func TestCreditRequestIsResolved(t *testing.T) {
	assert.False(t, (&CreditRequest{Status: CreditStatusPending}).IsResolved())
	assert.True(t, (&CreditRequest{Status: CreditStatusApproved}).IsResolved())
	assert.True(t, (&CreditRequest{Status: CreditStatusDenied}).IsResolved())
}

func TestProductToResponseJoins(t *testing.T) {
	product := &Product{
		ID: 1, Name: "5GB Pack", PriceMMK: 8000, PriceCredits: 80,
		Operator: &Operator{Name: "atom", DisplayName: "ATOM", ColorScheme: "blue"},
		Category: &Category{Name: "data", DisplayName: "Data Packages", Icon: "wifi"},
	}
	resp := product.ToResponse()

	assert.Equal(t, "atom", resp.OperatorName)
	assert.Equal(t, "ATOM", resp.OperatorDisplay)
	assert.Equal(t, "data", resp.CategoryName)
	assert.Equal(t, "wifi", resp.CategoryIcon)

	// Missing relations leave the joined fields empty
	bare := (&Product{ID: 2, Name: "Bare"}).ToResponse()
	assert.Empty(t, bare.OperatorName)
	assert.Empty(t, bare.CategoryName)
}

func TestOrderToResponseJoins(t *testing.T) {
	order := &Order{
		ID: 1, UserID: 2, ProductID: 3, PhoneNumber: "09123456789", PriceCredits: 80, Status: OrderStatusPending,
		User: &User{Name: "Aung", Email: "aung@example.com"},
		Product: &Product{
			Name:     "5GB Pack",
			Operator: &Operator{DisplayName: "ATOM"},
			Category: &Category{DisplayName: "Data Packages"},
		},
	}
	resp := order.ToResponse()

	assert.Equal(t, "Aung", resp.UserName)
	assert.Equal(t, "5GB Pack", resp.ProductName)
	assert.Equal(t, "ATOM", resp.OperatorName)
	assert.Equal(t, "Data Packages", resp.CategoryName)
}
