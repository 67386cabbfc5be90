package services

import (
	"context"
	"testing"

	"shwe-topup/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCreditService() (*CreditService, *fakeUserRepo, *fakeCreditRequestRepo) {
	userRepo := newFakeUserRepo()
	requestRepo := newFakeCreditRequestRepo(userRepo)
	return NewCreditService(requestRepo), userRepo, requestRepo
}

func seedUser(t *testing.T, userRepo *fakeUserRepo, credits float64) *models.User {
	t.Helper()
	user := &models.User{Name: "Aung", Email: "aung@example.com", Credits: credits, Role: models.RoleUser}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestPackages(t *testing.T) {
	svc, _, _ := newTestCreditService()

	packages := svc.Packages()
	require.Len(t, packages, 5)

	popular := 0
	for _, pkg := range packages {
		// MMK price always follows the fixed rate
		assert.Equal(t, pkg.Credits*models.CreditRateMMK, pkg.AmountMMK)
		if pkg.Popular {
			popular++
		}
	}
	assert.Equal(t, 1, popular)
}

func TestCreateRequest(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 0)

	request, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits:         500,
		PaymentMethod:   models.PaymentMethodKPay,
		PaymentProofURL: "https://cdn.example.com/proof.png",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CreditStatusPending, request.Status)
	assert.Equal(t, float64(50000), request.AmountMMK)
	// Submitting a request never touches the balance
	assert.Equal(t, float64(0), userRepo.users[user.ID].Credits)
}

func TestCreateRequestValidation(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 0)

	_, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits: 0, PaymentMethod: models.PaymentMethodKPay, PaymentProofURL: "proof.png",
	})
	assert.ErrorIs(t, err, ErrInvalidCreditsAmount)

	_, err = svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits: 100, PaymentMethod: "paypal", PaymentProofURL: "proof.png",
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits: 100, PaymentMethod: models.PaymentMethodWavePay, PaymentProofURL: "",
	})
	assert.ErrorIs(t, err, ErrProofRequired)
}

func TestApproveCreditsBalance(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 50)

	request, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits:         250,
		PaymentMethod:   models.PaymentMethodWavePay,
		PaymentProofURL: "proof.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, request.ID, "verified transfer"))

	assert.Equal(t, float64(300), userRepo.users[user.ID].Credits)
	assert.Equal(t, models.CreditStatusApproved, request.Status)
	require.NotNil(t, request.AdminNotes)
	assert.Equal(t, "verified transfer", *request.AdminNotes)
}

func TestApproveIdempotent(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 0)

	request, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits:         100,
		PaymentMethod:   models.PaymentMethodKPay,
		PaymentProofURL: "proof.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, request.ID, ""))

	// A second approval must not double-credit
	err = svc.Approve(ctx, request.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Equal(t, float64(100), userRepo.users[user.ID].Credits)
}

func TestDenyLeavesBalance(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 75)

	request, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
		Credits:         1000,
		PaymentMethod:   models.PaymentMethodKPay,
		PaymentProofURL: "proof.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deny(ctx, request.ID, "screenshot does not match"))

	assert.Equal(t, models.CreditStatusDenied, request.Status)
	assert.Equal(t, float64(75), userRepo.users[user.ID].Credits)

	// Denied requests cannot be approved afterwards
	err = svc.Approve(ctx, request.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolveNotFound(t *testing.T) {
	svc, _, _ := newTestCreditService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Approve(ctx, 999, ""), ErrRequestNotFound)
	assert.ErrorIs(t, svc.Deny(ctx, 999, ""), ErrRequestNotFound)
}

func TestListRequestsStatusFilter(t *testing.T) {
	svc, userRepo, _ := newTestCreditService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 0)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateRequest(ctx, user.ID, &CreateRequestInput{
			Credits:         100,
			PaymentMethod:   models.PaymentMethodKPay,
			PaymentProofURL: "proof.png",
		})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Approve(ctx, 1, ""))

	pending, err := svc.ListRequests(ctx, &ListRequestsInput{Status: models.CreditStatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Total)

	all, err := svc.ListRequests(ctx, &ListRequestsInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
}
