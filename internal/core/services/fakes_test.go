package services

import (
	"context"
	"sort"
	"time"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the guarded-transaction
// semantics of the GORM implementations closely enough for the
// services to be exercised without a database.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.users[id])
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) SetRole(ctx context.Context, id uint, role string) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) SetBanned(ctx context.Context, id uint, banned bool) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsBanned = banned
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken), nextID: 1}
}

func (r *fakeRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	token.ID = r.nextID
	r.nextID++
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uint) error {
	for _, token := range r.tokens {
		if token.ID == id {
			now := time.Now()
			token.RevokedAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	if token, ok := r.tokens[tokenHash]; ok {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(ctx context.Context, userID uint) error {
	for _, token := range r.tokens {
		if token.UserID == userID {
			now := time.Now()
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var deleted int64
	for hash, token := range r.tokens {
		if token.IsExpired() || token.IsRevoked() {
			delete(r.tokens, hash)
			deleted++
		}
	}
	return deleted, nil
}

type fakeCatalogRepo struct {
	products   []*models.Product
	categories []*models.Category
	operators  []*models.Operator
}

func (r *fakeCatalogRepo) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	active := make([]*models.Product, 0, len(r.products))
	for _, product := range r.products {
		if product.IsActive {
			active = append(active, product)
		}
	}
	return active, nil
}

func (r *fakeCatalogRepo) ListActiveCategories(ctx context.Context) ([]*models.Category, error) {
	return r.categories, nil
}

func (r *fakeCatalogRepo) ListActiveOperators(ctx context.Context) ([]*models.Operator, error) {
	return r.operators, nil
}

func (r *fakeCatalogRepo) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCreditRequestRepo struct {
	requests map[uint]*models.CreditRequest
	userRepo *fakeUserRepo
	nextID   uint
}

func newFakeCreditRequestRepo(userRepo *fakeUserRepo) *fakeCreditRequestRepo {
	return &fakeCreditRequestRepo{
		requests: make(map[uint]*models.CreditRequest),
		userRepo: userRepo,
		nextID:   1,
	}
}

func (r *fakeCreditRequestRepo) Create(ctx context.Context, request *models.CreditRequest) error {
	request.ID = r.nextID
	request.CreatedAt = time.Now()
	r.nextID++
	r.requests[request.ID] = request
	return nil
}

func (r *fakeCreditRequestRepo) GetByID(ctx context.Context, id uint) (*models.CreditRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (r *fakeCreditRequestRepo) ListByUser(ctx context.Context, userID uint) ([]*models.CreditRequest, error) {
	var out []*models.CreditRequest
	for _, request := range r.requests {
		if request.UserID == userID {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeCreditRequestRepo) List(ctx context.Context, status string, offset, limit int) ([]*models.CreditRequest, int64, error) {
	var all []*models.CreditRequest
	for _, request := range r.requests {
		if status == "" || request.Status == status {
			all = append(all, request)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCreditRequestRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, request := range r.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeCreditRequestRepo) Resolve(ctx context.Context, id uint, status, notes string) error {
	request, ok := r.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if request.Status != models.CreditStatusPending {
		return repositories.ErrRequestAlreadyResolved
	}

	request.Status = status
	if notes != "" {
		request.AdminNotes = &notes
	}

	if status == models.CreditStatusApproved {
		owner, ok := r.userRepo.users[request.UserID]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		owner.Credits += request.CreditsRequested
	}
	return nil
}

type fakeOrderRepo struct {
	orders   map[uint]*models.Order
	userRepo *fakeUserRepo
	nextID   uint
}

func newFakeOrderRepo(userRepo *fakeUserRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), userRepo: userRepo, nextID: 1}
}

func (r *fakeOrderRepo) Purchase(ctx context.Context, order *models.Order) error {
	buyer, ok := r.userRepo.users[order.UserID]
	if !ok || buyer.IsBanned || buyer.Credits < order.PriceCredits {
		return repositories.ErrInsufficientCredits
	}
	buyer.Credits -= order.PriceCredits

	order.ID = r.nextID
	order.CreatedAt = time.Now()
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]*models.Order, error) {
	var out []*models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, offset, limit int) ([]*models.Order, int64, error) {
	var all []*models.Order
	for _, order := range r.orders {
		all = append(all, order)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint, status, notes string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	if notes != "" {
		order.AdminNotes = &notes
	}
	return nil
}
