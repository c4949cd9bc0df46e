package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store"
)

// memRepo is an in-memory store.Repository. WithinTx holds txMu for the whole
// callback, matching the serialization the Postgres row lock provides.
type memRepo struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users    map[string]model.User
	products map[string]model.Product
	orders   map[string]model.Order
	details  map[string]model.OrderDetail
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    make(map[string]model.User),
		products: make(map[string]model.Product),
		orders:   make(map[string]model.Order),
		details:  make(map[string]model.OrderDetail),
	}
}

func (m *memRepo) WithinTx(ctx context.Context, fn func(store.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

func (m *memRepo) FindUser(_ context.Context, id string) (model.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	return u, ok, nil
}

func (m *memRepo) FindUserByEmail(_ context.Context, email string) (model.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

func (m *memRepo) SaveUser(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = u
	return u, nil
}

func (m *memRepo) FindProduct(_ context.Context, id string) (model.Product, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	return p, ok, nil
}

func (m *memRepo) ListProducts(_ context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepo) SaveProduct(_ context.Context, p model.Product) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.products[p.ID] = p
	return p, nil
}

func (m *memRepo) FindOrder(_ context.Context, id string) (model.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	return o, ok, nil
}

func (m *memRepo) FindOrderForUpdate(ctx context.Context, id string) (model.Order, bool, error) {
	return m.FindOrder(ctx, id)
}

func (m *memRepo) SaveOrder(_ context.Context, o model.Order) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.orders[o.ID]; ok {
		o.CreatedAt = prev.CreatedAt
	} else {
		o.CreatedAt = time.Now()
	}
	o.UpdatedAt = time.Now()
	m.orders[o.ID] = o
	return o, nil
}

func (m *memRepo) ListOrdersByUser(_ context.Context, userID string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memRepo) SaveDetail(_ context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.details[d.ID] = d
	return d, nil
}

func (m *memRepo) ListDetailsByOrder(_ context.Context, orderID string) ([]model.OrderDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.OrderDetail
	for _, d := range m.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestOrderScenario_CreateDetailCancel(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	users := NewUserService(repo)
	products := NewProductService(repo)
	orders := NewOrderService(repo, nil)
	details := NewOrderDetailService(repo)

	u, err := users.Create(ctx, "u1@example.com", "hash")
	require.NoError(t, err)
	p, err := products.Create(ctx, "Laptop", "High-performance laptop", 120000)
	require.NoError(t, err)

	o, err := orders.Create(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, o.Status)
	require.Equal(t, u.ID, o.UserID)

	d, err := details.Create(ctx, o.ID, p.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Quantity)
	require.Equal(t, o.ID, d.OrderID)
	require.Equal(t, p.ID, d.ProductID)

	cancelled, err := orders.Cancel(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, cancelled.Status)

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, got.Status)

	listed, err := users.OrdersByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestOrderService_ConcurrentStatusUpdates(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	users := NewUserService(repo)
	orders := NewOrderService(repo, nil)

	u, err := users.Create(ctx, "u1@example.com", "hash")
	require.NoError(t, err)
	o, err := orders.Create(ctx, u.ID)
	require.NoError(t, err)

	statuses := []model.OrderStatus{model.StatusShipped, model.StatusDelivered}
	var wg sync.WaitGroup
	errs := make([]error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = orders.UpdateStatus(ctx, o.ID, statuses[i%2])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Contains(t, statuses, got.Status)
}
