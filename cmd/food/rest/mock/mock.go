// Package mock provides FoodClient whose behavior is set by each test.
package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
)

type UpdateRestaurantArgs struct {
	RestaurantId ids.ID
	Spec         restaurants.Spec
}

type AddMenuItemArgs struct {
	RestaurantId ids.ID
	Spec         restaurants.MenuItemSpec
}

type UpdateOrderStatusArgs struct {
	OrderId ids.ID
	Status  orders.Status
}

func New(t *testing.T) *mockFoodClient {
	return &mockFoodClient{t: t}
}

// mockFoodClient records calls in Calls, and delegates them to Impl.
//
// Calling a method whose Impl is nil fails the test.
type mockFoodClient struct {
	t  *testing.T
	mu sync.Mutex

	Impl struct {
		Health                func(ctx context.Context) error
		GetRestaurants        func(ctx context.Context) ([]restaurants.Detail, error)
		GetRestaurant         func(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error)
		CreateRestaurant      func(ctx context.Context, spec restaurants.Spec) (*restaurants.Detail, error)
		UpdateRestaurant      func(ctx context.Context, restaurantId ids.ID, spec restaurants.Spec) error
		DeleteRestaurant      func(ctx context.Context, restaurantId ids.ID) error
		GetMenu               func(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error)
		AddMenuItem           func(ctx context.Context, restaurantId ids.ID, spec restaurants.MenuItemSpec) (*restaurants.MenuItem, error)
		Register              func(ctx context.Context, reg users.Registration) (*users.User, error)
		Login                 func(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error)
		CreateOrder           func(ctx context.Context, draft orders.Draft) (*orders.Detail, error)
		GetOrder              func(ctx context.Context, orderId ids.ID) (*orders.Detail, error)
		GetCustomerOrders     func(ctx context.Context, customerId ids.ID) ([]orders.Detail, error)
		GetOrders             func(ctx context.Context) ([]orders.Detail, error)
		CancelOrder           func(ctx context.Context, orderId ids.ID) error
		UpdateOrderStatus     func(ctx context.Context, orderId ids.ID, status orders.Status) error
		AdminUsers            func(ctx context.Context) ([]users.User, error)
		AdminDeleteUser       func(ctx context.Context, userId ids.ID) error
		AdminRestaurants      func(ctx context.Context) ([]restaurants.Detail, error)
		AdminDeleteRestaurant func(ctx context.Context, restaurantId ids.ID) error
		AdminOrders           func(ctx context.Context) ([]orders.Detail, error)
	}
	Calls struct {
		Health                int
		GetRestaurants        int
		GetRestaurant         []ids.ID
		CreateRestaurant      []restaurants.Spec
		UpdateRestaurant      []UpdateRestaurantArgs
		DeleteRestaurant      []ids.ID
		GetMenu               []ids.ID
		AddMenuItem           []AddMenuItemArgs
		Register              []users.Registration
		Login                 []users.Credentials
		CreateOrder           []orders.Draft
		GetOrder              []ids.ID
		GetCustomerOrders     []ids.ID
		GetOrders             int
		CancelOrder           []ids.ID
		UpdateOrderStatus     []UpdateOrderStatusArgs
		AdminUsers            int
		AdminDeleteUser       []ids.ID
		AdminRestaurants      int
		AdminDeleteRestaurant []ids.ID
		AdminOrders           int
	}
}

var _ rest.FoodClient = &mockFoodClient{}

func (m *mockFoodClient) Health(ctx context.Context) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Health += 1
	impl := m.Impl.Health
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Health is not ready to be called")
	}
	return impl(ctx)
}

func (m *mockFoodClient) GetRestaurants(ctx context.Context) ([]restaurants.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetRestaurants += 1
	impl := m.Impl.GetRestaurants
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetRestaurants is not ready to be called")
	}
	return impl(ctx)
}

func (m *mockFoodClient) GetRestaurant(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetRestaurant = append(m.Calls.GetRestaurant, restaurantId)
	impl := m.Impl.GetRestaurant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetRestaurant is not ready to be called")
	}
	return impl(ctx, restaurantId)
}

func (m *mockFoodClient) CreateRestaurant(ctx context.Context, spec restaurants.Spec) (*restaurants.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreateRestaurant = append(m.Calls.CreateRestaurant, spec)
	impl := m.Impl.CreateRestaurant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreateRestaurant is not ready to be called")
	}
	return impl(ctx, spec)
}

func (m *mockFoodClient) UpdateRestaurant(ctx context.Context, restaurantId ids.ID, spec restaurants.Spec) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdateRestaurant = append(m.Calls.UpdateRestaurant, UpdateRestaurantArgs{RestaurantId: restaurantId, Spec: spec})
	impl := m.Impl.UpdateRestaurant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdateRestaurant is not ready to be called")
	}
	return impl(ctx, restaurantId, spec)
}

func (m *mockFoodClient) DeleteRestaurant(ctx context.Context, restaurantId ids.ID) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.DeleteRestaurant = append(m.Calls.DeleteRestaurant, restaurantId)
	impl := m.Impl.DeleteRestaurant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("DeleteRestaurant is not ready to be called")
	}
	return impl(ctx, restaurantId)
}

func (m *mockFoodClient) GetMenu(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetMenu = append(m.Calls.GetMenu, restaurantId)
	impl := m.Impl.GetMenu
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetMenu is not ready to be called")
	}
	return impl(ctx, restaurantId)
}

func (m *mockFoodClient) AddMenuItem(ctx context.Context, restaurantId ids.ID, spec restaurants.MenuItemSpec) (*restaurants.MenuItem, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AddMenuItem = append(m.Calls.AddMenuItem, AddMenuItemArgs{RestaurantId: restaurantId, Spec: spec})
	impl := m.Impl.AddMenuItem
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AddMenuItem is not ready to be called")
	}
	return impl(ctx, restaurantId, spec)
}

func (m *mockFoodClient) Register(ctx context.Context, reg users.Registration) (*users.User, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Register = append(m.Calls.Register, reg)
	impl := m.Impl.Register
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Register is not ready to be called")
	}
	return impl(ctx, reg)
}

func (m *mockFoodClient) Login(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Login = append(m.Calls.Login, cred)
	impl := m.Impl.Login
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return impl(ctx, cred)
}

func (m *mockFoodClient) CreateOrder(ctx context.Context, draft orders.Draft) (*orders.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CreateOrder = append(m.Calls.CreateOrder, draft)
	impl := m.Impl.CreateOrder
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CreateOrder is not ready to be called")
	}
	return impl(ctx, draft)
}

func (m *mockFoodClient) GetOrder(ctx context.Context, orderId ids.ID) (*orders.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetOrder = append(m.Calls.GetOrder, orderId)
	impl := m.Impl.GetOrder
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetOrder is not ready to be called")
	}
	return impl(ctx, orderId)
}

func (m *mockFoodClient) GetCustomerOrders(ctx context.Context, customerId ids.ID) ([]orders.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetCustomerOrders = append(m.Calls.GetCustomerOrders, customerId)
	impl := m.Impl.GetCustomerOrders
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetCustomerOrders is not ready to be called")
	}
	return impl(ctx, customerId)
}

func (m *mockFoodClient) GetOrders(ctx context.Context) ([]orders.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.GetOrders += 1
	impl := m.Impl.GetOrders
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("GetOrders is not ready to be called")
	}
	return impl(ctx)
}

func (m *mockFoodClient) CancelOrder(ctx context.Context, orderId ids.ID) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.CancelOrder = append(m.Calls.CancelOrder, orderId)
	impl := m.Impl.CancelOrder
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("CancelOrder is not ready to be called")
	}
	return impl(ctx, orderId)
}

func (m *mockFoodClient) UpdateOrderStatus(ctx context.Context, orderId ids.ID, status orders.Status) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.UpdateOrderStatus = append(m.Calls.UpdateOrderStatus, UpdateOrderStatusArgs{OrderId: orderId, Status: status})
	impl := m.Impl.UpdateOrderStatus
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("UpdateOrderStatus is not ready to be called")
	}
	return impl(ctx, orderId, status)
}

func (m *mockFoodClient) AdminUsers(ctx context.Context) ([]users.User, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AdminUsers += 1
	impl := m.Impl.AdminUsers
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AdminUsers is not ready to be called")
	}
	return impl(ctx)
}

func (m *mockFoodClient) AdminDeleteUser(ctx context.Context, userId ids.ID) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AdminDeleteUser = append(m.Calls.AdminDeleteUser, userId)
	impl := m.Impl.AdminDeleteUser
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AdminDeleteUser is not ready to be called")
	}
	return impl(ctx, userId)
}

func (m *mockFoodClient) AdminRestaurants(ctx context.Context) ([]restaurants.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AdminRestaurants += 1
	impl := m.Impl.AdminRestaurants
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AdminRestaurants is not ready to be called")
	}
	return impl(ctx)
}

func (m *mockFoodClient) AdminDeleteRestaurant(ctx context.Context, restaurantId ids.ID) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AdminDeleteRestaurant = append(m.Calls.AdminDeleteRestaurant, restaurantId)
	impl := m.Impl.AdminDeleteRestaurant
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AdminDeleteRestaurant is not ready to be called")
	}
	return impl(ctx, restaurantId)
}

func (m *mockFoodClient) AdminOrders(ctx context.Context) ([]orders.Detail, error) {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.AdminOrders += 1
	impl := m.Impl.AdminOrders
	m.mu.Unlock()

	if impl == nil {
		m.t.Fatal("AdminOrders is not ready to be called")
	}
	return impl(ctx)
}
