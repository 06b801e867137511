package services_test

import (
	"testing"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
	"foodcourt/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	adminIndia    = models.Identity{ID: "u-admin", Role: models.RoleAdmin, Country: models.CountryIndia}
	managerIndia  = models.Identity{ID: "u-mgr-in", Role: models.RoleManager, Country: models.CountryIndia}
	managerUS     = models.Identity{ID: "u-mgr-us", Role: models.RoleManager, Country: models.CountryAmerica}
	memberIndiaA  = models.Identity{ID: "u-mem-a", Role: models.RoleMember, Country: models.CountryIndia}
	memberIndiaB  = models.Identity{ID: "u-mem-b", Role: models.RoleMember, Country: models.CountryIndia}
	memberAmerica = models.Identity{ID: "u-mem-us", Role: models.RoleMember, Country: models.CountryAmerica}
)

// testCatalog seeds an in-memory catalog with one restaurant per country.
func testCatalog() repositories.CatalogRepository {
	restaurants := []models.Restaurant{
		{ID: "r1", Name: "Spice Route", Country: models.CountryIndia},
		{ID: "r2", Name: "Burger Palace", Country: models.CountryAmerica},
	}
	menuItems := []models.MenuItem{
		{ID: "m1", RestaurantID: "r1", Name: "Butter Chicken", Price: 100, Country: models.CountryIndia},
		{ID: "m2", RestaurantID: "r1", Name: "Naan", Price: 50, Country: models.CountryIndia},
		{ID: "m3", RestaurantID: "r2", Name: "Cheeseburger", Price: 10, Country: models.CountryAmerica},
	}
	return repositories.NewMockCatalogRepository(restaurants, menuItems)
}

func newOrderService() (*services.OrderService, *repositories.MockOrderRepository) {
	orderRepo := repositories.NewMockOrderRepository()
	return services.NewOrderService(orderRepo, testCatalog(), nil), orderRepo
}

func TestOrderService_CreateComputesTotal(t *testing.T) {
	service, _ := newOrderService()

	// 2x item priced 100 plus 1x item priced 50.
	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{
		{MenuItemID: "m1", Quantity: 2},
		{MenuItemID: "m2", Quantity: 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, 250.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, models.CountryIndia, order.Country)
	assert.Equal(t, memberIndiaA.ID, order.UserID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Nil(t, order.PaymentMethodID)
	assert.NotEmpty(t, order.ID)

	// Round-trip: the creator can read their own order back unchanged.
	found, err := service.FindOne(order.ID, memberIndiaA)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, found.Status)
	assert.Equal(t, 250.0, found.TotalAmount)
}

func TestOrderService_CreateValidation(t *testing.T) {
	service, orderRepo := newOrderService()

	_, err := service.Create(memberIndiaA, "", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	_, err = service.Create(memberIndiaA, "r1", nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	_, err = service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 0}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	_, err = service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: -2}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	_, err = service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "", Quantity: 1}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	// No order was created by any of the failed attempts.
	orders, repoErr := orderRepo.GetAll()
	assert.NoError(t, repoErr)
	assert.Empty(t, orders)
}

func TestOrderService_CreateCrossCountryMenuItem(t *testing.T) {
	service, orderRepo := newOrderService()

	// A member in India referencing an American menu item fails even with a
	// valid id, and nothing is persisted.
	_, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{
		{MenuItemID: "m1", Quantity: 1},
		{MenuItemID: "m3", Quantity: 1},
	})
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Contains(t, err.Error(), "m3")

	orders, repoErr := orderRepo.GetAll()
	assert.NoError(t, repoErr)
	assert.Empty(t, orders)
}

func TestOrderService_CreateRestaurantNotAccessible(t *testing.T) {
	service, _ := newOrderService()

	_, err := service.Create(memberAmerica, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Contains(t, err.Error(), "restaurant")

	_, err = service.Create(memberIndiaA, "missing", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestOrderService_CreateAdminBypassesCountryFilter(t *testing.T) {
	service, _ := newOrderService()

	// Admins look up the catalog unfiltered, but the order is still a draft
	// stamped with the admin's own country.
	order, err := service.Create(adminIndia, "r2", []models.OrderItemInput{{MenuItemID: "m3", Quantity: 3}})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, models.CountryIndia, order.Country)
	assert.Equal(t, 30.0, order.TotalAmount)
}

func TestOrderService_FindAllVisibility(t *testing.T) {
	service, _ := newOrderService()

	orderA, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)
	_, err = service.Create(memberAmerica, "r2", []models.OrderItemInput{{MenuItemID: "m3", Quantity: 1}})
	assert.NoError(t, err)

	// Admin sees everything.
	all, err := service.FindAll(adminIndia)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// Managers see their own country only.
	india, err := service.FindAll(managerIndia)
	assert.NoError(t, err)
	assert.Len(t, india, 1)
	assert.Equal(t, orderA.ID, india[0].ID)

	// Members see their own orders only, regardless of country overlap.
	mine, err := service.FindAll(memberIndiaA)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, orderA.ID, mine[0].ID)

	other, err := service.FindAll(memberIndiaB)
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestOrderService_FindOneScoping(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)

	// Admin reads unconditionally.
	_, err = service.FindOne(order.ID, adminIndia)
	assert.NoError(t, err)

	// A manager in another country is told the order exists but is off
	// limits: Forbidden, not NotFound.
	_, err = service.FindOne(order.ID, managerUS)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// Another member in the same country must not learn the order exists.
	_, err = service.FindOne(order.ID, memberIndiaB)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// Unknown ids are NotFound for everyone.
	_, err = service.FindOne("missing", adminIndia)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestOrderService_MemberCannotPlace(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)

	// The role gate fires before anything else; the order stays a draft.
	_, err = service.PlaceOrder(order.ID, memberIndiaA, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = service.CancelOrder(order.ID, memberIndiaA)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	found, err := service.FindOne(order.ID, memberIndiaA)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, found.Status)
}

func TestOrderService_PlaceAndCancelLifecycle(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)

	pm := "pm1"
	placed, err := service.PlaceOrder(order.ID, adminIndia, &pm)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, placed.Status)
	assert.NotNil(t, placed.PaymentMethodID)
	assert.Equal(t, "pm1", *placed.PaymentMethodID)

	// Placed is terminal: no cancel, no second place.
	_, err = service.CancelOrder(order.ID, adminIndia)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
	_, err = service.PlaceOrder(order.ID, adminIndia, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestOrderService_CancelIsTerminal(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)

	cancelled, err := service.CancelOrder(order.ID, managerIndia)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	// Cancelling twice succeeds once and fails the second time.
	_, err = service.CancelOrder(order.ID, managerIndia)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))

	_, err = service.PlaceOrder(order.ID, managerIndia, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestOrderService_ManagerScopedMutation(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(memberIndiaA, "r1", []models.OrderItemInput{{MenuItemID: "m1", Quantity: 1}})
	assert.NoError(t, err)

	// A manager from another country cannot place the order; FindOne's
	// country scoping applies inside the mutation path too.
	_, err = service.PlaceOrder(order.ID, managerUS, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// The manager in the order's country can.
	placed, err := service.PlaceOrder(order.ID, managerIndia, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, placed.Status)
	assert.Nil(t, placed.PaymentMethodID)
}

// MockOrderRepository is a testify mock of repositories.OrderRepository, used
// to exercise failure paths the in-memory repository cannot produce on demand.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllMatching(match func(models.Order) bool) ([]models.Order, error) {
	args := m.Called(match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, from, to models.OrderStatus, paymentMethodID *string) (*models.Order, error) {
	args := m.Called(id, from, to, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestOrderService_PlaceLostRace(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, testCatalog(), nil)

	// The read sees a created draft, but the atomic write loses the race:
	// a concurrent transition already moved the order. The caller gets the
	// same InvalidTransition outcome as a stale read.
	draft := &models.Order{ID: "o1", UserID: memberIndiaA.ID, Status: models.OrderStatusCreated, Country: models.CountryIndia}
	mockRepo.On("GetByID", "o1").Return(draft, nil).Once()
	mockRepo.On("UpdateStatus", "o1", models.OrderStatusCreated, models.OrderStatusPlaced, (*string)(nil)).
		Return(nil, repositories.ErrStatusConflict).Once()

	_, err := service.PlaceOrder("o1", managerIndia, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CancelLostRace(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, testCatalog(), nil)

	draft := &models.Order{ID: "o1", UserID: memberIndiaA.ID, Status: models.OrderStatusCreated, Country: models.CountryIndia}
	mockRepo.On("GetByID", "o1").Return(draft, nil).Once()
	mockRepo.On("UpdateStatus", "o1", models.OrderStatusCreated, models.OrderStatusCancelled, (*string)(nil)).
		Return(nil, repositories.ErrStatusConflict).Once()

	_, err := service.CancelOrder("o1", managerIndia)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
	mockRepo.AssertExpectations(t)
}
