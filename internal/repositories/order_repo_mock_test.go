package repositories_test

import (
	"testing"

	"foodcourt/internal/models"
	"foodcourt/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func newDraftOrder(id, userID string, country models.Country) *models.Order {
	return &models.Order{
		ID:           id,
		UserID:       userID,
		RestaurantID: "r1",
		Items:        []models.OrderItem{{MenuItemID: "m1", Quantity: 1, Price: 100}},
		TotalAmount:  100,
		Status:       models.OrderStatusCreated,
		Country:      country,
	}
}

func TestMockOrderRepository_CreateAssignsID(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	order := newDraftOrder("", "u1", models.CountryIndia)
	assert.NoError(t, repo.Create(order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	found, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.TotalAmount, found.TotalAmount)
}

func TestMockOrderRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMockOrderRepository_GetAllMatching(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	assert.NoError(t, repo.Create(newDraftOrder("o1", "u1", models.CountryIndia)))
	assert.NoError(t, repo.Create(newDraftOrder("o2", "u2", models.CountryAmerica)))
	assert.NoError(t, repo.Create(newDraftOrder("o3", "u1", models.CountryIndia)))

	mine, err := repo.GetAllMatching(func(o models.Order) bool { return o.UserID == "u1" })
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	india, err := repo.GetAllMatching(func(o models.Order) bool { return o.Country == models.CountryIndia })
	assert.NoError(t, err)
	assert.Len(t, india, 2)

	none, err := repo.GetAllMatching(func(o models.Order) bool { return false })
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockOrderRepository_UpdateStatusCompareAndSet(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	assert.NoError(t, repo.Create(newDraftOrder("o1", "u1", models.CountryIndia)))

	pm := "pm1"
	placed, err := repo.UpdateStatus("o1", models.OrderStatusCreated, models.OrderStatusPlaced, &pm)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, placed.Status)
	assert.NotNil(t, placed.PaymentMethodID)
	assert.Equal(t, "pm1", *placed.PaymentMethodID)

	// A second transition from created loses: the status moved concurrently.
	_, err = repo.UpdateStatus("o1", models.OrderStatusCreated, models.OrderStatusCancelled, nil)
	assert.ErrorIs(t, err, repositories.ErrStatusConflict)

	// Missing orders are reported distinctly from conflicts.
	_, err = repo.UpdateStatus("missing", models.OrderStatusCreated, models.OrderStatusPlaced, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The stored order keeps the first transition.
	found, err := repo.GetByID("o1")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, found.Status)
}
