package littlelemon

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CameronCarlyon/LittleLemon/configs"
	"github.com/CameronCarlyon/LittleLemon/entity"
	"github.com/CameronCarlyon/LittleLemon/repository"
	"github.com/CameronCarlyon/LittleLemon/services"
)

func testApp(t *testing.T) *App {
	t.Helper()
	app, err := NewWithConfig(&configs.Config{
		DBDriver:    "sqlite",
		DBSource:    filepath.Join(t.TempDir(), "app.db"),
		City:        "Chicago",
		State:       "Illinois",
		SettleDelay: 0,
		LogLevel:    "disabled",
	})
	require.NoError(t, err)
	return app
}

func TestAppLoadsCatalog(t *testing.T) {
	app := testApp(t)
	cats := app.Menu.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "Breakfast", cats[0])
	assert.NotEmpty(t, app.Menu.VisibleItems("Breakfast", services.FilterState{}, services.SortDefault))
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	app := testApp(t)

	items := app.Menu.VisibleItems("Lunch", services.FilterState{}, services.SortDefault)
	require.NotEmpty(t, items)
	app.Cart.Add(entity.CartLineItem{Name: items[0].ItemName, Price: items[0].Price}, 2)

	checkout := app.NewCheckout()
	checkout.SetField("fullName", "Ada Lovelace")
	checkout.SetField("emailAddress", "ada@example.com")
	checkout.SetField("cardNumber", "4242424242424242")
	checkout.SetField("expiryDate", "12/27")
	checkout.SetField("cvv", "123")
	checkout.SelectDeliveryMethod(entity.StorePickup)
	checkout.SetTermsAccepted(true)

	conf, err := checkout.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, app.Cart.Empty())

	archived, err := repository.NewOrderRepository(app.DB).GetByOrderNumber(conf.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", archived.FullName)
	require.Len(t, archived.Items, 1)
	assert.Equal(t, 2, archived.Items[0].Quantity)
}

func TestBookReservationEndToEnd(t *testing.T) {
	app := testApp(t)

	session := app.NewReservation()
	session.SetField("fullName", "Grace Hopper")
	session.SetField("emailAddress", "grace@example.com")
	session.SetGuestCount(4)

	date := time.Now().AddDate(0, 0, 7)
	session.SelectDate(date.Format("2006-01-02"))

	slots := session.AvailableTimes()
	slot := "19:00"
	if len(slots) > 0 {
		slot = slots[0]
	}
	session.SetField("reservationTime", slot)

	conf, err := session.Submit(context.Background())
	require.NoError(t, err)

	archived, err := repository.NewReservationRepository(app.DB).GetByConfirmationID(conf.ConfirmationID)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", archived.FullName)
	assert.Equal(t, slot, archived.ReservationTime)
}
