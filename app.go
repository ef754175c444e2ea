// Package littlelemon wires the ordering and reservations core: config,
// storage, the seeded menu catalog, the cart store and the form sessions.
// There is no server here; the UI layer calls this module in-process.
package littlelemon

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/CameronCarlyon/LittleLemon/configs"
	"github.com/CameronCarlyon/LittleLemon/repository"
	"github.com/CameronCarlyon/LittleLemon/services"
)

type App struct {
	Config *configs.Config
	Log    zerolog.Logger
	DB     *gorm.DB

	Menu   *services.MenuService
	Cart   *services.CartStore
	Pricer *services.Pricer
	Times  services.TimeFetcher

	orderSubmitter       services.OrderSubmitter
	reservationSubmitter services.ReservationSubmitter
}

func New() (*App, error) {
	cfg := configs.LoadConfig()
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg *configs.Config) (*App, error) {
	log := configs.NewLogger(cfg)

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		return nil, fmt.Errorf("seed menu: %w", err)
	}

	menu, err := services.NewMenuService(repository.NewMenuRepository(db))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info().Int("categories", len(menu.Categories())).Msg("catalog loaded")

	return &App{
		Config:               cfg,
		Log:                  log,
		DB:                   db,
		Menu:                 menu,
		Cart:                 services.NewCartStore(),
		Pricer:               services.NewPricer(),
		Times:                services.NewAvailability(),
		orderSubmitter:       services.NewArchiveOrderSubmitter(repository.NewOrderRepository(db)),
		reservationSubmitter: services.NewArchiveReservationSubmitter(repository.NewReservationRepository(db)),
	}, nil
}

// NewCheckout starts a fresh checkout form instance over the shared cart.
func (a *App) NewCheckout() *services.CheckoutSession {
	return services.NewCheckoutSession(
		a.Cart, a.Pricer, a.orderSubmitter,
		a.Config.City, a.Config.State,
		a.Config.SettleDelay, a.Log,
	)
}

// NewReservation starts a fresh booking form instance.
func (a *App) NewReservation() *services.ReservationSession {
	return services.NewReservationSession(
		a.Times, a.reservationSubmitter,
		a.Config.SettleDelay, a.Log,
	)
}
