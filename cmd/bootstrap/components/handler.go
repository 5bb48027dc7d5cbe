package components

import (
	"arenaos/internal/handler"
	"arenaos/internal/handler/api"
	"arenaos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCheckInHandler,
		api.NewLedgerHandler,
		api.NewVenueHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	checkIn *api.CheckInHandler,
	ledger *api.LedgerHandler,
	venue *api.VenueHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		CheckIn: checkIn,
		Ledger:  ledger,
		Venue:   venue,
		Admin:   admin,
	}
}
