package components

import (
	"donorhub/internal/handler"
	"donorhub/internal/handler/api"
	"donorhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRegistrationHandler,
		api.NewDonationHandler,
		api.NewInventoryHandler,
		api.NewEligibilityHandler,
		api.NewNotificationHandler,
		api.NewReferenceHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	registration *api.RegistrationHandler,
	donation *api.DonationHandler,
	inventory *api.InventoryHandler,
	eligibility *api.EligibilityHandler,
	notification *api.NotificationHandler,
	reference *api.ReferenceHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Registration: registration,
		Donation:     donation,
		Inventory:    inventory,
		Eligibility:  eligibility,
		Notification: notification,
		Reference:    reference,
	}
}
