package components

import (
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewProductHandler,
		api.NewLikeHandler,
		api.NewReviewHandler,
		api.NewChatHandler,
		api.NewImageHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			profile *api.ProfileHandler,
			product *api.ProductHandler,
			like *api.LikeHandler,
			review *api.ReviewHandler,
			chat *api.ChatHandler,
			image *api.ImageHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:    auth,
				Profile: profile,
				Product: product,
				Like:    like,
				Review:  review,
				Chat:    chat,
				Image:   image,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
