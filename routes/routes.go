package routes

import (
	"net/http"
	"time"

	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Services bundles everything the routes dispatch to
type Services struct {
	Chat     *services.ChatService
	Feed     *services.FeedService
	Posts    *services.PostService
	Profile  *services.ProfileService
	Settings *services.SettingsService
	Sessions *services.SessionService
	Media    *services.MediaService
	Now      func() time.Time
}

// NewHandler registers every route and wraps the router with CORS
func NewHandler(svc Services, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/privacy-policy", PrivacyPolicyHandler).Methods("GET")

	RegisterChatRoutes(r, svc.Chat, svc.Now)
	RegisterFeedRoutes(r, svc.Feed)
	RegisterPostRoutes(r, svc.Posts)
	RegisterUserProfileRoutes(r, svc.Profile)
	RegisterSettingsRoutes(r, svc.Settings)
	RegisterAuthRoutes(r, svc.Sessions)
	RegisterThemeRoutes(r)
	RegisterS3Routes(r, svc.Media)

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}
