package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-pet-adoption-api/internal/application/meeting"
	"github.com/go-pet-adoption-api/internal/application/pet"
	"github.com/go-pet-adoption-api/internal/application/session"
	"github.com/go-pet-adoption-api/internal/application/user"
	"github.com/go-pet-adoption-api/internal/config"
	"github.com/go-pet-adoption-api/internal/transport/http/handler"
	appmiddleware "github.com/go-pet-adoption-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
// PetCache, Images and Notifier may be nil.
type Deps struct {
	UserRepo    UserRepository
	MeetingRepo MeetingRepository
	PetRepo     PetRepository
	PetCache    PetCache
	Images      ImageStore
	Tokens      TokenProvider
	Hasher      PasswordHasher
	Notifier    MeetingNotifier

	// MeetingLocation is the zone meeting dates and times are read in.
	MeetingLocation *time.Location
	// Now overrides the clock used for meeting validation.
	Now func() time.Time
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	sessionSvc := session.NewService(session.ServiceDeps{
		UserRepo: deps.UserRepo,
		Hasher:   deps.Hasher,
		Tokens:   deps.Tokens,
	})
	userSvc := user.NewService(user.ServiceDeps{
		UserRepo: deps.UserRepo,
		Hasher:   deps.Hasher,
	})
	meetingDeps := meeting.ServiceDeps{
		MeetingRepo: deps.MeetingRepo,
		Now:         deps.Now,
		Location:    deps.MeetingLocation,
	}
	if deps.Notifier != nil {
		meetingDeps.Notifier = deps.Notifier
	}
	meetingSvc := meeting.NewService(meetingDeps)
	petDeps := pet.ServiceDeps{PetRepo: deps.PetRepo}
	if deps.PetCache != nil {
		petDeps.Cache = deps.PetCache
	}
	if deps.Images != nil {
		petDeps.Images = deps.Images
	}
	petSvc := pet.NewService(petDeps)

	cookies := handler.CookieConfig{
		Secure:     cfg.CookieSecure,
		AccessTTL:  deps.Tokens.AccessTTL(),
		RefreshTTL: deps.Tokens.RefreshTTL(),
	}

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(sessionSvc, cookies)
	userH := handler.NewUserHandler(userSvc)
	meetingH := handler.NewMeetingHandler(meetingSvc)
	petH := handler.NewPetHandler(petSvc)

	// ── Public routes ────────────────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/register", userH.Register)
	r.Post("/login", sessionH.Login)
	r.Get("/verify-token", sessionH.VerifyToken)
	r.Post("/refresh-token", sessionH.RefreshToken)
	r.Post("/logout", sessionH.Logout)
	r.Get("/pets", petH.List)
	r.Get("/images/{key}", petH.Image)
	r.Post("/meetings", meetingH.Create)

	// ── Session routes ───────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Session(deps.Tokens))

		r.Get("/user/me", userH.Me)
		r.Get("/meetings/user", meetingH.ListMine)
	})

	return r
}
