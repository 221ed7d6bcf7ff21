package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/snackvote/docs"
	balancehandlers "github.com/GlebRadaev/snackvote/internal/handlers/balance"
	officehandlers "github.com/GlebRadaev/snackvote/internal/handlers/offices"
	producthandlers "github.com/GlebRadaev/snackvote/internal/handlers/products"
	votehandlers "github.com/GlebRadaev/snackvote/internal/handlers/votes"
	"github.com/GlebRadaev/snackvote/internal/service"
	"github.com/GlebRadaev/snackvote/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type VoteHandler interface {
	Vote(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	EndSession(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
}

type OfficeHandler interface {
	GetOffice(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	ProductVotes(w http.ResponseWriter, r *http.Request)
	SetCzar(w http.ResponseWriter, r *http.Request)
	SetTipping(w http.ResponseWriter, r *http.Request)
	StartVotingPeriod(w http.ResponseWriter, r *http.Request)
	CloseVotingPeriod(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	VoteHandler    VoteHandler
	BalanceHandler BalanceHandler
	OfficeHandler  OfficeHandler
	ProductHandler ProductHandler
	tokens         auth.TokenValidator
}

func New(s *service.Services, tokens auth.TokenValidator) *Handlers {
	return &Handlers{
		VoteHandler:    votehandlers.New(s.SessionManager),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		OfficeHandler:  officehandlers.New(s.OfficeService),
		ProductHandler: producthandlers.New(s.ProductService),
		tokens:         tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Get("/balance", h.BalanceHandler.GetBalance)
		r.Get("/products", h.ProductHandler.List)

		r.Route("/offices/{office}", func(r chi.Router) {
			r.Get("/", h.OfficeHandler.GetOffice)
			r.Get("/leaderboard", h.OfficeHandler.Leaderboard)
			r.Get("/products/{productID}/votes", h.OfficeHandler.ProductVotes)
			r.Post("/votes/{productID}/{direction}", h.VoteHandler.Vote)
			r.Route("/session", func(r chi.Router) {
				r.Get("/", h.VoteHandler.GetSession)
				r.Delete("/", h.VoteHandler.EndSession)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly)

			r.Post("/users/{userID}/grant", h.BalanceHandler.Grant)
			r.Route("/offices/{office}", func(r chi.Router) {
				r.Put("/czar", h.OfficeHandler.SetCzar)
				r.Put("/tipping", h.OfficeHandler.SetTipping)
				r.Post("/period", h.OfficeHandler.StartVotingPeriod)
				r.Post("/period/close", h.OfficeHandler.CloseVotingPeriod)
			})
			r.Route("/products", func(r chi.Router) {
				r.Post("/", h.ProductHandler.Create)
				r.Put("/{productID}/active", h.ProductHandler.SetActive)
			})
		})
	})

	return r
}
