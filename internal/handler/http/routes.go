package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/verify-otp", h.verifyOtp)
		r.Post("/api/auth/resend-otp", h.resendOtp)

		r.Get("/api/news", h.headlines)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Route("/api/trades", func(r chi.Router) {
			r.Get("/", h.listTrades)
			r.Post("/", h.createTrade)
			r.Get("/{id}", h.getTrade)
			r.Put("/{id}", h.updateTrade)
			r.Delete("/{id}", h.deleteTrade)
			r.Post("/{id}/star", h.toggleStar)
		})

		r.Route("/api/goals", func(r chi.Router) {
			r.Get("/", h.getGoal)
			r.Put("/", h.upsertGoal)
			r.Get("/all", h.listGoals)
		})

		r.Route("/api/mistakes", func(r chi.Router) {
			r.Get("/", h.listMistakes)
			r.Post("/", h.createMistake)
			r.Post("/{id}/repeat", h.repeatMistake)
			r.Delete("/{id}", h.deleteMistake)
		})

		r.Route("/api/rules", func(r chi.Router) {
			r.Get("/", h.listRules)
			r.Post("/", h.createRule)
			r.Put("/{id}", h.updateRule)
			r.Delete("/{id}", h.deleteRule)
		})

		r.Route("/api/analytics", func(r chi.Router) {
			r.Get("/summary", h.summary)
			r.Get("/risk", h.risk)
			r.Get("/distribution", h.distribution)
			r.Get("/streaks", h.streaks)
			r.Get("/goal-progress", h.goalProgress)
		})

		r.Post("/api/chat", h.chat)
	})

	return router
}
