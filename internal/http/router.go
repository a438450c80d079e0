package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventree/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	// Read-only surface.
	r.Get("/items", handlers.GetItemsHandler)
	r.Get("/items/export", handlers.ExportItemsHandler)
	r.Get("/items/import/template", handlers.ImportTemplateHandler)
	r.Get("/items/{name}", handlers.GetItemByNameHandler)
	r.Get("/history", handlers.GetHistoryHandler)
	r.Get("/dashboard", handlers.GetDashboardHandler)

	// Stock-affecting operations require auth.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/items/stock", handlers.ReceiveStockHandler)
		r.Post("/items/import", handlers.ImportItemsHandler)
		r.Post("/items/{name}/sale", handlers.RecordSaleHandler)
		r.Put("/items/{name}", handlers.UpdateItemHandler)
		r.Delete("/items/{name}", handlers.DeleteItemHandler)
		r.Get("/settings/{key}", handlers.GetSettingHandler)
		r.Put("/settings/{key}", handlers.SaveSettingHandler)
	})

	return r
}
