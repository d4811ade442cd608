package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"activitysignup/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(activityController *controllers.ActivityController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes. Path segments are URL-decoded by the mux, so activity
	// names with spaces and emails with %40 match as written.
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.SignUp)
	mux.HandleFunc("DELETE /activities/{activityName}/participants/{email}", activityController.RemoveParticipant)

	// Front-end
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
