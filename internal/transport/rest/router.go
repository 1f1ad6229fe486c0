package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thrgacha/internal/app"
	"thrgacha/internal/transport/rest/handler"
	"thrgacha/internal/transport/rest/middleware"
)

// NewRouter creates the API router with all endpoints.
func NewRouter(a *app.App, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(a.RoomService, logger)
	questionHandler := handler.NewQuestionHandler(a.QuestionService, logger)
	entryHandler := handler.NewEntryHandler(a.EntryService, logger)
	spinHandler := handler.NewSpinHandler(a.SpinService, a.TokenService, logger)
	statsHandler := handler.NewStatsHandler(a.StatsService, logger)

	r.Use(corsMiddleware)
	r.Use(middleware.Logging(logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Room management
	v1.HandleFunc("/rooms", roomHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms", roomHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}", roomHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/tiers", roomHandler.UpdateTiers).Methods("PUT", "OPTIONS")

	// Questions
	v1.HandleFunc("/rooms/{roomId}/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/questions/bulk", questionHandler.BulkCreate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/questions/active", questionHandler.ListActive).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/answers", questionHandler.Answer).Methods("POST", "OPTIONS")

	// Entry codes
	v1.HandleFunc("/rooms/{roomId}/entries", entryHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/entries", entryHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/entries/validate", entryHandler.Validate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/entries/activate", entryHandler.Activate).Methods("POST", "OPTIONS")

	// Spins and tokens
	v1.HandleFunc("/rooms/{roomId}/spins", spinHandler.Spin).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/spins", spinHandler.History).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/tokens", spinHandler.Balance).Methods("GET", "OPTIONS")

	// Statistics
	v1.HandleFunc("/rooms/{roomId}/stats", statsHandler.Room).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/stats/questions", statsHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/stats/participants", statsHandler.Participants).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/stats/rewards", statsHandler.Rewards).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/leaderboard", statsHandler.Leaderboard).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
