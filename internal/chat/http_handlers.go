package chat

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type chatRequest struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler serves POST /api/chat. Command failures come back as
// reply text with HTTP 200; only an undecodable body is a 400.
func ChatHandler(bot *Bot, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// An absent message falls through the parser to the help
		// reply; no special casing here.
		reply := bot.Handle(r.Context(), body.Message, body.Phone, body.Email)

		if err := json.NewEncoder(w).Encode(chatResponse{Reply: reply}); err != nil {
			log.Error("failed to encode chat reply", zap.Error(err))
		}
	}
}

type healthResponse struct {
	Status        string          `json:"status"`
	Notifications map[string]bool `json:"notifications"`
}

// HealthHandler serves GET /api/health, reporting which notification
// channels are configured.
func HealthHandler(smsEnabled, emailEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status: "healthy",
			Notifications: map[string]bool{
				"sms":   smsEnabled,
				"email": emailEnabled,
			},
		})
	}
}
