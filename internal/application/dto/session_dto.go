package dto

// SessionResponse respuesta de POST /api/sessions.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}
