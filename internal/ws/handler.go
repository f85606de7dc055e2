package ws

import (
	"log"
	"net/http"
	"strings"

	"match-ton-alternance/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleMatchesWS upgrades the connection and binds it to the candidate
// identified by the token query parameter. Browsers cannot set headers on
// websocket dials, hence the query-string token.
func (h *Handler) HandleMatchesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
