package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"booking_console/model"
	"booking_console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Flash keeps one-shot notifications in redis per browser session so they
// survive a full page reload. Without redis it degrades to a no-op; the
// action response itself still carries the message.
type Flash struct {
	rdb *redis.Client
}

func NewFlash(rdb *redis.Client) *Flash {
	return &Flash{rdb: rdb}
}

func (f *Flash) Push(c *fiber.Ctx, typ, message string) {
	if f == nil || f.rdb == nil {
		return
	}

	payload, _ := json.Marshal(model.Notification{Type: typ, Message: message})
	key := "console:flash:" + sessionID(c)

	ctx := context.Background()
	if err := f.rdb.RPush(ctx, key, payload).Err(); err != nil {
		log.Printf("flash push failed: %v", err)
		return
	}
	f.rdb.Expire(ctx, key, 5*time.Minute)
}

func (f *Flash) Pop(c *fiber.Ctx) []model.Notification {
	if f == nil || f.rdb == nil {
		return []model.Notification{}
	}

	key := "console:flash:" + sessionID(c)
	ctx := context.Background()

	raw, err := f.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		log.Printf("flash read failed: %v", err)
		return []model.Notification{}
	}
	f.rdb.Del(ctx, key)

	notes := make([]model.Notification, 0, len(raw))
	for _, item := range raw {
		var n model.Notification
		if json.Unmarshal([]byte(item), &n) == nil {
			notes = append(notes, n)
		}
	}
	return notes
}

// Notifications drains the pending flash messages for this session.
func (h *Handler) Notifications(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.flash.Pop(c))
}

func sessionID(c *fiber.Ctx) string {
	sid := c.Cookies("console_session")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "console_session",
			Value:    sid,
			HTTPOnly: true,
			Path:     "/",
		})
	}
	return sid
}
