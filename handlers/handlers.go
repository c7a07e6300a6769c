package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/database"
	"kcpos/store"
)

// appStore is the state container all handlers read and write. It is set
// once at startup (and by tests).
var appStore *store.Store

var validate = validator.New()

// SetStore wires the state container into the handlers.
func SetStore(s *store.Store) {
	appStore = s
}

// persist runs a write-through to the database when one is configured.
// Failures are logged and not surfaced; the in-memory store remains the
// source of truth for reports.
func persist(op string, fn func(ctx context.Context, db *pgxpool.Pool) error) {
	db := database.GetDB()
	if db == nil {
		return
	}
	if err := fn(context.Background(), db); err != nil {
		log.Printf("⚠️  [DB] %s write-through failed: %v", op, err)
	}
}

// parseIDParam reads an integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
