package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dharmasatrya/flyback/internal/datetime"
	"github.com/dharmasatrya/flyback/internal/models"
)

func leg(origin, destination string, day int) models.LegQuery {
	return models.LegQuery{
		Origin:      origin,
		Destination: destination,
		Date:        datetime.NewDate(2025, time.January, day),
		Passengers:  1,
	}
}

func TestLegKey_StableAndDistinct(t *testing.T) {
	a := legKey(leg("CPH", "BER", 3))
	if a != legKey(leg("CPH", "BER", 3)) {
		t.Fatal("key should be deterministic")
	}
	if !strings.HasPrefix(a, "flyback:leg:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}

	others := []models.LegQuery{
		leg("BER", "CPH", 3),
		leg("CPH", "BER", 4),
		{Origin: "CPH", Destination: "BER", Date: datetime.NewDate(2025, time.January, 3), Passengers: 2},
	}
	for _, q := range others {
		if legKey(q) == a {
			t.Fatalf("keys collide for %+v", q)
		}
	}
}

func TestNoOpCache_AlwaysMisses(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	if err := c.Set(ctx, leg("CPH", "BER", 3), []models.Flight{{ID: "x"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Get(ctx, leg("CPH", "BER", 3)); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRedisCache_UnreachableServer(t *testing.T) {
	_, err := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1", TTL: time.Minute})
	if err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
