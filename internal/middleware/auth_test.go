package middleware

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func allowOnly(ids ...int64) func(int64) bool {
	return func(id int64) bool {
		for _, allowed := range ids {
			if id == allowed {
				return true
			}
		}
		return false
	}
}

func messageUpdate(userID int64) *models.Update {
	return &models.Update{
		Message: &models.Message{
			From: &models.User{ID: userID},
			Chat: models.Chat{ID: 1},
			Text: "hi",
		},
	}
}

func TestAllowlist_PassesListedUser(t *testing.T) {
	called := false
	next := func(ctx context.Context, b *bot.Bot, update *models.Update) {
		called = true
	}

	Allowlist(allowOnly(100))(next)(context.Background(), nil, messageUpdate(100))

	if !called {
		t.Fatal("expected handler to run for allowlisted user")
	}
}

func TestAllowlist_DropsUnlistedUser(t *testing.T) {
	called := false
	next := func(ctx context.Context, b *bot.Bot, update *models.Update) {
		called = true
	}

	Allowlist(allowOnly(100))(next)(context.Background(), nil, messageUpdate(999))

	if called {
		t.Fatal("expected handler to be skipped for unknown user")
	}
}

func TestAllowlist_IgnoresNonMessageUpdates(t *testing.T) {
	called := false
	next := func(ctx context.Context, b *bot.Bot, update *models.Update) {
		called = true
	}

	Allowlist(allowOnly(100))(next)(context.Background(), nil, &models.Update{})

	if !called {
		t.Fatal("expected non-message updates to pass through")
	}
}
