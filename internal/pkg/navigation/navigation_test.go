package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromWithoutNavigatorDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		From(context.Background()).Redirect("/studios")
		Error(context.Background(), "Studio not found")
	})
}

func TestRecorderCollects(t *testing.T) {
	rec := NewRecorder()
	ctx := With(context.Background(), rec)

	From(ctx).Redirect("/onboard-requests")
	From(ctx).Redirect("/studios")
	Error(ctx, "Studio not found")
	Success(ctx, "Saved")

	assert.Equal(t, "/studios", rec.RedirectPath())
	assert.Equal(t, []Notification{
		{Level: LevelError, Message: "Studio not found"},
		{Level: LevelSuccess, Message: "Saved"},
	}, rec.Notifications())
}
