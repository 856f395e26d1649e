package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
)

func TestCanteen_Orders(t *testing.T) {
	c := NewCanteen("IET Cafeteria", map[string]int64{"Coffee": 20}, zerolog.Nop())
	riya := newTestStudent("S2", "Riya", "ECE")

	assert.Equal(t, models.OutcomeOK, c.OrderItem(riya, "Coffee").Status)
	assert.Equal(t, models.OutcomeUnavailable, c.OrderItem(riya, "Pizza").Status)

	out, err := c.RequestItem(context.Background(), "Pizza", 80)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, models.OutcomeOK, c.OrderItem(riya, "Pizza").Status)
}

func TestCanteen_RequestItemCancelled(t *testing.T) {
	c := NewCanteen("IET Cafeteria", nil, zerolog.Nop())
	c.SetRequestDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RequestItem(ctx, "Pizza", 80)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, c.Menu(), "Pizza")
}

func TestCanteen_UpdateMenuSharesEntry(t *testing.T) {
	c := NewCanteen("IET Cafeteria", map[string]int64{"Chowmein": 40}, zerolog.Nop())
	repo := repositories.NewCanteenRepository()

	// No entry yet: the canteen registers itself first
	out := c.UpdateMenu(repo, "Sandwich", 30)
	assert.Equal(t, models.OutcomeOK, out.Status)

	stored, ok := repo.Get("IET Cafeteria")
	require.True(t, ok)
	assert.Equal(t, map[string]int64{"Chowmein": 40, "Sandwich": 30}, stored)
	assert.Equal(t, map[string]int64{"Chowmein": 40, "Sandwich": 30}, c.Menu())

	_, err := c.RequestItem(context.Background(), "Coffee", 20)
	require.NoError(t, err)
	stored, _ = repo.Get("IET Cafeteria")
	assert.Equal(t, int64(20), stored["Coffee"])
}
