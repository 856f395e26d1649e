package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
)

// Canteen serves items off its menu
type Canteen struct {
	Entity
	menu         map[string]int64
	requestDelay time.Duration
}

// NewCanteen creates a canteen with the given menu
func NewCanteen(name string, menu map[string]int64, lgr zerolog.Logger) *Canteen {
	c := &Canteen{
		Entity: newEntity("Canteen", name, lgr),
		menu:   make(map[string]int64, len(menu)),
	}
	for item, price := range menu {
		c.menu[item] = price
	}
	return c
}

// SetRequestDelay sets the approval pause of RequestItem
func (c *Canteen) SetRequestDelay(d time.Duration) {
	c.requestDelay = d
}

// Menu returns a copy of the menu
func (c *Canteen) Menu() map[string]int64 {
	out := make(map[string]int64, len(c.menu))
	for item, price := range c.menu {
		out[item] = price
	}
	return out
}

// OrderItem serves an item when it is on the menu
func (c *Canteen) OrderItem(student *models.Student, item string) models.Outcome {
	price, ok := c.menu[item]
	if !ok {
		return c.report(models.NewOutcome(models.OutcomeUnavailable, "%s not available in canteen", item))
	}
	return c.report(models.NewOutcome(models.OutcomeOK, "%s ordered %s for ₹%d", student.Name, item, price))
}

// UpdateDB stores the canteen's menu in the canteen database. The entry is
// the canteen's own menu, so later edits through either side are shared.
func (c *Canteen) UpdateDB(repo *repositories.CanteenRepository) models.Outcome {
	repo.Put(c.Name, c.menu)
	return c.report(models.NewOutcome(models.OutcomeOK, "Canteen %s updated in database", c.Name))
}

// UpdateMenu sets an item price in the database entry, registering the
// canteen first when it has no entry
func (c *Canteen) UpdateMenu(repo *repositories.CanteenRepository, item string, price int64) models.Outcome {
	if !repo.Exists(c.Name) {
		c.logger.Info().Msg("Canteen not found in database, adding first")
		c.UpdateDB(repo)
	}
	menu, _ := repo.Get(c.Name)
	menu[item] = price
	return c.report(models.NewOutcome(models.OutcomeOK, "Menu updated in database: %s for ₹%d", item, price))
}

// RequestItem adds or reprices an item on the menu once the request is approved
func (c *Canteen) RequestItem(ctx context.Context, item string, price int64) (models.Outcome, error) {
	c.logger.Info().Str("item", item).Int64("price", price).Msg("Requested to add item to canteen menu")
	if err := pause(ctx, c.requestDelay); err != nil {
		return models.Outcome{}, fmt.Errorf("requesting %s: %w", item, err)
	}
	c.menu[item] = price
	return c.report(models.NewOutcome(models.OutcomeOK, "Request approved: %s for ₹%d", item, price)), nil
}
