package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/juliogsp/restaurante-seeder/internal/models"
)

// passwordPlaceholder stands in for a real hash. Generated accounts are not
// meant to be logged into through the normal auth flow.
const passwordPlaceholder = "HASHED_PASSWORD_PLACEHOLDER"

// itemReviewFraction is the share of reviews that single out one line item
// of the referenced order instead of rating the order as a whole.
const itemReviewFraction = 0.2

// Generator produces the synthetic documents for one seeding run. All
// randomness flows through its embedded source and all timestamps are
// derived from its reference time, so a Generator built with a fixed seed
// and reference time yields identical output on every run.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a Generator seeded with the given value; seed 0
// derives one from the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGeneratorAt(seed, time.Now().UTC())
}

// NewGeneratorAt pins the reference time as well as the seed.
func NewGeneratorAt(seed int64, now time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// ── Random field helpers ──

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+34 %d-%d-%d",
		600+g.rng.Intn(200), 100+g.rng.Intn(900), 100+g.rng.Intn(900))
}

func (g *Generator) address(maxNumber int) string {
	return fmt.Sprintf("%d %s, %s", 1+g.rng.Intn(maxNumber), g.pick(streets), g.pick(cities))
}

// timestampBack returns a moment uniformly distributed over the trailing
// daysBack days.
func (g *Generator) timestampBack(daysBack int) time.Time {
	window := int64(daysBack) * 24 * int64(time.Hour)
	return g.now.Add(-time.Duration(g.rng.Int63n(window)))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// restaurantEmail derives a contact address from the restaurant name,
// keeping only ASCII letters and digits.
func restaurantEmail(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "info@" + b.String() + ".com"
}

// ── Restaurants ──

// Restaurants builds one record per fixed restaurant label: random address,
// a uniformly random GeoJSON location, regional phone format, derived email
// and the fixed weekly schedule.
func (g *Generator) Restaurants() []models.Restaurant {
	out := make([]models.Restaurant, 0, len(restaurantNames))
	for _, name := range restaurantNames {
		out = append(out, models.Restaurant{
			Name:    name,
			Address: g.address(200),
			Location: models.GeoPoint{
				Type: "Point",
				Coordinates: []float64{
					round6(-180 + g.rng.Float64()*360),
					round6(-90 + g.rng.Float64()*180),
				},
			},
			Phone:    g.phone(),
			Email:    restaurantEmail(name),
			Schedule: weekSchedule,
		})
	}
	return out
}

// ── Users ──

// seedUsers are the two deterministic accounts inserted ahead of the random
// ones, used for manual testing access.
func (g *Generator) seedUsers() []models.User {
	return []models.User{
		{
			FirstName:    "Admin",
			LastName:     "Restaurante",
			Email:        "admin@ejemplo.com",
			Phone:        "+34 600-000-001",
			Address:      "1 Av. Principal, Madrid",
			NIT:          "10000001",
			RegisteredAt: g.now,
			Password:     passwordPlaceholder,
			Role:         models.RoleAdmin,
		},
		{
			FirstName:    "Demo",
			LastName:     "Usuario",
			Email:        "demo@ejemplo.com",
			Phone:        "+34 600-000-002",
			Address:      "2 Calle Secundaria, Madrid",
			NIT:          "10000002",
			RegisteredAt: g.now,
			Password:     passwordPlaceholder,
			Role:         models.RoleUser,
		},
	}
}

// Users returns the two seed accounts followed by n randomly generated
// ones. Synthetic emails are keyed by a sequential counter, which keeps
// them unique within a run; registration dates spread over the trailing
// twelve months.
func (g *Generator) Users(n int) []models.User {
	out := make([]models.User, 0, n+2)
	out = append(out, g.seedUsers()...)
	for i := 0; i < n; i++ {
		out = append(out, models.User{
			FirstName:    g.pick(firstNames),
			LastName:     g.pick(lastNames),
			Email:        fmt.Sprintf("user%d@ejemplo.com", i),
			Phone:        g.phone(),
			Address:      g.address(500),
			NIT:          fmt.Sprintf("%d", 10_000_000+g.rng.Intn(90_000_000)),
			RegisteredAt: g.timestampBack(365),
			Password:     passwordPlaceholder,
			Role:         g.pick(roles),
		})
	}
	return out
}

// ── Orders ──

// Orders builds n orders, each referencing a random user and restaurant and
// 1-5 distinct menu items with random quantities. Name and price are
// snapshotted from the menu pool and the total is the rounded sum of
// quantity×price. Fails when the menu pool is smaller than a requested
// sample.
func (g *Generator) Orders(n int, userIDs, restaurantIDs []primitive.ObjectID, menu []models.MenuItem) ([]models.Order, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("order generation needs at least one user")
	}
	if len(restaurantIDs) == 0 {
		return nil, fmt.Errorf("order generation needs at least one restaurant")
	}

	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		k := 1 + g.rng.Intn(5)
		sample, err := g.sampleMenuItems(menu, k)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}

		items := make([]models.OrderItem, 0, k)
		total := 0.0
		for _, art := range sample {
			qty := 1 + g.rng.Intn(3)
			total += float64(qty) * art.Price
			items = append(items, models.OrderItem{
				MenuItemID: art.ID,
				Name:       art.Name,
				Quantity:   qty,
				Price:      art.Price,
			})
		}

		orders = append(orders, models.Order{
			UserID:       userIDs[g.rng.Intn(len(userIDs))],
			RestaurantID: restaurantIDs[g.rng.Intn(len(restaurantIDs))],
			Date:         g.timestampBack(365),
			Status:       g.pick(orderStatuses),
			Total:        round2(total),
			Items:        items,
		})
	}
	return orders, nil
}

// sampleMenuItems draws k distinct items without replacement. A pool
// smaller than k is a contract violation of the menu collection and fails
// loudly rather than producing short orders.
func (g *Generator) sampleMenuItems(pool []models.MenuItem, k int) ([]models.MenuItem, error) {
	if k > len(pool) {
		return nil, fmt.Errorf("menu has %d items, cannot sample %d without replacement", len(pool), k)
	}
	out := make([]models.MenuItem, 0, k)
	for _, j := range g.rng.Perm(len(pool))[:k] {
		out = append(out, pool[j])
	}
	return out, nil
}

// ── Reviews ──

// Reviews builds n reviews. Each picks a user independently and a random
// generated order, inheriting that order's restaurant. A fixed fraction are
// item-level: one of the order's line items is referenced and the comment
// is templated with its name; the rest use generic order-level comments.
// orderIDs and orders must be parallel slices from the order stage.
func (g *Generator) Reviews(n int, userIDs, orderIDs []primitive.ObjectID, orders []models.Order) ([]models.Review, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("review generation needs at least one user")
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("review generation needs at least one order")
	}
	if len(orderIDs) != len(orders) {
		return nil, fmt.Errorf("got %d order ids for %d orders", len(orderIDs), len(orders))
	}

	reviews := make([]models.Review, 0, n)
	for i := 0; i < n; i++ {
		j := g.rng.Intn(len(orders))
		order := orders[j]

		review := models.Review{
			UserID:       userIDs[g.rng.Intn(len(userIDs))],
			RestaurantID: order.RestaurantID,
			OrderID:      orderIDs[j],
			Rating:       g.weightedRating(),
			Date:         g.timestampBack(365),
		}

		if g.rng.Float64() < itemReviewFraction {
			item := order.Items[g.rng.Intn(len(order.Items))]
			id := item.MenuItemID
			review.MenuItemID = &id
			review.Comment = fmt.Sprintf(g.pick(itemComments), item.Name)
		} else {
			review.Comment = g.pick(orderComments)
		}

		reviews = append(reviews, review)
	}
	return reviews, nil
}

// weightedRating samples a rating in 1..5 from the fixed weight table.
func (g *Generator) weightedRating() int {
	total := 0
	for _, w := range ratingWeights {
		total += w
	}
	v := g.rng.Intn(total)
	for r, w := range ratingWeights {
		if v < w {
			return r + 1
		}
		v -= w
	}
	return len(ratingWeights)
}
