package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopsaathi/saathi/internal/transaction"
)

// Scenario selects one of the bundled demo datasets.
type Scenario string

const (
	ScenarioNormalWeek   Scenario = "normal-week"
	ScenarioWeekendBoost Scenario = "weekend-boost"
	ScenarioSlowWeek     Scenario = "slow-week"
	ScenarioHighValue    Scenario = "high-value"
)

// Scenarios lists the valid scenario names for UIs and CLI help.
func Scenarios() []Scenario {
	return []Scenario{ScenarioNormalWeek, ScenarioWeekendBoost, ScenarioSlowWeek, ScenarioHighValue}
}

type product struct {
	name     string
	minCents int64
	maxCents int64
}

// catalog mirrors a typical kirana assortment.
var catalog = []product{
	{"Coca Cola 500ml", 1500, 5000},
	{"Lays Classic 50g", 1000, 3000},
	{"Maggi 2-Minute Noodles", 1200, 2500},
	{"Parle-G Biscuits 100g", 1000, 2000},
	{"Tata Tea 250g", 4000, 9000},
	{"Dettol Soap 100g", 2500, 6000},
	{"Colgate Toothpaste 100g", 3500, 9500},
	{"Rice 1kg", 4000, 9000},
	{"Cooking Oil 1L", 9000, 15000},
	{"Bread Loaf", 2000, 4500},
	{"Milk 1L", 3000, 6500},
	{"Eggs 12pcs", 5000, 8000},
	{"Onions 1kg", 1500, 4000},
	{"Tomatoes 1kg", 1500, 5000},
	{"Potatoes 1kg", 1500, 3500},
}

// quantityWeights skews baskets toward single-unit purchases.
var quantityWeights = []struct {
	qty    int64
	weight int
}{
	{1, 50}, {2, 25}, {3, 15}, {4, 7}, {5, 3},
}

const sampleDays = 7

// Generate builds a deterministic demo dataset for the scenario, covering
// the seven days ending at anchor. The fixed per-scenario seed keeps
// repeated loads identical so KPIs are reproducible in demos.
func Generate(scenario Scenario, anchor time.Time) ([]transaction.Transaction, error) {
	perDay, weekendFactor, priceBoost, err := scenarioShape(scenario)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed(scenario)))
	start := transaction.Day(anchor).AddDate(0, 0, -(sampleDays - 1))

	var txs []transaction.Transaction

	for day := 0; day < sampleDays; day++ {
		date := start.AddDate(0, 0, day)

		n := perDay
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			n = int(float64(perDay) * weekendFactor)
		}

		for i := 0; i < n; i++ {
			p := catalog[rng.Intn(len(catalog))]

			price := p.minCents + rng.Int63n(p.maxCents-p.minCents+1)
			if priceBoost {
				price = p.maxCents + rng.Int63n(p.maxCents)
			}

			txs = append(txs, transaction.Transaction{
				Date:      date,
				Product:   p.name,
				Quantity:  pickQuantity(rng),
				UnitPrice: price,
			})
		}
	}

	return txs, nil
}

func scenarioShape(scenario Scenario) (perDay int, weekendFactor float64, priceBoost bool, err error) {
	switch scenario {
	case ScenarioNormalWeek:
		return 20, 1.5, false, nil
	case ScenarioWeekendBoost:
		return 20, 3.0, false, nil
	case ScenarioSlowWeek:
		return 6, 1.0, false, nil
	case ScenarioHighValue:
		return 12, 1.5, true, nil
	default:
		return 0, 0, false, fmt.Errorf("unknown scenario %q", scenario)
	}
}

func pickQuantity(rng *rand.Rand) int64 {
	total := 0
	for _, w := range quantityWeights {
		total += w.weight
	}

	n := rng.Intn(total)
	for _, w := range quantityWeights {
		if n < w.weight {
			return w.qty
		}

		n -= w.weight
	}

	return 1
}

// seed derives a stable per-scenario seed.
func seed(scenario Scenario) int64 {
	var h int64
	for _, r := range string(scenario) {
		h = h*31 + int64(r)
	}

	return h
}
