// Package seatmap produces the fixed single-aisle cabin layout used by
// the seat-selection flow.
package seatmap

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
)

const (
	Rows        = 30
	SeatsPerRow = 6
	// AislePosition is the index of the nil spacer cell in each row.
	AislePosition = 3

	occupiedProbability = 0.2
)

// Exit rows are positionally fixed; every seat in them is priced and
// typed as "exit" regardless of column.
var exitRows = map[int]bool{10: true, 11: true}

var seatLabels = [SeatsPerRow]string{"A", "B", "C", "D", "E", "F"}

var columnTypes = [SeatsPerRow]domain.SeatType{
	domain.SeatWindow, domain.SeatMiddle, domain.SeatAisle,
	domain.SeatAisle, domain.SeatMiddle, domain.SeatWindow,
}

// Pricing maps seat type to its selection price in rupees.
var Pricing = map[domain.SeatType]int64{
	domain.SeatWindow: 500,
	domain.SeatMiddle: 300,
	domain.SeatAisle:  400,
	domain.SeatExit:   700,
}

// Generator builds seat grids. Occupancy is re-rolled on every Generate
// call; the map is intentionally not authoritative inventory and does
// not persist between renders. Seed the source to make it deterministic.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a time-seeded generator.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a generator with a fixed seed, for reproducible maps.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns Rows rows of SeatsPerRow seats plus one nil aisle
// spacer at AislePosition. Seat ids are "<row><letter>", 1-based rows.
func (g *Generator) Generate() [][]*models.Seat {
	g.mu.Lock()
	defer g.mu.Unlock()

	grid := make([][]*models.Seat, Rows)
	for row := 0; row < Rows; row++ {
		cells := make([]*models.Seat, 0, SeatsPerRow+1)
		for col := 0; col < SeatsPerRow; col++ {
			if col == AislePosition {
				cells = append(cells, nil)
			}
			seatType := columnTypes[col]
			if exitRows[row] {
				seatType = domain.SeatExit
			}
			cells = append(cells, &models.Seat{
				ID:         strconv.Itoa(row+1) + seatLabels[col],
				Type:       seatType,
				IsOccupied: g.rng.Float64() < occupiedProbability,
				Price:      Pricing[seatType],
			})
		}
		grid[row] = cells
	}
	return grid
}

// SeatFromID rebuilds the canonical seat for an id like "12C". Type and
// price are derived from the position, never taken from the client.
func SeatFromID(id string) (models.Seat, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) < 2 {
		return models.Seat{}, domain.ValidationError{Field: "seatId", Msg: "invalid seat id"}
	}
	rowPart, letter := id[:len(id)-1], id[len(id)-1:]
	row, err := strconv.Atoi(rowPart)
	if err != nil || row < 1 || row > Rows {
		return models.Seat{}, domain.ValidationError{Field: "seatId", Msg: "seat row out of range"}
	}
	col := -1
	for i, l := range seatLabels {
		if l == letter {
			col = i
			break
		}
	}
	if col < 0 {
		return models.Seat{}, domain.ValidationError{Field: "seatId", Msg: "unknown seat column"}
	}
	seatType := columnTypes[col]
	if exitRows[row-1] {
		seatType = domain.SeatExit
	}
	return models.Seat{
		ID:    id,
		Type:  seatType,
		Price: Pricing[seatType],
	}, nil
}

// Find returns the seat with the given id from a generated grid.
func Find(grid [][]*models.Seat, id string) (*models.Seat, bool) {
	for _, row := range grid {
		for _, seat := range row {
			if seat != nil && seat.ID == id {
				return seat, true
			}
		}
	}
	return nil, false
}
