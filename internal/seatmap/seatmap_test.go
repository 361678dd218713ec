package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyroute/internal/domain"
)

func TestGenerateLayout(t *testing.T) {
	grid := NewSeeded(1).Generate()
	require.Len(t, grid, Rows)

	for rowIdx, row := range grid {
		require.Len(t, row, SeatsPerRow+1, "row %d", rowIdx)
		assert.Nil(t, row[AislePosition], "row %d aisle spacer", rowIdx)

		seats := 0
		for cellIdx, seat := range row {
			if cellIdx == AislePosition {
				continue
			}
			require.NotNil(t, seat, "row %d cell %d", rowIdx, cellIdx)
			seats++
			assert.Equal(t, Pricing[seat.Type], seat.Price, "seat %s", seat.ID)
		}
		assert.Equal(t, SeatsPerRow, seats, "row %d", rowIdx)
	}
}

func TestGenerateSeatIDs(t *testing.T) {
	grid := NewSeeded(1).Generate()

	assert.Equal(t, "1A", grid[0][0].ID)
	assert.Equal(t, "1C", grid[0][2].ID)
	// Cells after the aisle spacer continue with D..F.
	assert.Equal(t, "1D", grid[0][4].ID)
	assert.Equal(t, "1F", grid[0][6].ID)
	assert.Equal(t, "30F", grid[29][6].ID)
}

func TestExitRowsOverrideColumnType(t *testing.T) {
	grid := NewSeeded(7).Generate()

	for _, rowIdx := range []int{10, 11} {
		for _, seat := range grid[rowIdx] {
			if seat == nil {
				continue
			}
			assert.Equal(t, domain.SeatExit, seat.Type, "seat %s", seat.ID)
			assert.Equal(t, int64(700), seat.Price, "seat %s", seat.ID)
		}
	}

	// Neighboring rows keep their positional types.
	assert.Equal(t, domain.SeatWindow, grid[9][0].Type)
	assert.Equal(t, domain.SeatMiddle, grid[12][1].Type)
	assert.Equal(t, domain.SeatAisle, grid[12][2].Type)
}

func TestGenerateDeterministicUnderFixedSeed(t *testing.T) {
	a := NewSeeded(42).Generate()
	b := NewSeeded(42).Generate()

	for r := range a {
		for c := range a[r] {
			if a[r][c] == nil {
				assert.Nil(t, b[r][c])
				continue
			}
			assert.Equal(t, a[r][c].IsOccupied, b[r][c].IsOccupied, "seat %s", a[r][c].ID)
		}
	}
}

func TestGenerateReRollsOccupancy(t *testing.T) {
	g := NewSeeded(3)
	first := g.Generate()
	second := g.Generate()

	diff := 0
	for r := range first {
		for c := range first[r] {
			if first[r][c] == nil {
				continue
			}
			if first[r][c].IsOccupied != second[r][c].IsOccupied {
				diff++
			}
		}
	}
	assert.NotZero(t, diff, "occupancy should re-roll between renders")
}

func TestSeatFromID(t *testing.T) {
	seat, err := SeatFromID("1a")
	require.NoError(t, err)
	assert.Equal(t, "1A", seat.ID)
	assert.Equal(t, domain.SeatWindow, seat.Type)
	assert.Equal(t, int64(500), seat.Price)

	seat, err = SeatFromID("11D")
	require.NoError(t, err)
	assert.Equal(t, domain.SeatExit, seat.Type)
	assert.Equal(t, int64(700), seat.Price)

	seat, err = SeatFromID("30E")
	require.NoError(t, err)
	assert.Equal(t, domain.SeatMiddle, seat.Type)
	assert.Equal(t, int64(300), seat.Price)

	for _, bad := range []string{"", "A", "0A", "31A", "12G", "xx"} {
		_, err := SeatFromID(bad)
		assert.Error(t, err, "id %q", bad)
		assert.True(t, domain.IsValidation(err), "id %q", bad)
	}
}
