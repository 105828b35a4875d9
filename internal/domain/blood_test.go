package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBloodType(t *testing.T) {
	bt, err := ParseBloodType("A+")
	require.NoError(t, err)
	assert.Equal(t, BloodAPos, bt)

	bt, err = ParseBloodType(" ab- ")
	require.NoError(t, err)
	assert.Equal(t, BloodABNeg, bt)

	_, err = ParseBloodType("C+")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseComponent(t *testing.T) {
	c, err := ParseComponent("Whole-Blood")
	require.NoError(t, err)
	assert.Equal(t, ComponentWholeBlood, c)

	_, err = ParseComponent("serum")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseVolumeMl(t *testing.T) {
	v, err := ParseVolumeMl("450")
	require.NoError(t, err)
	assert.Equal(t, 450.0, v)

	v, err = ParseVolumeMl(" 350.5 ")
	require.NoError(t, err)
	assert.Equal(t, 350.5, v)

	for _, raw := range []string{"", "abc", "450ml", "0", "-100"} {
		_, err = ParseVolumeMl(raw)
		assert.ErrorIs(t, err, ErrValidation, "input %q", raw)
	}
}

func TestSnapshotCovers_NumericComparison(t *testing.T) {
	snap := InventorySnapshot{AvailableVolumeMl: 500}

	// The requested volume arrives as text; parsed numerically, "450"
	// against 500 is sufficient and against 400 it is not.
	requested, err := ParseVolumeMl("450")
	require.NoError(t, err)

	assert.True(t, snap.Covers(requested))
	assert.True(t, snap.Covers(500))
	assert.False(t, InventorySnapshot{AvailableVolumeMl: 400}.Covers(requested))
}

func TestNewBloodRequest(t *testing.T) {
	desired := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	req, err := NewBloodRequest("O-", "plasma", "200", desired, "urgent")
	require.NoError(t, err)
	assert.Equal(t, BloodONeg, req.BloodType)
	assert.Equal(t, ComponentPlasma, req.Component)
	assert.Equal(t, 200.0, req.VolumeMl)
	assert.Equal(t, desired, req.DesiredDate)
	assert.Equal(t, "urgent", req.Notes)
}

func TestNewBloodRequest_Invalid(t *testing.T) {
	desired := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewBloodRequest("X+", "plasma", "200", desired, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBloodRequest("O-", "marrow", "200", desired, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBloodRequest("O-", "plasma", "much", desired, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBloodRequest("O-", "plasma", "200", time.Time{}, "")
	assert.ErrorIs(t, err, ErrValidation)
}
