package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

func TestSetSlot_InsertUnchangedUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)

	tests := []struct {
		name    string
		subject uint
		want    SlotChange
	}{
		{name: "empty cell", subject: 10, want: SlotInserted},
		{name: "same subject", subject: 10, want: SlotUnchanged},
		{name: "different subject", subject: 11, want: SlotUpdated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetSlot(db, 1, tt.subject, 4, 8)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	id, err := GetSlot(db, 1, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, uint(11), id)

	slots, err := ListSlotsForUser(db, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestSetSlot_OutOfRange(t *testing.T) {
	db := testutil.NewTestDB(t)

	cells := [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 9}}
	for _, c := range cells {
		_, err := SetSlot(db, 1, 1, c[0], c[1])
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, "cell %v", c)
		_, err = ClearSlot(db, 1, c[0], c[1])
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, "cell %v", c)
	}
}

func TestClearSlotAndWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := SetSlot(db, 1, 5, 0, 0)
	require.NoError(t, err)
	_, err = SetSlot(db, 1, 6, 1, 3)
	require.NoError(t, err)
	_, err = SetSlot(db, 2, 6, 1, 3)
	require.NoError(t, err)

	week, err := GetWeek(db, 1)
	require.NoError(t, err)
	require.NotNil(t, week[0][0])
	assert.Equal(t, uint(5), *week[0][0])
	require.NotNil(t, week[1][3])
	assert.Nil(t, week[4][8])

	removed, err := ClearSlot(db, 1, 0, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = ClearSlot(db, 1, 0, 0)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = GetSlot(db, 1, 0, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	n, err := ClearWeek(db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// user lain tidak tersentuh
	slots, err := ListSlotsForUser(db, 2)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestSlotChangeString(t *testing.T) {
	assert.Equal(t, "inserted", SlotInserted.String())
	assert.Equal(t, "updated", SlotUpdated.String())
	assert.Equal(t, "unchanged", SlotUnchanged.String())
}
