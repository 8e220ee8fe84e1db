package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamelessFaceless/xivanalysis/internal/data"
	"github.com/NamelessFaceless/xivanalysis/internal/testutil"
)

func newTestCombatants(t *testing.T) (*Combatants, *testutil.Host) {
	t.Helper()
	h := testutil.NewHost(HandleCombatants, testutil.Fight("DNC"))
	instance, err := CombatantsDescriptor().New(h)
	require.NoError(t, err)
	return instance.(*Combatants), h
}

func TestCombatants_TracksStatuses(t *testing.T) {
	c, h := newTestCombatants(t)
	esprit := data.Esprit.ID

	require.NoError(t, h.Fire(testutil.Apply(1000, testutil.PlayerID, testutil.PlayerID, esprit)))
	assert.True(t, c.SelectedHasStatus(esprit))
	assert.False(t, c.HasStatus(testutil.PartnerID, esprit))

	require.NoError(t, h.Fire(testutil.Remove(5000, testutil.PlayerID, testutil.PlayerID, esprit)))
	assert.False(t, c.SelectedHasStatus(esprit))
}

func TestCombatants_RefreshCountsAsActive(t *testing.T) {
	c, h := newTestCombatants(t)

	require.NoError(t, h.Fire(testutil.Refresh(1000, testutil.PlayerID, testutil.PartnerID, data.ClosedPositionStatus.ID)))
	assert.True(t, c.HasStatus(testutil.PartnerID, data.ClosedPositionStatus.ID))
}

func TestCombatants_DeathClearsStatuses(t *testing.T) {
	c, h := newTestCombatants(t)

	require.NoError(t, h.FireAll(
		testutil.Apply(1000, testutil.PlayerID, testutil.PlayerID, data.Esprit.ID),
		testutil.Apply(1000, testutil.PlayerID, testutil.PlayerID, data.ClosedPositionStatus.ID),
	))
	assert.Equal(t, []int64{data.ClosedPositionStatus.ID, data.Esprit.ID}, c.Statuses(testutil.PlayerID))

	require.NoError(t, h.Fire(testutil.Death(2000, testutil.PlayerID)))
	assert.Empty(t, c.Statuses(testutil.PlayerID))
}

func TestCombatants_PartySize(t *testing.T) {
	c, _ := newTestCombatants(t)
	assert.Equal(t, 4, c.PartySize())
}
