package state_test

import (
	. "github.com/janpfeifer/colonyGo/internal/state"
	. "github.com/janpfeifer/colonyGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseAntKind(t *testing.T) {
	for _, kind := range AntKinds {
		got, err := ParseAntKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	got, err := ParseAntKind("scuba")
	require.NoError(t, err)
	assert.Equal(t, Scuba, got)

	_, err = ParseAntKind("Queen")
	assert.ErrorIs(t, err, ErrUnknownAntKind)
	_, err = ParseAntKind("None")
	assert.ErrorIs(t, err, ErrUnknownAntKind)

	assert.Panics(t, func() { NewAnt(NoAnt) })
	assert.Panics(t, func() { NewAnt(LastAntKind) })
}

func TestAntStats(t *testing.T) {
	thrower := NewAnt(Thrower)
	assert.Equal(t, 1, thrower.Armor())
	assert.Equal(t, 4, thrower.FoodCost())
	assert.Equal(t, 1, thrower.Damage())
	assert.Equal(t, "Thrower()", thrower.String())

	eater := NewAnt(Eater)
	assert.Equal(t, 2, eater.Armor())
	assert.Equal(t, 0, eater.Damage())
	assert.Equal(t, 5, NewAnt(Scuba).FoodCost())
	assert.Equal(t, 1, NewAnt(Grower).FoodCost())
	assert.True(t, Scuba.IsSubmersible())
	assert.False(t, Thrower.IsSubmersible())

	// Ants not on the board don't act.
	colony := NewTestColony(0, 1, 1)
	assert.NotPanics(t, func() { thrower.Act(colony) })
}

func TestGrower(t *testing.T) {
	rng := NewScriptedRand(0.5, 0.65, 0.75, 0.85, 0.92, 0.97)
	colony := NewColony(0, 1, 1, 0, rng)
	ants, _ := BuildColony(colony, []AntOnBoard{{0, 0, Grower}}, nil)
	grower := ants[0]
	for range 6 {
		grower.Act(colony)
	}
	assert.Equal(t, 1, colony.Food())
	assert.Equal(t, [LastBoost]int{0, 2, 2, 2, 1}, colony.Boosts())
}

func TestThrowerRange(t *testing.T) {
	colony := NewTestColony(0, 1, 7)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Thrower}},
		[]BeeOnBoard{{0, 4, 2, 1}})
	thrower, bee := ants[0], bees[0]
	place := colony.Places()[0][0]

	thrower.Act(colony)
	assert.Equal(t, 2, bee.Armor(), "bee at distance 4 should be out of range")

	require.NoError(t, colony.ApplyBoost("FlyingLeaf", place))
	assert.Equal(t, 0, colony.BoostCount(FlyingLeaf))
	assert.Equal(t, FlyingLeaf, thrower.Boost())
	thrower.Act(colony)
	assert.Equal(t, 1, bee.Armor())
	assert.Equal(t, NoBoost, thrower.Boost(), "boost should be used up by the throw")

	// Back to the normal range.
	thrower.Act(colony)
	assert.Equal(t, 1, bee.Armor())

	// Moving the bee within range kills it.
	colony.Places()[0][4].RemoveBee(bee)
	colony.Places()[0][3].AddBee(bee)
	thrower.Act(colony)
	assert.Equal(t, 0, bee.Armor())
	assert.Nil(t, bee.Place())
	assert.Empty(t, colony.AllBees())
}

func TestThrowerKeepsBoostWithoutTarget(t *testing.T) {
	colony := NewTestColony(0, 1, 3)
	ants, _ := BuildColony(colony, []AntOnBoard{{0, 1, Scuba}}, nil)
	require.NoError(t, colony.ApplyBoost("stickyleaf", colony.Places()[0][1]))
	ants[0].Act(colony)
	assert.Equal(t, StickyLeaf, ants[0].Boost())

	// Bees behind the thrower are not reachable.
	bee := NewBee(3, 1)
	colony.Places()[0][0].AddBee(bee)
	ants[0].Act(colony)
	assert.Equal(t, 3, bee.Armor())
	assert.Equal(t, StickyLeaf, ants[0].Boost())
}

func TestStickyLeaf(t *testing.T) {
	colony := NewTestColony(0, 1, 4)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Thrower}},
		[]BeeOnBoard{{0, 2, 3, 1}})
	thrower, bee := ants[0], bees[0]
	places := colony.Places()[0]

	require.NoError(t, colony.ApplyBoost("StickyLeaf", places[0]))
	thrower.Act(colony)
	assert.Equal(t, 2, bee.Armor())
	assert.Equal(t, StatusStuck, bee.Status())

	// Stuck for one action only.
	colony.BeesAct()
	assert.Equal(t, places[2], bee.Place())
	assert.Equal(t, StatusNone, bee.Status())
	colony.BeesAct()
	assert.Equal(t, places[1], bee.Place())
}

func TestIcyLeaf(t *testing.T) {
	colony := NewTestColony(0, 1, 2)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Thrower}},
		[]BeeOnBoard{{0, 0, 3, 1}})
	thrower, bee := ants[0], bees[0]

	require.NoError(t, colony.ApplyBoost("IcyLeaf", colony.Places()[0][0]))
	thrower.Act(colony)
	assert.Equal(t, StatusCold, bee.Status())

	// Cold bees don't sting, and don't move either since they are blocked.
	bee.Act(colony)
	assert.Equal(t, 1, thrower.Armor())
	assert.Equal(t, colony.Places()[0][0], bee.Place())
	assert.Equal(t, StatusNone, bee.Status())

	bee.Act(colony)
	assert.Nil(t, thrower.Place())
	assert.Nil(t, colony.Places()[0][0].Ant())
}

func TestBugSpray(t *testing.T) {
	colony := NewTestColony(0, 1, 3)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 1, Thrower}, {0, 1, Guard}},
		[]BeeOnBoard{{0, 1, 3, 1}, {0, 1, 5, 1}, {0, 1, 10, 1}, {0, 2, 3, 1}})
	thrower, guard := ants[0], ants[1]
	places := colony.Places()[0]

	thrower.SetBoost(BugSpray)
	colony.AntsAct()
	PrintColony(colony)

	assert.Empty(t, places[1].Bees())
	for _, bee := range bees[:3] {
		assert.Nil(t, bee.Place())
	}
	assert.Equal(t, []*Bee{bees[3]}, places[2].Bees(), "bees in other places should not be affected")
	assert.Equal(t, 3, bees[3].Armor())

	// The thrower dies, but its guard stays.
	assert.Nil(t, thrower.Place())
	assert.Nil(t, places[1].GuardedAnt())
	assert.Equal(t, guard, places[1].Guard())
	assert.Equal(t, 2, guard.Armor())
}

func TestEaterDigestion(t *testing.T) {
	colony := NewTestColony(0, 1, 2)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Eater}},
		[]BeeOnBoard{{0, 0, 3, 1}, {0, 1, 3, 1}})
	eater, bee := ants[0], bees[0]
	place := colony.Places()[0][0]

	eater.Act(colony)
	assert.True(t, eater.IsFull())
	assert.Equal(t, 1, eater.TurnsEating())
	assert.Nil(t, bee.Place())
	assert.Empty(t, place.Bees())
	assert.Len(t, colony.AllBees(), 1, "eaten bee is not counted on the board")

	for want := 2; want <= 4; want++ {
		eater.Act(colony)
		assert.Equal(t, want, eater.TurnsEating())
		assert.True(t, eater.IsFull())
	}
	eater.Act(colony)
	assert.Equal(t, 0, eater.TurnsEating())
	assert.False(t, eater.IsFull())

	// Bees further away are not eaten.
	eater.Act(colony)
	assert.False(t, eater.IsFull())
	assert.Equal(t, 3, bees[1].Armor())
}

// newFullEater returns an eater that just swallowed a bee, and the bee.
func newFullEater(t *testing.T) (*Colony, *Ant, *Bee) {
	colony := NewTestColony(0, 1, 1)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Eater}},
		[]BeeOnBoard{{0, 0, 3, 1}})
	ants[0].Act(colony)
	require.True(t, ants[0].IsFull())
	return colony, ants[0], bees[0]
}

func TestEaterCoughUp(t *testing.T) {
	t.Run("SurvivesAtFirstTurn", func(t *testing.T) {
		colony, eater, bee := newFullEater(t)
		place := colony.Places()[0][0]
		assert.False(t, eater.ReduceArmor(1))
		assert.Equal(t, []*Bee{bee}, place.Bees())
		assert.Equal(t, place, bee.Place())
		assert.False(t, eater.IsFull())
		assert.Equal(t, 3, eater.TurnsEating())

		// It has to finish the skipped digestion before eating again.
		eater.Act(colony)
		eater.Act(colony)
		assert.Equal(t, 0, eater.TurnsEating())
		eater.Act(colony)
		assert.True(t, eater.IsFull())
	})

	t.Run("SurvivesAtSecondTurn", func(t *testing.T) {
		colony, eater, bee := newFullEater(t)
		eater.Act(colony)
		assert.False(t, eater.ReduceArmor(1))
		assert.True(t, eater.IsFull())
		assert.Equal(t, 2, eater.TurnsEating())
		assert.Nil(t, bee.Place())
	})

	t.Run("DiesAtSecondTurn", func(t *testing.T) {
		colony, eater, bee := newFullEater(t)
		place := colony.Places()[0][0]
		eater.Act(colony)
		assert.True(t, eater.ReduceArmor(2))
		assert.Nil(t, eater.Place())
		assert.Nil(t, place.Ant())
		assert.Equal(t, []*Bee{bee}, place.Bees())
	})

	t.Run("DiesAtThirdTurn", func(t *testing.T) {
		// Past the second turn the bee is not coughed up: it is gone with the eater.
		colony, eater, bee := newFullEater(t)
		place := colony.Places()[0][0]
		eater.Act(colony)
		eater.Act(colony)
		require.Equal(t, 3, eater.TurnsEating())
		assert.True(t, eater.ReduceArmor(2))
		assert.Nil(t, eater.Place())
		assert.Empty(t, place.Bees())
		assert.Nil(t, bee.Place())
	})

	t.Run("StungToDeath", func(t *testing.T) {
		colony, eater, bee := newFullEater(t)
		place := colony.Places()[0][0]
		stinger := NewBee(3, 2)
		place.AddBee(stinger)
		stinger.Act(colony)
		assert.Nil(t, eater.Place())
		assert.Equal(t, []*Bee{stinger, bee}, place.Bees())
	})
}

func TestGuard(t *testing.T) {
	colony := NewTestColony(0, 1, 3)
	ants, bees := BuildColony(colony,
		[]AntOnBoard{{0, 0, Thrower}, {0, 0, Guard}},
		[]BeeOnBoard{{0, 0, 10, 1}, {0, 2, 1, 1}})
	thrower, guard := ants[0], ants[1]
	stinger, target := bees[0], bees[1]
	place := colony.Places()[0][0]

	// The guarded thrower acts through its guard: it hits the first bee in range,
	// which is the one in its own place.
	colony.AntsAct()
	assert.Equal(t, 9, stinger.Armor())
	assert.Equal(t, 1, target.Armor())

	// Bees sting the guard first.
	stinger.Act(colony)
	assert.Equal(t, 1, guard.Armor())
	assert.Equal(t, 1, thrower.Armor())
	stinger.Act(colony)
	assert.Nil(t, guard.Place())
	assert.Nil(t, place.Guard())
	assert.Equal(t, thrower, place.Ant())
	stinger.Act(colony)
	assert.Nil(t, thrower.Place())
	assert.Nil(t, place.Ant())
}
