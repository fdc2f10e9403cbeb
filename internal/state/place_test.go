package state_test

import (
	. "github.com/janpfeifer/colonyGo/internal/state"
	. "github.com/janpfeifer/colonyGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestColonyTunnels(t *testing.T) {
	colony := NewColony(2, 2, 4, 2, NewScriptedRand())
	places := colony.Places()
	require.Len(t, places, 2)
	require.Len(t, places[1], 4)
	assert.Equal(t, 2, colony.NumTunnels())
	assert.Equal(t, 4, colony.TunnelLength())

	assert.Equal(t, "tunnel[1,0]", places[1][0].Name())
	assert.Equal(t, "water[1,1]", places[1][1].Name())
	assert.False(t, places[1][2].IsWater())
	assert.True(t, places[1][3].IsWater())

	// Exits lead to the queen, entrances lead to the hive.
	assert.Equal(t, colony.QueenPlace(), places[0][0].Exit())
	assert.Equal(t, places[0][0], places[0][1].Exit())
	assert.Equal(t, places[0][1], places[0][0].Entrance())
	assert.Nil(t, places[0][3].Entrance())
	assert.Nil(t, colony.QueenPlace().Exit())
	assert.Equal(t, []*Place{places[0][3], places[1][3]}, colony.Entrances())
}

func TestClosestBee(t *testing.T) {
	colony := NewTestColony(0, 1, 6)
	_, bees := BuildColony(colony, nil, []BeeOnBoard{
		{0, 2, 3, 1},
		{0, 2, 3, 1},
		{0, 4, 3, 1},
	})
	places := colony.Places()[0]
	PrintColony(colony)

	// First place in range wins, and within it the first bee to arrive.
	assert.Equal(t, bees[0], places[0].ClosestBee(3, 0))
	assert.Equal(t, bees[0], places[0].ClosestBee(2, 0))
	assert.Nil(t, places[0].ClosestBee(1, 0))

	// Minimum distance skips the closer places.
	assert.Equal(t, bees[2], places[0].ClosestBee(5, 3))
	assert.Nil(t, places[0].ClosestBee(5, 5))

	// Distance 0 only looks at the place itself, regardless of bees further away.
	assert.Nil(t, places[3].ClosestBee(0, 0))
	assert.Equal(t, bees[2], places[4].ClosestBee(0, 0))

	// The tunnel ends before reaching the range.
	assert.Nil(t, places[5].ClosestBee(10, 0))
}

func TestAddRemoveAnt(t *testing.T) {
	colony := NewTestColony(0, 1, 2)
	place := colony.Places()[0][0]

	thrower := NewAnt(Thrower)
	guard := NewAnt(Guard)
	require.True(t, place.AddAnt(thrower))
	require.True(t, place.AddAnt(guard))
	assert.Equal(t, place, thrower.Place())
	assert.Equal(t, place, guard.Place())

	// Both slots are now taken.
	other := NewAnt(Eater)
	assert.False(t, place.AddAnt(other))
	assert.False(t, place.AddAnt(NewAnt(Guard)))
	assert.Nil(t, other.Place())

	// Bees see the guard first.
	assert.Equal(t, guard, place.Ant())
	assert.Equal(t, thrower, place.GuardedAnt())
	assert.Equal(t, thrower, guard.Guarded())
	assert.Nil(t, thrower.Guarded())

	// Removal takes the guard first.
	assert.Equal(t, guard, place.RemoveAnt())
	assert.Nil(t, guard.Place())
	assert.Equal(t, thrower, place.Ant())
	assert.Equal(t, thrower, place.RemoveAnt())
	assert.Nil(t, thrower.Place())
	assert.Nil(t, place.RemoveAnt())
}

func TestAddRemoveBee(t *testing.T) {
	colony := NewTestColony(0, 1, 2)
	places := colony.Places()[0]
	bee1, bee2 := NewBee(3, 1), NewBee(3, 1)
	places[1].AddBee(bee1)
	places[1].AddBee(bee2)
	assert.Equal(t, []*Bee{bee1, bee2}, places[1].Bees())
	assert.Equal(t, places[1], bee1.Place())

	// Removing a bee that is not there is a no-op.
	places[0].RemoveBee(bee1)
	assert.Equal(t, places[1], bee1.Place())
	assert.Len(t, places[1].Bees(), 2)

	places[1].RemoveBee(bee1)
	assert.Equal(t, []*Bee{bee2}, places[1].Bees())
	assert.Nil(t, bee1.Place())

	// Moving forward, and staying put at the queen.
	places[1].ExitBee(bee2)
	assert.Empty(t, places[1].Bees())
	assert.Equal(t, places[0], bee2.Place())
	places[0].ExitBee(bee2)
	assert.Equal(t, colony.QueenPlace(), bee2.Place())
	colony.QueenPlace().ExitBee(bee2)
	assert.Equal(t, colony.QueenPlace(), bee2.Place())
	assert.True(t, colony.QueenHasBees())

	colony.QueenPlace().RemoveAllBees()
	assert.Nil(t, bee2.Place())
	assert.False(t, colony.QueenHasBees())
}

func TestWater(t *testing.T) {
	// With moat frequency 1 every place is water.
	colony := NewColony(0, 1, 3, 1, NewScriptedRand())
	ants, _ := BuildColony(colony, []AntOnBoard{
		{0, 0, Thrower},
		{0, 1, Scuba},
		{0, 2, Scuba},
		{0, 2, Guard},
	}, nil)
	colony.PlacesAct()
	PrintColony(colony)

	places := colony.Places()[0]
	assert.Nil(t, places[0].Ant(), "thrower should have drowned")
	assert.Nil(t, ants[0].Place())
	assert.Equal(t, ants[1], places[1].Ant(), "scuba should survive in water")
	assert.Nil(t, places[2].Guard(), "guard should have drowned")
	assert.Equal(t, ants[2], places[2].Ant(), "scuba should survive its guard drowning")

	// Dry places have no effect.
	dry := NewTestColony(0, 1, 1)
	ants, _ = BuildColony(dry, []AntOnBoard{{0, 0, Thrower}, {0, 0, Guard}}, nil)
	dry.PlacesAct()
	assert.Equal(t, ants[1], dry.Places()[0][0].Ant())
	assert.Equal(t, ants[0], dry.Places()[0][0].GuardedAnt())
}
