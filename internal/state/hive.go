package state

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/colonyGo/internal/generics"
	"k8s.io/klog/v2"
	"slices"
)

// HivePlaceName is the name of the place where bees wait for their wave.
const HivePlaceName = "Hive"

// Hive is the place bees come from. Bees are created when their wave is scheduled, and
// wait in the hive until the turn of their wave, when they invade the colony's entrances.
type Hive struct {
	*Place
	beeArmor, beeDamage int
	waves               map[int][]*Bee
	rand                Rand
}

// NewHive creates an empty hive whose bees have the given armor and damage.
func NewHive(beeArmor, beeDamage int, rng Rand) *Hive {
	if rng == nil {
		exceptions.Panicf("NewHive(): a Rand source is required")
	}
	return &Hive{
		Place:     NewPlace(HivePlaceName, false, nil),
		beeArmor:  beeArmor,
		beeDamage: beeDamage,
		waves:     make(map[int][]*Bee),
		rand:      rng,
	}
}

// AddWave creates numBees bees that will invade the colony at attackTurn.
// Scheduling the same turn twice replaces the wave scheduled before, but the bees
// created for it stay in the hive. It returns the hive itself, so calls can be chained.
func (h *Hive) AddWave(attackTurn, numBees int) *Hive {
	if numBees < 0 {
		exceptions.Panicf("Hive.AddWave(): invalid number of bees %d", numBees)
	}
	wave := make([]*Bee, 0, numBees)
	for range numBees {
		bee := NewBee(h.beeArmor, h.beeDamage)
		h.AddBee(bee)
		wave = append(wave, bee)
	}
	h.waves[attackTurn] = wave
	return h
}

// Invade moves the bees of the wave scheduled for currentTurn, if any, to randomly chosen
// entrances of the colony. It returns the bees that invaded.
func (h *Hive) Invade(colony *Colony, currentTurn int) []*Bee {
	wave, found := h.waves[currentTurn]
	if !found {
		return []*Bee{}
	}
	delete(h.waves, currentTurn)
	entrances := colony.Entrances()
	for _, bee := range wave {
		h.RemoveBee(bee)
		entrance := entrances[h.rand.IntN(len(entrances))]
		entrance.AddBee(bee)
	}
	if len(wave) > 0 {
		klog.V(1).Infof("Turn %d: %d bee(s) invade the colony", currentTurn, len(wave))
	}
	return wave
}

// WaveTurns returns the turns of the waves still to come, sorted.
func (h *Hive) WaveTurns() []int {
	return slices.Collect(generics.SortedKeys(h.waves))
}

// NextWave returns the first wave scheduled at or after turn, and its number of bees.
// It returns found=false if no more waves are coming.
func (h *Hive) NextWave(turn int) (waveTurn, numBees int, found bool) {
	for t, wave := range generics.SortedKeysAndValues(h.waves) {
		if t >= turn {
			return t, len(wave), true
		}
	}
	return 0, 0, false
}
