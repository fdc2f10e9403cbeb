package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"strings"
)

// AntKind enumerates the types of ants that can be deployed, plus the NoAnt null value.
type AntKind uint8

const (
	NoAnt AntKind = iota
	Grower
	Thrower
	Eater
	Scuba
	Guard
	LastAntKind
)

const (
	// ThrowerRange is how far (in places) a thrower reaches without boost.
	ThrowerRange = 3

	// FlyingLeafRange is how far a thrower reaches with the FlyingLeaf boost.
	FlyingLeafRange = 5

	// BugSprayDamage is the damage done by the BugSpray to each bee, and to the thrower itself.
	BugSprayDamage = 10

	// digestionTurns is the number of the eater's own actions needed to digest a bee.
	digestionTurns = 3
)

var (
	AntNames = [LastAntKind]string{"None", "Grower", "Thrower", "Eater", "Scuba", "Guard"}

	// AntKinds enumerates all ant kinds, skipping NoAnt.
	AntKinds = [LastAntKind - 1]AntKind{Grower, Thrower, Eater, Scuba, Guard}

	antArmor    = [LastAntKind]int{0, 1, 1, 2, 1, 2}
	antFoodCost = [LastAntKind]int{0, 1, 4, 4, 5, 4}
	antDamage   = [LastAntKind]int{0, 0, 1, 0, 1, 0}
)

// String returns the ant kind name.
func (k AntKind) String() string {
	if k >= LastAntKind {
		return "Invalid"
	}
	return AntNames[k]
}

// FoodCost to deploy an ant of this kind.
func (k AntKind) FoodCost() int { return antFoodCost[k] }

// InitialArmor of an ant of this kind.
func (k AntKind) InitialArmor() int { return antArmor[k] }

// IsSubmersible returns whether ants of this kind survive in water.
func (k AntKind) IsSubmersible() bool { return k == Scuba }

// IsThrower returns whether ants of this kind throw leaves at bees (and can use boosts).
func (k AntKind) IsThrower() bool { return k == Thrower || k == Scuba }

// ParseAntKind converts an ant kind name (case-insensitive) to an AntKind.
func ParseAntKind(name string) (AntKind, error) {
	for _, kind := range AntKinds {
		if strings.EqualFold(AntNames[kind], name) {
			return kind, nil
		}
	}
	return NoAnt, errors.WithMessagef(ErrUnknownAntKind, "%q", name)
}

// Ant is a stationary defender. Its behavior is given by its Kind.
type Ant struct {
	insect
	kind  AntKind
	boost Boost

	// Eater only: number of turns digesting, and the bee being digested.
	turnsEating int
	stomach     *Bee
}

// Assert Ant is an Insect.
var _ Insect = (*Ant)(nil)

// NewAnt creates an ant of the given kind, not yet placed.
func NewAnt(kind AntKind) *Ant {
	if kind == NoAnt || kind >= LastAntKind {
		exceptions.Panicf("NewAnt(): invalid ant kind %d", kind)
	}
	return &Ant{insect: insect{armor: kind.InitialArmor()}, kind: kind}
}

// Kind of the ant.
func (a *Ant) Kind() AntKind { return a.kind }

// Name implements Insect.
func (a *Ant) Name() string { return a.kind.String() }

// String implements fmt.Stringer.
func (a *Ant) String() string { return a.describe(a.Name()) }

// FoodCost paid when deploying the ant.
func (a *Ant) FoodCost() int { return a.kind.FoodCost() }

// Damage dealt by a throw.
func (a *Ant) Damage() int { return antDamage[a.kind] }

// Boost currently given to the ant, or NoBoost.
func (a *Ant) Boost() Boost { return a.boost }

// SetBoost gives the boost to the ant. It replaces any previous boost.
func (a *Ant) SetBoost(boost Boost) {
	a.boost = boost
	klog.V(1).Infof("%s is given a %s", a, boost)
}

// IsFull returns whether the ant (an Eater) is digesting a bee.
func (a *Ant) IsFull() bool { return a.stomach != nil }

// TurnsEating returns the digestion counter of an Eater: 0 when not eating.
func (a *Ant) TurnsEating() int { return a.turnsEating }

// Guarded returns the ant protected by this Guard, or nil.
func (a *Ant) Guarded() *Ant {
	if a.kind != Guard || a.place == nil {
		return nil
	}
	return a.place.GuardedAnt()
}

// Act implements Insect. Ants not on the board do nothing.
func (a *Ant) Act(colony *Colony) {
	if a.place == nil {
		return
	}
	switch a.kind {
	case Grower:
		a.growerAct(colony)
	case Thrower, Scuba:
		a.throwerAct()
	case Eater:
		a.eaterAct()
	case Guard:
		// Guards only protect: the colony runs the guarded ant's action.
	}
}

// ReduceArmor implements Insect.
func (a *Ant) ReduceArmor(amount int) bool {
	a.armor -= amount
	if a.kind == Eater {
		return a.eaterArmorReduced()
	}
	if a.armor <= 0 {
		return a.expire()
	}
	return false
}

// expire removes the ant from its place.
func (a *Ant) expire() bool {
	klog.V(1).Infof("%s ran out of armor and expired", a)
	if a.place != nil {
		a.place.removeInsectAnt(a)
	}
	return true
}

// growerAct draws once from the colony's random source: most likely it gathers food,
// otherwise it may find a boost, or nothing at all.
func (a *Ant) growerAct(colony *Colony) {
	roll := colony.rand.Float64()
	switch {
	case roll < 0.6:
		colony.IncreaseFood(1)
	case roll < 0.7:
		colony.AddBoost(FlyingLeaf)
	case roll < 0.8:
		colony.AddBoost(StickyLeaf)
	case roll < 0.9:
		colony.AddBoost(IcyLeaf)
	case roll < 0.95:
		colony.AddBoost(BugSpray)
	}
}

// throwerAct throws a leaf at the closest bee in range, using up its boost if it hits.
// A BugSpray boost instead kills every bee in the ant's place, and the ant itself.
func (a *Ant) throwerAct() {
	if a.boost == BugSpray {
		a.sprayBugRepellant()
		return
	}

	maxRange := ThrowerRange
	if a.boost == FlyingLeaf {
		maxRange = FlyingLeafRange
	}
	target := a.place.ClosestBee(maxRange, 0)
	if target == nil {
		return
	}
	klog.V(1).Infof("%s throws a leaf at %s", a, target)
	target.ReduceArmor(a.Damage())
	switch a.boost {
	case StickyLeaf:
		target.SetStatus(StatusStuck)
		klog.V(1).Infof("%s is stuck!", target)
	case IcyLeaf:
		target.SetStatus(StatusCold)
		klog.V(1).Infof("%s is cold!", target)
	}
	a.boost = NoBoost
}

func (a *Ant) sprayBugRepellant() {
	klog.V(1).Infof("%s sprays bug repellant everywhere!", a)
	place := a.place
	for target := place.ClosestBee(0, 0); target != nil; target = place.ClosestBee(0, 0) {
		target.ReduceArmor(BugSprayDamage)
	}
	a.ReduceArmor(BugSprayDamage)
}

// eaterAct swallows a bee in its own place, and then takes a few turns to digest it.
func (a *Ant) eaterAct() {
	klog.V(2).Infof("%s eating: %d", a, a.turnsEating)
	switch {
	case a.turnsEating == 0:
		target := a.place.ClosestBee(0, 0)
		if target == nil {
			return
		}
		klog.V(1).Infof("%s eats %s!", a, target)
		a.place.RemoveBee(target)
		a.stomach = target
		a.turnsEating = 1
	case a.turnsEating > digestionTurns:
		klog.V(1).Infof("%s finished digesting %s", a, a.stomach)
		a.stomach = nil
		a.turnsEating = 0
	default:
		a.turnsEating++
	}
}

// eaterArmorReduced handles the Eater losing armor (already subtracted): a hit early in
// the digestion makes it cough up the bee. A surviving eater only coughs at turnsEating == 1,
// and then skips ahead in the digestion; a dying eater coughs up at turnsEating 1 or 2.
func (a *Ant) eaterArmorReduced() bool {
	klog.V(2).Infof("%s armor reduced to %d", a, a.armor)
	if a.armor > 0 {
		if a.turnsEating == 1 {
			a.coughUp()
			a.turnsEating = 3
		}
		return false
	}
	if a.turnsEating > 0 && a.turnsEating <= 2 {
		a.coughUp()
	}
	return a.expire()
}

// coughUp returns the bee in the stomach to the eater's place.
func (a *Ant) coughUp() {
	eaten := a.stomach
	if eaten == nil || a.place == nil {
		return
	}
	a.stomach = nil
	a.place.AddBee(eaten)
	klog.V(1).Infof("%s coughs up %s!", a, eaten)
}
