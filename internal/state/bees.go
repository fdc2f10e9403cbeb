package state

import "k8s.io/klog/v2"

// BeeStatus is a transient condition inflicted on a bee by a boosted throw.
// It lasts for exactly one of the bee's own actions.
type BeeStatus uint8

const (
	StatusNone BeeStatus = iota

	// StatusStuck bees don't move.
	StatusStuck

	// StatusCold bees don't sting.
	StatusCold
)

var beeStatusNames = [...]string{"none", "stuck", "cold"}

// String returns the status name.
func (s BeeStatus) String() string {
	if int(s) >= len(beeStatusNames) {
		return "invalid"
	}
	return beeStatusNames[s]
}

// Bee is a mobile attacker: it moves towards the queen, and stings any ant on its way.
type Bee struct {
	insect
	damage int
	status BeeStatus
}

// Assert Bee is an Insect.
var _ Insect = (*Bee)(nil)

// NewBee creates a bee, not yet placed.
func NewBee(armor, damage int) *Bee {
	return &Bee{insect: insect{armor: armor}, damage: damage}
}

// Name implements Insect.
func (b *Bee) Name() string { return "Bee" }

// String implements fmt.Stringer.
func (b *Bee) String() string { return b.describe("Bee") }

// Damage dealt by each sting.
func (b *Bee) Damage() int { return b.damage }

// Status of the bee until the end of its next action.
func (b *Bee) Status() BeeStatus { return b.status }

// SetStatus of the bee.
func (b *Bee) SetStatus(status BeeStatus) { b.status = status }

// IsBlocked returns whether there is an ant in the bee's place.
func (b *Bee) IsBlocked() bool {
	return b.place != nil && b.place.Ant() != nil
}

// Sting the ant. It returns whether the ant was removed.
func (b *Bee) Sting(ant *Ant) bool {
	klog.V(1).Infof("%s stings %s!", b, ant)
	return ant.ReduceArmor(b.damage)
}

// Act implements Insect: a blocked bee stings the ant in its way (unless cold), otherwise
// it moves one place towards the queen (unless stuck). The status is cleared in any case.
func (b *Bee) Act(_ *Colony) {
	defer func() { b.status = StatusNone }()
	if b.place == nil {
		return
	}
	if b.IsBlocked() {
		if b.status != StatusCold {
			b.Sting(b.place.Ant())
		}
	} else if b.armor > 0 {
		if b.status != StatusStuck {
			b.place.ExitBee(b)
		}
	}
}

// ReduceArmor implements Insect.
func (b *Bee) ReduceArmor(amount int) bool {
	b.armor -= amount
	if b.armor <= 0 {
		klog.V(1).Infof("%s ran out of armor and expired", b)
		if b.place != nil {
			b.place.RemoveBee(b)
		}
		return true
	}
	return false
}
