package state

import "fmt"

// Insect is the capability shared by ants and bees: armor, a place, and an action
// taken once per turn.
type Insect interface {
	// Name of the insect type, e.g.: "Thrower" or "Bee".
	Name() string

	// Armor left. The insect is removed from its place when it reaches 0.
	Armor() int

	// Place where the insect is, or nil if it's not (or no longer) on the board.
	Place() *Place

	// ReduceArmor by amount, and remove the insect from its place if the armor reached 0.
	// It returns whether the insect was removed.
	ReduceArmor(amount int) bool

	// Act performs the insect's action for the turn.
	Act(colony *Colony)

	fmt.Stringer
}

// insect holds the fields common to ants and bees.
type insect struct {
	armor int
	place *Place
}

// Armor implements Insect.
func (i *insect) Armor() int { return i.armor }

// Place implements Insect.
func (i *insect) Place() *Place { return i.place }

func (i *insect) setPlace(place *Place) { i.place = place }

// describe formats the insect as "Name(place)".
func (i *insect) describe(name string) string {
	if i.place == nil {
		return name + "()"
	}
	return name + "(" + i.place.name + ")"
}
