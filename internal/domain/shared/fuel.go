package shared

import "fmt"

// DefaultFuelCapacity is the tank size of every ship in the race scenarios
const DefaultFuelCapacity = 20

// Fuel represents an immutable fuel state
type Fuel struct {
	Current  int
	Capacity int
}

// NewFuel creates a new fuel value object with validation
func NewFuel(current, capacity int) (*Fuel, error) {
	if current < 0 {
		return nil, fmt.Errorf("current fuel cannot be negative")
	}
	if capacity < 0 {
		return nil, fmt.Errorf("fuel capacity cannot be negative")
	}
	if current > capacity {
		return nil, fmt.Errorf("current fuel cannot exceed capacity")
	}

	return &Fuel{
		Current:  current,
		Capacity: capacity,
	}, nil
}

// FullTank returns a full tank of the given capacity
func FullTank(capacity int) *Fuel {
	return &Fuel{Current: capacity, Capacity: capacity}
}

// Burn returns new Fuel with amount burned. The tank never goes below empty,
// however large the burn; a negative burn is treated as zero.
func (f *Fuel) Burn(amount int) *Fuel {
	if amount < 0 {
		amount = 0
	}
	newCurrent := f.Current - amount
	if newCurrent < 0 {
		newCurrent = 0
	}
	return &Fuel{
		Current:  newCurrent,
		Capacity: f.Capacity,
	}
}

// Refill returns a full tank of the same capacity
func (f *Fuel) Refill() *Fuel {
	return FullTank(f.Capacity)
}

// IsEmpty checks whether the tank is dry
func (f *Fuel) IsEmpty() bool {
	return f.Current == 0
}

// IsFull checks if fuel is at capacity
func (f *Fuel) IsFull() bool {
	return f.Current == f.Capacity
}

func (f *Fuel) String() string {
	return fmt.Sprintf("Fuel(%d/%d)", f.Current, f.Capacity)
}
