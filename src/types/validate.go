package types

import (
	"fmt"

	"elevaid/src/config"
)

func ValidateFloor(floor int) error {
	if floor < config.GroundFloor || floor > config.MaxFloor {
		return fmt.Errorf("%w: floor %d outside [%d, %d]", ErrInvalidInput, floor, config.GroundFloor, config.MaxFloor)
	}
	return nil
}

func ValidateFloors(floors []int) error {
	for _, floor := range floors {
		if err := ValidateFloor(floor); err != nil {
			return err
		}
	}
	return nil
}

func (p PriorityFloor) Validate() error {
	if !p.Set {
		return nil
	}
	return ValidateFloor(p.Floor)
}

func (d Direction) Validate() error {
	if d != Up && d != Down {
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidInput, int(d))
	}
	return nil
}

func (t TimingConfig) Validate() error {
	if t.TravelPerFloor < 0 {
		return fmt.Errorf("%w: negative travel time %v", ErrInvalidInput, t.TravelPerFloor)
	}
	if t.Stoppage < 0 {
		return fmt.Errorf("%w: negative stoppage time %v", ErrInvalidInput, t.Stoppage)
	}
	return nil
}
