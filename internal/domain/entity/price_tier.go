package entity

// PriceTier is the symbolic price band of a restaurant.
type PriceTier string

const (
	PriceTierBudget   PriceTier = "$"
	PriceTierModerate PriceTier = "$$"
	PriceTierUpscale  PriceTier = "$$$"
)

// String returns the string representation of the PriceTier.
func (p PriceTier) String() string {
	return string(p)
}

// IsValid checks if the PriceTier is a valid value.
func (p PriceTier) IsValid() bool {
	switch p {
	case PriceTierBudget, PriceTierModerate, PriceTierUpscale:
		return true
	default:
		return false
	}
}
