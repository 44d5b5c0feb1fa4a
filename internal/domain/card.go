package domain

// CardType represents a VISE card tier
type CardType string

const (
	CardClassic  CardType = "Classic"
	CardGold     CardType = "Gold"
	CardPlatinum CardType = "Platinum"
	CardBlack    CardType = "Black"
	CardWhite    CardType = "White"
)

// AllCardTypes lists every issuable tier, lowest to highest.
var AllCardTypes = []CardType{CardClassic, CardGold, CardPlatinum, CardBlack, CardWhite}

// IsValid reports whether the card type is one of the issuable tiers
func (c CardType) IsValid() bool {
	switch c {
	case CardClassic, CardGold, CardPlatinum, CardBlack, CardWhite:
		return true
	}
	return false
}

func (c CardType) String() string {
	return string(c)
}
