package domain

// MascotEffect is the single buff a companion grants while equipped
type MascotEffect string

const (
	EffectSpeedBasic    MascotEffect = "speed-basic"
	EffectLuckyYield    MascotEffect = "lucky-yield"
	EffectCraftSpeed    MascotEffect = "craft-speed"
	EffectXPBoost       MascotEffect = "xp-boost"
	EffectMoneyBoost    MascotEffect = "money-boost"
	EffectSpeedAdvanced MascotEffect = "speed-advanced"
)

// Mascot is a purchasable companion
type Mascot struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	Effect      MascotEffect `json:"effect"`
}
