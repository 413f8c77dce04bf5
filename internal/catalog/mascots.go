package catalog

import "github.com/osse101/PixelFarm_Go/internal/domain"

// Mascot ids
const (
	MascotChicken = "CHICKEN"
	MascotCow     = "COW"
	MascotSheep   = "SHEEP"
	MascotPig     = "PIG"
	MascotDog     = "DOG"
	MascotOwl     = "OWL"
)

var mascotList = []domain.Mascot{
	{ID: MascotChicken, Name: "Speedy Chicken", Description: "Basic crops (Lvl 1-5) grow 25% faster.", Price: 500, Effect: domain.EffectSpeedBasic},
	{ID: MascotCow, Name: "Lucky Cow", Description: "15% chance to harvest double crops.", Price: 1500, Effect: domain.EffectLuckyYield},
	{ID: MascotSheep, Name: "Crafty Sheep", Description: "Crafting speed increased by 20%.", Price: 3000, Effect: domain.EffectCraftSpeed},
	{ID: MascotPig, Name: "Golden Pig", Description: "Gain 20% more XP from everything.", Price: 5000, Effect: domain.EffectXPBoost},
	{ID: MascotDog, Name: "Merchant Dog", Description: "Orders reward 20% more money.", Price: 8000, Effect: domain.EffectMoneyBoost},
	{ID: MascotOwl, Name: "Wise Owl", Description: "Advanced crops (Lvl 10+) grow 20% faster.", Price: 12000, Effect: domain.EffectSpeedAdvanced},
}
