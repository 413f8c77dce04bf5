package catalog

import (
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

var eventList = []domain.EventDefinition{
	{
		ID:           "wheat_shortage",
		Title:        "Wheat Rush",
		Description:  "The Royal Bakery is out of flour! Harvest Wheat quickly!",
		TargetItem:   ItemWheat,
		TargetAmount: 20,
		Duration:     2 * time.Minute,
		UnlockLevel:  2,
		RewardMoney:  150,
		RewardXP:     100,
	},
	{
		ID:           "corn_festival",
		Title:        "Corn Festival",
		Description:  "The village needs supplies for the popcorn stand.",
		TargetItem:   ItemCorn,
		TargetAmount: 15,
		Duration:     3 * time.Minute,
		UnlockLevel:  4,
		RewardMoney:  300,
		RewardXP:     150,
	},
	{
		ID:           "tomato_war",
		Title:        "Tomato War",
		Description:  "The annual food fight is starting! We need ammo!",
		TargetItem:   ItemTomato,
		TargetAmount: 30,
		Duration:     3 * time.Minute,
		UnlockLevel:  6,
		RewardMoney:  800,
		RewardXP:     400,
	},
	{
		ID:           "pumpkin_carving",
		Title:        "Spooky Season",
		Description:  "The carving contest begins soon. Grow Pumpkins!",
		TargetItem:   ItemPumpkin,
		TargetAmount: 10,
		Duration:     4 * time.Minute,
		UnlockLevel:  9,
		RewardMoney:  1200,
		RewardXP:     600,
	},
	{
		ID:           "berry_smoothie",
		Title:        "Smoothie Craze",
		Description:  "Everyone wants Strawberry smoothies right now!",
		TargetItem:   ItemStrawberry,
		TargetAmount: 25,
		Duration:     3 * time.Minute,
		UnlockLevel:  12,
		RewardMoney:  1500,
		RewardXP:     800,
	},
	{
		ID:           "ancient_research",
		Title:        "Ancient Research",
		Description:  "The Professor needs Ancient Fruits for science.",
		TargetItem:   ItemAncientFruit,
		TargetAmount: 5,
		Duration:     5 * time.Minute,
		UnlockLevel:  17,
		RewardMoney:  5000,
		RewardXP:     2000,
	},
}
