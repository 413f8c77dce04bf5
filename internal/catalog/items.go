package catalog

import (
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// Item ids
const (
	ItemWheat         = "WHEAT"
	ItemLettuce       = "LETTUCE"
	ItemCorn          = "CORN"
	ItemCarrot        = "CARROT"
	ItemTomato        = "TOMATO"
	ItemPotato        = "POTATO"
	ItemSunflower     = "SUNFLOWER"
	ItemSugarcane     = "SUGARCANE"
	ItemEggplant      = "EGGPLANT"
	ItemPumpkin       = "PUMPKIN"
	ItemMelon         = "MELON"
	ItemChili         = "CHILI"
	ItemStrawberry    = "STRAWBERRY"
	ItemBlueberry     = "BLUEBERRY"
	ItemGrape         = "GRAPE"
	ItemPineapple     = "PINEAPPLE"
	ItemCauliflower   = "CAULIFLOWER"
	ItemAncientFruit  = "ANCIENT_FRUIT"
	ItemStarfruit     = "STARFRUIT"
	ItemGemBerry      = "GEM_BERRY"
	ItemGiantMushroom = "GIANT_MUSHROOM"
	ItemSpiritTree    = "SPIRIT_TREE"

	ItemBread       = "BREAD"
	ItemSalad       = "SALAD"
	ItemPopcorn     = "POPCORN"
	ItemPotatoChips = "POTATO_CHIPS"
	ItemTomatoSoup  = "TOMATO_SOUP"
	ItemSugar       = "SUGAR"
	ItemCarrotCake  = "CARROT_CAKE"
	ItemPie         = "PIE"
	ItemJam         = "JAM"
	ItemWine        = "WINE"
	ItemSpicyStew   = "SPICY_STEW"
	ItemFruitSalad  = "FRUIT_SALAD"
	ItemJuice       = "JUICE"
	ItemPizza       = "PIZZA"
	ItemMagicElixir = "MAGIC_ELIXIR"
)

func crop(id, name string, price, seed, growSeconds, xp, level, w, h int, desc string) domain.Item {
	return domain.Item{
		ID:          id,
		Name:        name,
		Description: desc,
		Kind:        domain.ItemKindCrop,
		SellPrice:   price,
		UnlockLevel: level,
		SeedCost:    seed,
		GrowthTime:  time.Duration(growSeconds) * time.Second,
		XPReward:    xp,
		Width:       w,
		Height:      h,
	}
}

func product(id, name string, price, level int, desc string) domain.Item {
	return domain.Item{
		ID:          id,
		Name:        name,
		Description: desc,
		Kind:        domain.ItemKindProduct,
		SellPrice:   price,
		UnlockLevel: level,
		Width:       1,
		Height:      1,
	}
}

// itemList is in display order: crops by unlock tier, then products
var itemList = []domain.Item{
	crop(ItemWheat, "Wheat", 3, 1, 5, 2, 1, 1, 1, "Basic grain"),
	crop(ItemLettuce, "Lettuce", 6, 2, 10, 4, 1, 1, 1, "Crispy green"),
	crop(ItemCorn, "Corn", 10, 5, 20, 6, 2, 1, 1, "Sweet yellow corn"),
	crop(ItemCarrot, "Carrot", 15, 7, 30, 8, 3, 1, 1, "Good for eyes"),
	crop(ItemTomato, "Tomato", 20, 10, 45, 10, 4, 1, 1, "Red and juicy"),
	crop(ItemPotato, "Potato", 25, 12, 60, 12, 5, 1, 1, "Boil em, mash em"),
	crop(ItemSunflower, "Sunflower", 45, 20, 90, 20, 6, 1, 2, "Tall beauty (1x2)"),
	crop(ItemSugarcane, "Sugarcane", 35, 15, 75, 15, 6, 1, 1, "Sweet stalks"),
	crop(ItemEggplant, "Eggplant", 50, 25, 120, 25, 7, 1, 1, "Purple veg"),
	crop(ItemPumpkin, "Pumpkin", 80, 40, 180, 40, 8, 2, 2, "Huge gourd (2x2)"),
	crop(ItemMelon, "Melon", 100, 50, 240, 50, 9, 2, 2, "Sweet summer treat (2x2)"),
	crop(ItemChili, "Chili Pepper", 60, 30, 150, 30, 10, 1, 1, "Spicy!"),
	crop(ItemStrawberry, "Strawberry", 70, 35, 160, 35, 11, 1, 1, "Red berries"),
	crop(ItemBlueberry, "Blueberry", 75, 38, 170, 38, 12, 1, 1, "Blue berries"),
	crop(ItemGrape, "Grape Vine", 90, 45, 200, 45, 13, 1, 2, "Vineyard staple (1x2)"),
	crop(ItemPineapple, "Pineapple", 120, 60, 300, 60, 14, 1, 1, "Tropical"),
	crop(ItemCauliflower, "Cauliflower", 150, 75, 360, 80, 15, 2, 2, "Pale giant (2x2)"),
	crop(ItemAncientFruit, "Ancient Fruit", 300, 150, 600, 150, 16, 1, 1, "Mysterious glow"),
	crop(ItemStarfruit, "Starfruit", 400, 200, 900, 200, 17, 1, 1, "Celestial taste"),
	crop(ItemGemBerry, "Gem Berry", 600, 300, 1200, 300, 18, 1, 1, "Worth a fortune"),
	crop(ItemGiantMushroom, "Giant Shroom", 800, 400, 1800, 500, 19, 2, 2, "Fungus among us (2x2)"),
	crop(ItemSpiritTree, "Spirit Tree", 2000, 1000, 3600, 1000, 20, 2, 3, "Legendary Tree (2x3)"),

	product(ItemBread, "Bread", 15, 2, "Baked wheat"),
	product(ItemSalad, "Green Salad", 35, 3, "Healthy mix"),
	product(ItemPopcorn, "Popcorn", 25, 4, "Movie snack"),
	product(ItemPotatoChips, "Potato Chips", 60, 5, "Crispy snack"),
	product(ItemTomatoSoup, "Tomato Soup", 70, 6, "Warm soup"),
	product(ItemSugar, "Sugar", 80, 7, "Refined cane"),
	product(ItemCarrotCake, "Carrot Cake", 120, 8, "Sweet dessert"),
	product(ItemPie, "Pumpkin Pie", 250, 9, "Thanksgiving staple"),
	product(ItemJam, "Berry Jam", 180, 12, "Sticky sweet"),
	product(ItemWine, "Fine Wine", 300, 14, "Aged to perfection"),
	product(ItemSpicyStew, "Spicy Stew", 220, 11, "Hot hot hot"),
	product(ItemFruitSalad, "Fruit Salad", 400, 15, "Tropical mix"),
	product(ItemJuice, "Mega Juice", 500, 16, "Energy drink"),
	product(ItemPizza, "Veggie Pizza", 600, 13, "Everyone loves it"),
	product(ItemMagicElixir, "Magic Elixir", 5000, 20, "Pure energy"),
}
