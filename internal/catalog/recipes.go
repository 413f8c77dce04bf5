package catalog

import (
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

func recipe(id, output string, level int, craftMillis, xp int, inputs ...domain.ItemCount) domain.Recipe {
	return domain.Recipe{
		ID:          id,
		OutputItem:  output,
		Inputs:      inputs,
		UnlockLevel: level,
		CraftTime:   time.Duration(craftMillis) * time.Millisecond,
		XPReward:    xp,
	}
}

func in(itemID string, count int) domain.ItemCount {
	return domain.ItemCount{ItemID: itemID, Count: count}
}

var recipeList = []domain.Recipe{
	recipe("r_bread", ItemBread, 2, 2000, 5, in(ItemWheat, 3)),
	recipe("r_salad", ItemSalad, 3, 3000, 10, in(ItemLettuce, 2), in(ItemTomato, 1)),
	recipe("r_popcorn", ItemPopcorn, 4, 2000, 8, in(ItemCorn, 2)),
	recipe("r_chips", ItemPotatoChips, 5, 4000, 15, in(ItemPotato, 2)),
	recipe("r_soup", ItemTomatoSoup, 6, 5000, 20, in(ItemTomato, 3)),
	recipe("r_sugar", ItemSugar, 7, 3000, 15, in(ItemSugarcane, 2)),
	recipe("r_cake", ItemCarrotCake, 8, 8000, 30, in(ItemCarrot, 2), in(ItemWheat, 2), in(ItemSugar, 1)),
	recipe("r_pie", ItemPie, 9, 10000, 50, in(ItemPumpkin, 1), in(ItemWheat, 2), in(ItemSugar, 1)),
	recipe("r_stew", ItemSpicyStew, 11, 12000, 60, in(ItemChili, 2), in(ItemTomato, 2), in(ItemPotato, 2)),
	recipe("r_jam", ItemJam, 12, 8000, 40, in(ItemStrawberry, 2), in(ItemBlueberry, 2), in(ItemSugar, 1)),
	recipe("r_pizza", ItemPizza, 13, 15000, 80, in(ItemWheat, 4), in(ItemTomato, 2), in(ItemLettuce, 1)),
	recipe("r_wine", ItemWine, 14, 20000, 100, in(ItemGrape, 3), in(ItemSugar, 1)),
	recipe("r_fruit_salad", ItemFruitSalad, 15, 10000, 90, in(ItemPineapple, 1), in(ItemMelon, 1), in(ItemStrawberry, 2)),
	recipe("r_juice", ItemJuice, 18, 15000, 150, in(ItemStarfruit, 1), in(ItemAncientFruit, 1)),
	recipe("r_elixir", ItemMagicElixir, 20, 60000, 1000, in(ItemGemBerry, 1), in(ItemSpiritTree, 1), in(ItemWine, 1)),
}
