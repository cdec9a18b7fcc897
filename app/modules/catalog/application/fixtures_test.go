package catalogservice

import (
	"testing/fstest"
)

func file(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

// testDataset is a small but complete dataset covering both recipe encodings,
// merged and nested tags, new-format ingredients and a skipped recipe type.
func testDataset() fstest.MapFS {
	return fstest.MapFS{
		"lang.json": file(`{
			"item.minecraft.stick": "Stick",
			"block.minecraft.oak_planks": "Oak Planks",
			"block.minecraft.spruce_planks": "Spruce Planks",
			"block.minecraft.birch_planks": "Birch Planks",
			"item.minecraft.coal": "Coal",
			"item.minecraft.charcoal": "Charcoal",
			"block.minecraft.torch": "Torch",
			"block.minecraft.crafting_table": "Crafting Table",
			"item.minecraft.furnace": "Furnace",
			"block.minecraft.furnace": "Furnace Block",
			"block.minecraft.cobblestone": "Cobblestone"
		}`),
		"tags/blocks/planks.json":    file(`{"values": ["minecraft:oak_planks", "minecraft:spruce_planks"]}`),
		"tags/items/planks.json":     file(`{"values": ["minecraft:oak_planks", "#minecraft:birch_like"]}`),
		"tags/items/birch_like.json": file(`{"values": [{"id": "minecraft:birch_planks", "required": false}]}`),
		"tags/items/coals.json":      file(`{"values": ["minecraft:coal", "minecraft:charcoal"]}`),
		"recipes/stick.json": file(`{
			"type": "minecraft:crafting_shaped",
			"pattern": ["#", "#"],
			"key": {"#": {"tag": "minecraft:planks"}},
			"result": {"item": "minecraft:stick", "count": 4}
		}`),
		"recipes/torch.json": file(`{
			"type": "minecraft:crafting_shaped",
			"pattern": ["X", "#"],
			"key": {
				"#": {"item": "minecraft:stick"},
				"X": [{"item": "minecraft:coal"}, {"item": "minecraft:charcoal"}]
			},
			"result": {"item": "minecraft:torch", "count": 4}
		}`),
		"recipes/crafting_table.json": file(`{
			"type": "minecraft:crafting_shaped",
			"pattern": ["##", "##"],
			"key": {"#": {"tag": "minecraft:planks"}},
			"result": {"item": "minecraft:crafting_table"}
		}`),
		"recipes/fire_charge.json": file(`{
			"type": "minecraft:crafting_shapeless",
			"ingredients": [{"item": "minecraft:coal"}, {"item": "minecraft:coal"}, {"item": "minecraft:stick"}],
			"result": {"item": "minecraft:fire_charge"}
		}`),
		"recipes/torch_from_tag.json": file(`{
			"type": "minecraft:crafting_shapeless",
			"ingredients": ["minecraft:stick", "#minecraft:coals"],
			"result": {"id": "minecraft:torch", "count": 2}
		}`),
		"recipes/stone_from_cobblestone.json": file(`{
			"type": "minecraft:smelting",
			"ingredient": {"item": "minecraft:cobblestone"},
			"result": "minecraft:stone"
		}`),
	}
}

// seqIntN returns the given values in order, then zeros.
func seqIntN(values ...int) func(int) int {
	return func(n int) int {
		if len(values) == 0 {
			return 0
		}
		v := values[0]
		values = values[1:]
		return v % n
	}
}
