package service

import (
	"github.com/mebella/catalog-api/internal/model"
	"github.com/mebella/catalog-api/pkg/ptr"
)

// sampleProducts is the fixed bootstrap catalog: one product per category,
// each with realistic variants.
func sampleProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Стул Nordica",
			Description: "Скандинавский стул с мягким сиденьем и деревянными ножками.",
			Category:    "стулья",
			BasePrice:   ptr.New(4990.0),
			Images: []string{
				"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=1200&q=80&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503602642458-232111445657?w=1200&q=80&auto=format&fit=crop",
			},
			Material:    "Массив бука, ткань",
			Brand:       "Мебелла",
			ColorFamily: []string{"бежевый", "серый", "черный"},
			Variants: []model.Variant{
				{Color: "бежевый", ColorHex: "#D8C3A5", Size: "стандарт", SKU: "CH-NOR-BE-STD", Price: 4990, Stock: 25},
				{Color: "серый", ColorHex: "#A0A0A0", Size: "стандарт", SKU: "CH-NOR-GR-STD", Price: 4990, Stock: 18},
				{Color: "черный", ColorHex: "#000000", Size: "стандарт", SKU: "CH-NOR-BK-STD", Price: 5290, Stock: 12},
			},
		},
		{
			Name:        "Шкаф Alto 3D",
			Description: "Трехдверный шкаф с отделениями для одежды и белья, спокойный минимализм.",
			Category:    "шкафы",
			BasePrice:   ptr.New(24990.0),
			Images: []string{
				"https://images.unsplash.com/photo-1598300183876-2b0b1f5b7c47?w=1200&q=80&auto=format&fit=crop",
			},
			Material:    "ЛДСП, МДФ",
			Brand:       "Мебелла",
			ColorFamily: []string{"белый", "дуб"},
			Variants: []model.Variant{
				{Color: "белый", ColorHex: "#FFFFFF", Size: "200x120x60", SKU: "WR-AL3-WH-200", Price: 24990, Stock: 8},
				{Color: "дуб", ColorHex: "#C5A572", Size: "220x140x60", SKU: "WR-AL3-OK-220", Price: 28990, Stock: 5},
			},
		},
		{
			Name:        "Тумба Nova",
			Description: "Прикроватная тумба с плавным закрыванием, скрытые ручки.",
			Category:    "тумбы",
			BasePrice:   ptr.New(6990.0),
			Images: []string{
				"https://images.unsplash.com/photo-1549187774-b4e9b0445b06?w=1200&q=80&auto=format&fit=crop",
			},
			Material:    "МДФ",
			Brand:       "Мебелла",
			ColorFamily: []string{"белый", "графит"},
			Variants: []model.Variant{
				{Color: "белый", ColorHex: "#FFFFFF", Size: "50x40x35", SKU: "NS-NOV-WH-50", Price: 6990, Stock: 20},
				{Color: "графит", ColorHex: "#3B3B3B", Size: "50x40x35", SKU: "NS-NOV-GR-50", Price: 7290, Stock: 14},
			},
		},
		{
			Name:        "Стол Loft+",
			Description: "Обеденный стол в стиле лофт, металлическое основание, столешница из дуба.",
			Category:    "столы",
			BasePrice:   ptr.New(19990.0),
			Images: []string{
				"https://images.unsplash.com/photo-1493666438817-866a91353ca9?w=1200&q=80&auto=format&fit=crop",
			},
			Material:    "Дуб, металл",
			Brand:       "Мебелла",
			ColorFamily: []string{"дуб натуральный", "венге"},
			Variants: []model.Variant{
				{Color: "дуб натуральный", ColorHex: "#C8A97E", Size: "120x70", SKU: "TB-LOF-NA-120", Price: 19990, Stock: 10},
				{Color: "дуб натуральный", ColorHex: "#C8A97E", Size: "160x80", SKU: "TB-LOF-NA-160", Price: 23990, Stock: 7},
				{Color: "венге", ColorHex: "#3E2B23", Size: "160x80", SKU: "TB-LOF-WE-160", Price: 24990, Stock: 4},
			},
		},
	}
}
