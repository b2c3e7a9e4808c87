package model

// Category is one entry of the fixed catalog category list.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Categories returns the fixed category list served by the API. The list is
// static configuration, never derived from stored products.
func Categories() []Category {
	return []Category{
		{Key: "стулья", Label: "Стулья"},
		{Key: "шкафы", Label: "Шкафы"},
		{Key: "тумбы", Label: "Тумбы"},
		{Key: "столы", Label: "Столы"},
	}
}
