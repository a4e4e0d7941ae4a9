package models

// Glycemic index labels used by the catalog. Stored as free text on the
// items so future catalog versions can refine them without a migration.
const (
	igBas    = "IG bas"
	igModere = "IG modéré"
	igEleve  = "IG élevé"
)

func facts(calories, carbs, protein, fat, sugars, fiber, sodium float64) *NutritionFacts {
	return &NutritionFacts{
		Calories: calories,
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
		Sugars:   sugars,
		Fiber:    fiber,
		Sodium:   sodium,
	}
}

// DefaultCatalog returns a fresh copy of the static food catalog.
// Callers overlay user preferences onto it, so every call must hand out
// slices the caller can mutate freely.
func DefaultCatalog() []FoodCategory {
	return []FoodCategory{
		{
			ID:   "legumes",
			Name: "Légumes",
			Items: []FoodItem{
				{ID: "brocoli", Name: "Brocoli", GlycemicIndex: igBas, Nutrition: facts(34, 7, 2.8, 0.4, 1.7, 2.6, 33)},
				{ID: "epinards", Name: "Épinards", GlycemicIndex: igBas, Nutrition: facts(23, 3.6, 2.9, 0.4, 0.4, 2.2, 79)},
				{ID: "haricots-verts", Name: "Haricots verts", GlycemicIndex: igBas},
				{ID: "courgette", Name: "Courgette", GlycemicIndex: igBas},
				{ID: "tomate", Name: "Tomate", GlycemicIndex: igBas, Nutrition: facts(18, 3.9, 0.9, 0.2, 2.6, 1.2, 5)},
				{ID: "poivron", Name: "Poivron", GlycemicIndex: igBas},
				{ID: "carottes", Name: "Carottes", GlycemicIndex: igModere, Notes: "IG plus élevé une fois cuites"},
				{ID: "betterave", Name: "Betterave", GlycemicIndex: igModere},
			},
		},
		{
			ID:   "fruits",
			Name: "Fruits",
			Items: []FoodItem{
				{ID: "pomme", Name: "Pomme", GlycemicIndex: igBas, Nutrition: facts(52, 14, 0.3, 0.2, 10, 2.4, 1)},
				{ID: "poire", Name: "Poire", GlycemicIndex: igBas},
				{ID: "orange", Name: "Orange", GlycemicIndex: igBas},
				{ID: "fraises", Name: "Fraises", GlycemicIndex: igBas, Nutrition: facts(32, 7.7, 0.7, 0.3, 4.9, 2, 1)},
				{ID: "banane", Name: "Banane", GlycemicIndex: igModere, Nutrition: facts(89, 23, 1.1, 0.3, 12, 2.6, 1)},
				{ID: "raisin", Name: "Raisin", GlycemicIndex: igModere},
				{ID: "pasteque", Name: "Pastèque", GlycemicIndex: igEleve, Notes: "à consommer avec modération"},
			},
		},
		{
			ID:   "feculents",
			Name: "Féculents et céréales",
			Items: []FoodItem{
				{ID: "lentilles", Name: "Lentilles", GlycemicIndex: igBas, Nutrition: facts(116, 20, 9, 0.4, 1.8, 7.9, 2)},
				{ID: "pois-chiches", Name: "Pois chiches", GlycemicIndex: igBas},
				{ID: "quinoa", Name: "Quinoa", GlycemicIndex: igBas, Nutrition: facts(120, 21, 4.4, 1.9, 0.9, 2.8, 7)},
				{ID: "flocons-avoine", Name: "Flocons d'avoine", GlycemicIndex: igModere, Nutrition: facts(389, 66, 17, 6.9, 0.99, 10.6, 2)},
				{ID: "riz-basmati", Name: "Riz basmati", GlycemicIndex: igModere},
				{ID: "pain-complet", Name: "Pain complet", GlycemicIndex: igModere},
				{ID: "patate-douce", Name: "Patate douce", GlycemicIndex: igModere},
				{ID: "riz-blanc", Name: "Riz blanc", GlycemicIndex: igEleve},
				{ID: "pain-blanc", Name: "Pain blanc", GlycemicIndex: igEleve, Nutrition: facts(265, 49, 9, 3.2, 5, 2.7, 491)},
				{ID: "pomme-de-terre", Name: "Pomme de terre", GlycemicIndex: igEleve},
			},
		},
		{
			ID:   "proteines",
			Name: "Protéines",
			Items: []FoodItem{
				{ID: "poulet", Name: "Poulet", GlycemicIndex: igBas, Nutrition: facts(165, 0, 31, 3.6, 0, 0, 74)},
				{ID: "saumon", Name: "Saumon", GlycemicIndex: igBas, Nutrition: facts(208, 0, 20, 13, 0, 0, 59), Notes: "riche en oméga-3"},
				{ID: "thon", Name: "Thon", GlycemicIndex: igBas},
				{ID: "oeufs", Name: "Œufs", GlycemicIndex: igBas, Nutrition: facts(155, 1.1, 13, 11, 1.1, 0, 124)},
				{ID: "tofu", Name: "Tofu", GlycemicIndex: igBas},
				{ID: "boeuf-maigre", Name: "Bœuf maigre", GlycemicIndex: igBas},
			},
		},
		{
			ID:   "laitages",
			Name: "Produits laitiers",
			Items: []FoodItem{
				{ID: "yaourt-nature", Name: "Yaourt nature", GlycemicIndex: igBas, Nutrition: facts(59, 3.6, 10, 0.4, 3.2, 0, 36)},
				{ID: "fromage-blanc", Name: "Fromage blanc", GlycemicIndex: igBas},
				{ID: "skyr", Name: "Skyr", GlycemicIndex: igBas},
				{ID: "lait-demi-ecreme", Name: "Lait demi-écrémé", GlycemicIndex: igBas},
			},
		},
		{
			ID:   "matieres-grasses",
			Name: "Matières grasses et oléagineux",
			Items: []FoodItem{
				{ID: "huile-olive", Name: "Huile d'olive", GlycemicIndex: igBas, Nutrition: facts(884, 0, 0, 100, 0, 0, 2)},
				{ID: "amandes", Name: "Amandes", GlycemicIndex: igBas, Nutrition: facts(579, 22, 21, 50, 4.4, 12.5, 1)},
				{ID: "noix", Name: "Noix", GlycemicIndex: igBas},
				{ID: "avocat", Name: "Avocat", GlycemicIndex: igBas, Nutrition: facts(160, 8.5, 2, 14.7, 0.7, 6.7, 7)},
				{ID: "graines-chia", Name: "Graines de chia", GlycemicIndex: igBas},
			},
		},
	}
}
