package food

import "lg/diet-plan-go-api/internal/nutrition"

// Category groups records for substitution.
type Category string

const (
	CategoryProteins   Category = "proteins"
	CategoryCarbs      Category = "carbs"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryFats       Category = "fats"
)

// Record is one row of the nutrient table. Per100g holds values for 100 g.
type Record struct {
	Key      string                  `json:"key"`
	Name     string                  `json:"name"`
	Aliases  []string                `json:"aliases,omitempty"`
	Category Category                `json:"category,omitempty"`
	Per100g  nutrition.NutritionInfo `json:"per_100g"`
}

func per100(kcal int, protein, carbs, fat float64) nutrition.NutritionInfo {
	return nutrition.NutritionInfo{Calories: kcal, ProteinG: protein, CarbsG: carbs, FatG: fat}
}

// records is searched in order. A more specific key must come before any key
// it contains ("batata doce" before "batata") so substring matching picks it.
var records = []Record{
	{Key: "frango", Name: "Grilled chicken breast", Aliases: []string{"peito de frango", "chicken breast", "frango grelhado"}, Category: CategoryProteins, Per100g: per100(165, 31, 0, 3.6)},
	{Key: "carne", Name: "Lean beef", Aliases: []string{"carne bovina", "patinho", "beef", "steak"}, Category: CategoryProteins, Per100g: per100(250, 26, 0, 15)},
	{Key: "salmao", Name: "Salmon", Aliases: []string{"salmon"}, Category: CategoryProteins, Per100g: per100(208, 20, 0, 13)},
	{Key: "atum", Name: "Tuna", Aliases: []string{"tuna"}, Category: CategoryProteins, Per100g: per100(116, 26, 0, 1)},
	{Key: "peixe", Name: "White fish", Aliases: []string{"tilapia", "fish"}, Category: CategoryProteins, Per100g: per100(128, 26, 0, 2.7)},
	{Key: "ovo", Name: "Egg", Aliases: []string{"ovos", "egg", "eggs"}, Category: CategoryProteins, Per100g: per100(155, 13, 1.1, 11)},
	{Key: "tofu", Name: "Tofu", Category: CategoryProteins, Per100g: per100(76, 8, 1.9, 4.8)},
	{Key: "whey", Name: "Whey protein", Aliases: []string{"whey protein", "proteina em po"}, Category: CategoryProteins, Per100g: per100(400, 80, 8, 6)},
	{Key: "bacon", Name: "Bacon", Category: CategoryProteins, Per100g: per100(541, 37, 1.4, 42)},

	{Key: "arroz integral", Name: "Brown rice", Aliases: []string{"brown rice"}, Category: CategoryCarbs, Per100g: per100(124, 2.6, 25.8, 1)},
	{Key: "arroz", Name: "White rice", Aliases: []string{"arroz branco", "rice"}, Category: CategoryCarbs, Per100g: per100(130, 2.7, 28, 0.3)},
	{Key: "feijao", Name: "Beans", Aliases: []string{"beans"}, Category: CategoryCarbs, Per100g: per100(76, 4.8, 13.6, 0.5)},
	{Key: "batata doce", Name: "Sweet potato", Aliases: []string{"sweet potato"}, Category: CategoryCarbs, Per100g: per100(86, 1.6, 20, 0.1)},
	{Key: "batata", Name: "Potato", Aliases: []string{"potato"}, Category: CategoryCarbs, Per100g: per100(77, 2, 17, 0.1)},
	{Key: "aveia", Name: "Oats", Aliases: []string{"oats", "oatmeal"}, Category: CategoryCarbs, Per100g: per100(389, 16.9, 66.3, 6.9)},
	{Key: "pao integral", Name: "Whole wheat bread", Aliases: []string{"whole wheat bread", "wholegrain bread"}, Category: CategoryCarbs, Per100g: per100(247, 13, 41, 3.4)},
	{Key: "pao", Name: "Bread", Aliases: []string{"bread"}, Category: CategoryCarbs, Per100g: per100(265, 9, 49, 3.2)},
	{Key: "macarrao", Name: "Pasta", Aliases: []string{"massa", "pasta"}, Category: CategoryCarbs, Per100g: per100(158, 5.8, 31, 0.9)},
	{Key: "quinoa", Name: "Quinoa", Category: CategoryCarbs, Per100g: per100(120, 4.4, 21.3, 1.9)},

	{Key: "brocolis", Name: "Broccoli", Aliases: []string{"broccoli"}, Category: CategoryVegetables, Per100g: per100(34, 2.8, 7, 0.4)},
	{Key: "espinafre", Name: "Spinach", Aliases: []string{"spinach"}, Category: CategoryVegetables, Per100g: per100(23, 2.9, 3.6, 0.4)},
	{Key: "alface", Name: "Lettuce", Aliases: []string{"lettuce", "salada verde", "green salad"}, Category: CategoryVegetables, Per100g: per100(15, 1.4, 2.9, 0.2)},
	{Key: "tomate", Name: "Tomato", Aliases: []string{"tomato"}, Category: CategoryVegetables, Per100g: per100(18, 0.9, 3.9, 0.2)},
	{Key: "cenoura", Name: "Carrot", Aliases: []string{"carrot"}, Category: CategoryVegetables, Per100g: per100(41, 0.9, 10, 0.2)},
	{Key: "abobrinha", Name: "Zucchini", Aliases: []string{"zucchini"}, Category: CategoryVegetables, Per100g: per100(17, 1.2, 3.1, 0.3)},

	{Key: "banana", Name: "Banana", Category: CategoryFruits, Per100g: per100(89, 1.1, 22.8, 0.3)},
	{Key: "maca", Name: "Apple", Aliases: []string{"apple"}, Category: CategoryFruits, Per100g: per100(52, 0.3, 13.8, 0.2)},
	{Key: "morango", Name: "Strawberries", Aliases: []string{"strawberry", "strawberries"}, Category: CategoryFruits, Per100g: per100(32, 0.7, 7.7, 0.3)},
	{Key: "abacate", Name: "Avocado", Aliases: []string{"avocado"}, Category: CategoryFruits, Per100g: per100(160, 2, 8.5, 14.7)},

	{Key: "iogurte", Name: "Greek yogurt", Aliases: []string{"iogurte grego", "greek yogurt", "yogurt"}, Category: CategoryDairy, Per100g: per100(59, 10, 3.6, 0.4)},
	{Key: "leite", Name: "Milk", Aliases: []string{"milk"}, Category: CategoryDairy, Per100g: per100(61, 3.2, 4.8, 3.3)},
	{Key: "queijo", Name: "Cheese", Aliases: []string{"cheese"}, Category: CategoryDairy, Per100g: per100(402, 25, 1.3, 33)},

	{Key: "azeite", Name: "Olive oil", Aliases: []string{"olive oil"}, Category: CategoryFats, Per100g: per100(884, 0, 0, 100)},
	{Key: "pasta de amendoim", Name: "Peanut butter", Aliases: []string{"peanut butter"}, Category: CategoryFats, Per100g: per100(588, 25, 20, 50)},
	{Key: "castanhas", Name: "Mixed nuts", Aliases: []string{"castanha", "nuts", "almonds"}, Category: CategoryFats, Per100g: per100(607, 20, 21, 54)},
}

// Generic is returned by Lookup when nothing in the table matches.
var Generic = Record{Key: "generic", Name: "Generic food", Per100g: per100(150, 10, 15, 5)}

// substitution maps keywords in a free-text swap request to a record key.
// Checked in order; keywords are already normalized.
var substitutions = []struct {
	keywords []string
	key      string
}{
	{[]string{"vegan", "vegetarian", "vegetariano", "semcarne", "plantbased"}, "tofu"},
	{[]string{"batatadoce", "sweetpotato"}, "batata doce"},
	{[]string{"frango", "chicken"}, "frango"},
	{[]string{"peixe", "fish"}, "peixe"},
	{[]string{"salmao", "salmon"}, "salmao"},
	{[]string{"carne", "beef", "steak"}, "carne"},
	{[]string{"ovo", "egg"}, "ovo"},
	{[]string{"integral", "wholegrain", "brownrice"}, "arroz integral"},
	{[]string{"arroz", "rice"}, "arroz"},
	{[]string{"batata", "potato"}, "batata"},
	{[]string{"macarrao", "massa", "pasta"}, "macarrao"},
	{[]string{"aveia", "oat"}, "aveia"},
	{[]string{"quinoa"}, "quinoa"},
	{[]string{"fruta", "fruit", "doce", "sweet"}, "banana"},
	{[]string{"iogurte", "yogurt", "laticinio", "dairy"}, "iogurte"},
}

// categoryTable drives FindCategorySubstitutes, in check order.
var categoryTable = []struct {
	category    Category
	keywords    []string
	substitutes []string
}{
	{
		CategoryProteins,
		[]string{"frango", "chicken", "carne", "beef", "steak", "peixe", "fish", "salmao", "salmon", "atum", "tuna", "ovo", "egg", "tofu", "whey", "peru", "turkey"},
		[]string{"Grilled chicken breast", "Lean beef", "Baked fish", "Boiled eggs", "Tofu"},
	},
	{
		CategoryCarbs,
		[]string{"arroz", "rice", "batata", "potato", "pao", "bread", "macarrao", "pasta", "aveia", "oat", "quinoa", "mandioca", "cassava", "tapioca", "feijao", "beans"},
		[]string{"Brown rice", "Sweet potato", "Whole wheat bread", "Quinoa", "Oats"},
	},
	{
		CategoryVegetables,
		[]string{"brocolis", "broccoli", "espinafre", "spinach", "cenoura", "carrot", "tomate", "tomato", "abobrinha", "zucchini", "couve", "kale", "legume", "vegetable"},
		[]string{"Broccoli", "Spinach", "Zucchini", "Carrot", "Green beans"},
	},
	{
		CategoryFruits,
		[]string{"banana", "maca", "apple", "morango", "strawberr", "laranja", "orange", "mamao", "papaya", "abacate", "avocado", "fruta", "fruit", "berr"},
		[]string{"Banana", "Apple", "Strawberries", "Papaya", "Orange"},
	},
	{
		CategoryDairy,
		[]string{"leite", "milk", "iogurte", "yogurt", "queijo", "cheese", "requeijao", "kefir"},
		[]string{"Greek yogurt", "Skim milk", "Cottage cheese", "Kefir"},
	},
}

var (
	grilledKeywords = []string{"grelhad", "grill", "assad", "roast", "meat", "bife"}
	grilledBucket   = []string{"Grilled chicken breast", "Grilled fish", "Lean beef steak"}

	greensKeywords = []string{"salad", "salada", "green", "verde", "folha", "leaf"}
	greensBucket   = []string{"Mixed green salad", "Spinach", "Arugula"}
)

// NoSuggestion is the single entry returned when no category matches.
const NoSuggestion = "No substitutes available"
