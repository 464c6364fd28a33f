package targets

// DietStyle names a macro-split template. Unknown values resolve to
// StyleTraditional.
type DietStyle string

const (
	StyleTraditional   DietStyle = "traditional"
	StyleLowCarb       DietStyle = "low_carb"
	StyleKetogenic     DietStyle = "ketogenic"
	StyleMediterranean DietStyle = "mediterranean"
	StyleVegetarian    DietStyle = "vegetarian"
	StyleVegan         DietStyle = "vegan"
	StyleFlexible      DietStyle = "flexible"
)

// MacroSplit is a protein/carb/fat share of calories, in percent.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// macroSplits is configuration, one row per style. Each row sums to 100.
var macroSplits = map[DietStyle]MacroSplit{
	StyleTraditional:   {Protein: 20, Carbs: 50, Fat: 30},
	StyleKetogenic:     {Protein: 20, Carbs: 5, Fat: 75},
	StyleLowCarb:       {Protein: 30, Carbs: 20, Fat: 50},
	StyleMediterranean: {Protein: 20, Carbs: 42, Fat: 38},
	StyleVegetarian:    {Protein: 22, Carbs: 52, Fat: 26},
	StyleVegan:         {Protein: 22, Carbs: 52, Fat: 26},
	StyleFlexible:      {Protein: 30, Carbs: 42, Fat: 28},
}

// DietStyles lists every supported style.
var DietStyles = []DietStyle{
	StyleTraditional, StyleLowCarb, StyleKetogenic, StyleMediterranean,
	StyleVegetarian, StyleVegan, StyleFlexible,
}

// ParseDietStyle accepts "low-carb", "Low Carb", "keto" and similar spellings.
func ParseDietStyle(s string) DietStyle {
	n := DietStyle(normalizeEnum(s))
	if n == "keto" {
		return StyleKetogenic
	}
	if n == "lowcarb" {
		return StyleLowCarb
	}
	if _, ok := macroSplits[n]; ok {
		return n
	}
	return StyleTraditional
}

// ValidDietStyle reports whether s names a known style, as opposed to
// resolving to traditional through the default arm.
func ValidDietStyle(s string) bool {
	return ParseDietStyle(s) != StyleTraditional || normalizeEnum(s) == string(StyleTraditional)
}

// SplitFor returns the nominal split for style, falling back to traditional.
func SplitFor(style DietStyle) MacroSplit {
	if split, ok := macroSplits[ParseDietStyle(string(style))]; ok {
		return split
	}
	return macroSplits[StyleTraditional]
}
