package weather

type IconCategory string

const (
	CategoryThunderstorm    IconCategory = "thunderstorm"
	CategoryDrizzle         IconCategory = "drizzle"
	CategoryRain            IconCategory = "rain"
	CategorySnow            IconCategory = "snow"
	CategoryAtmosphere      IconCategory = "atmosphere"
	CategoryClear           IconCategory = "clear"
	CategoryFewClouds       IconCategory = "few_clouds"
	CategoryScatteredClouds IconCategory = "scattered_clouds"
	CategoryOvercast        IconCategory = "overcast"
)

// Icon returns the drawable name the mobile screens used for the category.
func (c IconCategory) Icon() string {
	switch c {
	case CategoryThunderstorm:
		return "d11"
	case CategoryDrizzle:
		return "d09"
	case CategoryRain:
		return "d10"
	case CategorySnow:
		return "d13"
	case CategoryAtmosphere:
		return "d50"
	case CategoryClear:
		return "d01"
	case CategoryFewClouds:
		return "d02"
	case CategoryScatteredClouds:
		return "d03"
	case CategoryOvercast:
		return "d04"
	}
	return ""
}

type codeRange struct {
	from, to int
	category IconCategory
}

// Ordered; the first matching row wins and both bounds are inclusive.
var categoryTable = []codeRange{
	{200, 232, CategoryThunderstorm},
	{300, 321, CategoryDrizzle},
	{520, 531, CategoryDrizzle},
	{500, 504, CategoryRain},
	{511, 511, CategorySnow},
	{600, 622, CategorySnow},
	{701, 781, CategoryAtmosphere},
	{800, 800, CategoryClear},
	{801, 801, CategoryFewClouds},
	{802, 802, CategoryScatteredClouds},
	{803, 804, CategoryOvercast},
}

const (
	minConditionCode = 200
	maxConditionCode = 804
)

// Categorize maps a provider condition code to its display category. Codes outside
// 200..804, and gaps inside it such as 233 or 505, have none.
func Categorize(code int) (IconCategory, bool) {
	if code < minConditionCode || code > maxConditionCode {
		return "", false
	}
	for _, row := range categoryTable {
		if code >= row.from && code <= row.to {
			return row.category, true
		}
	}
	return "", false
}
