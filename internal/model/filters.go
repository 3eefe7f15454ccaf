package model

// Product attribute enums shared by the catalog filters and the seed data.

var Colors = []string{"black", "white", "oak", "walnut", "grey", "natural"}

var Materials = []string{"wood", "metal", "fabric", "leather", "glass"}

type SortOrder string

const (
	SortName      SortOrder = "name"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRelevance SortOrder = "relevance"
)

func ValidColor(c string) bool {
	return contains(Colors, c)
}

func ValidMaterial(m string) bool {
	return contains(Materials, m)
}

func ValidSort(s SortOrder) bool {
	switch s {
	case SortName, SortPriceAsc, SortPriceDesc, SortRelevance:
		return true
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
