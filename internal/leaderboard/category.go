package leaderboard

import "hexdrill/internal/radix"

// Category is either one conversion pair or the session Total. Total is its
// own variant, so it can never be confused with a pair.
type Category struct {
	total bool
	pair  radix.Pair
}

var Total = Category{total: true}

const numCategories = 7

func PairCategory(p radix.Pair) Category {
	return Category{pair: p}
}

func (c Category) IsTotal() bool {
	return c.total
}

// Pair returns the conversion of a pair category; ok is false for Total.
func (c Category) Pair() (radix.Pair, bool) {
	if c.total {
		return radix.Pair{}, false
	}
	return c.pair, true
}

func (c Category) String() string {
	if c.total {
		return "total"
	}
	return c.pair.String()
}

// Categories lists every category in on-disk order: Total first, then the
// pairs in play order.
func Categories() []Category {
	pairs := radix.Pairs()
	cats := make([]Category, 0, len(pairs)+1)
	cats = append(cats, Total)
	for _, p := range pairs {
		cats = append(cats, PairCategory(p))
	}
	return cats
}
