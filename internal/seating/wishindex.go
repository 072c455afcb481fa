package seating

// WishIndex resolves a student's name to the set of names they wished
// to sit next to, built once per optimization run so the scorer never
// has to re-walk the student directory.
type WishIndex map[string]map[string]bool

// BuildWishIndex builds a WishIndex from a StudentDirectory.
func BuildWishIndex(dir StudentDirectory) WishIndex {
	idx := make(WishIndex, len(dir))
	for name, s := range dir {
		wishes := make(map[string]bool, len(s.Wishes))
		for _, w := range s.Wishes {
			wishes[w] = true
		}
		idx[name] = wishes
	}
	return idx
}

// Wishes reports whether `who` wished to sit next to `target`.
func (w WishIndex) Wishes(who, target string) bool {
	wishes, ok := w[who]
	if !ok {
		return false
	}
	return wishes[target]
}

// HasAnyWishes reports whether `who` listed at least one wish.
func (w WishIndex) HasAnyWishes(who string) bool {
	wishes, ok := w[who]
	return ok && len(wishes) > 0
}
