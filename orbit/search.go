package orbit

// target names one of the two objects MinimumTransfers looks for.
type target int

const (
	targetA target = iota
	targetB
)

// searchKind tags what a subtree walk has discovered so far.
type searchKind int

const (
	// neitherFound: neither target lies in the subtree.
	neitherFound searchKind = iota
	// oneFound: exactly one target lies in the subtree, dist hops below it.
	oneFound
	// bothFound: both targets lie in the subtree; distA and distB are the hop
	// counts from their lowest common ancestor.
	bothFound
)

// search is the result of walking one subtree for two targets at once.
type search struct {
	kind  searchKind
	which target // oneFound only
	dist  int    // oneFound only
	distA int    // bothFound only
	distB int    // bothFound only
}

func found(which target, dist int) search {
	return search{kind: oneFound, which: which, dist: dist}
}

func foundBoth(distA, distB int) search {
	return search{kind: bothFound, distA: distA, distB: distB}
}

// with records that which sits dist hops below the current node. A later
// sighting of the same target replaces the earlier one; a sighting of the
// other target upgrades s to bothFound.
func (s search) with(which target, dist int) search {
	switch s.kind {
	case neitherFound:
		return found(which, dist)
	case oneFound:
		if s.which == which {
			return found(which, dist)
		}
		if which == targetA {
			return foundBoth(dist, s.dist)
		}

		return foundBoth(s.dist, dist)
	default:
		if which == targetA {
			return foundBoth(dist, s.distB)
		}

		return foundBoth(s.distA, dist)
	}
}

// absorb folds the result of one child subtree into its parent's running
// result. A single sighting is one hop further from the parent than from the
// child. Callers handle a child's bothFound before absorb: it passes up
// unchanged.
func (s search) absorb(child search) search {
	if child.kind != oneFound {
		return s
	}

	return s.with(child.which, child.dist+1)
}
