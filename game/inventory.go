package game

// Inventory tracks one player's pieces as two multisets over piece types.
// Individual pieces of the same type are interchangeable, only counts are
// kept.
type Inventory struct {
	undeployed map[PieceType]int
	deployed   map[PieceType]int
}

// NewInventory returns a full supply: everything undeployed.
func NewInventory() *Inventory {
	inv := &Inventory{
		undeployed: make(map[PieceType]int, len(PieceTypes)),
		deployed:   make(map[PieceType]int, len(PieceTypes)),
	}
	for _, t := range PieceTypes {
		inv.undeployed[t] = t.StartingCount()
	}
	return inv
}

// Undeployed returns how many pieces of type t are still in hand.
func (inv *Inventory) Undeployed(t PieceType) int {
	return inv.undeployed[t]
}

// Deployed returns how many pieces of type t are on the board.
func (inv *Inventory) Deployed(t PieceType) int {
	return inv.deployed[t]
}

// UndeployedTypes returns the types with at least one piece in hand, in
// PieceTypes order.
func (inv *Inventory) UndeployedTypes() []PieceType {
	var out []PieceType
	for _, t := range PieceTypes {
		if inv.undeployed[t] > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Deploy moves one piece of type t from hand to board. Returns false when
// none is left.
func (inv *Inventory) Deploy(t PieceType) bool {
	if inv.undeployed[t] == 0 {
		return false
	}
	inv.undeployed[t]--
	inv.deployed[t]++
	return true
}

// Recall exactly reverses a Deploy. Returns false when no piece of type t
// is deployed.
func (inv *Inventory) Recall(t PieceType) bool {
	if inv.deployed[t] == 0 {
		return false
	}
	inv.deployed[t]--
	inv.undeployed[t]++
	return true
}

// QueenDeployed reports whether the queen bee is on the board.
func (inv *Inventory) QueenDeployed() bool {
	return inv.deployed[QueenBee] > 0
}

// TotalDeployed returns the number of pieces on the board.
func (inv *Inventory) TotalDeployed() int {
	total := 0
	for _, n := range inv.deployed {
		total += n
	}
	return total
}

// Copy returns an independent inventory.
func (inv *Inventory) Copy() *Inventory {
	cp := &Inventory{
		undeployed: make(map[PieceType]int, len(inv.undeployed)),
		deployed:   make(map[PieceType]int, len(inv.deployed)),
	}
	for t, n := range inv.undeployed {
		cp.undeployed[t] = n
	}
	for t, n := range inv.deployed {
		cp.deployed[t] = n
	}
	return cp
}
