package repositories

// CanteenRepository is the canteen database: canteen name to menu (item to
// price). A menu stored by Put is shared with the caller.
type CanteenRepository struct {
	menus map[string]map[string]int64
}

// NewCanteenRepository creates an empty canteen database
func NewCanteenRepository() *CanteenRepository {
	return &CanteenRepository{menus: make(map[string]map[string]int64)}
}

// Get returns the stored menu of a canteen
func (r *CanteenRepository) Get(name string) (map[string]int64, bool) {
	menu, ok := r.menus[name]
	return menu, ok
}

// Put stores the menu of a canteen
func (r *CanteenRepository) Put(name string, menu map[string]int64) {
	r.menus[name] = menu
}

// Exists reports whether a canteen has an entry
func (r *CanteenRepository) Exists(name string) bool {
	_, ok := r.menus[name]
	return ok
}

// Snapshot returns a deep copy of every menu
func (r *CanteenRepository) Snapshot() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(r.menus))
	for name, menu := range r.menus {
		mc := make(map[string]int64, len(menu))
		for item, price := range menu {
			mc[item] = price
		}
		out[name] = mc
	}
	return out
}
