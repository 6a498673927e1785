package inventory

// Item is the remaining count of one countable resource. Counts never go below zero.
type Item struct {
	Recurso  string
	Cantidad int
}

// Covers reports whether the remaining count can satisfy the requested quantity.
func (i Item) Covers(requested int) bool {
	return requested <= i.Cantidad
}
