package resource

import (
	"reservas/internal/domain/inventory"
)

type Kind int

const (
	// KindFree resources are always accepted and never touch inventory.
	KindFree Kind = iota
	// KindRoom resources are checked for an exact date+time conflict.
	KindRoom
	// KindCountable resources draw from a shared inventory count.
	KindCountable
)

func (k Kind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindCountable:
		return "countable"
	default:
		return "free"
	}
}

const (
	ComputerRoom = "Sala de informática"
	Tablet       = "Tablet"
	Chargers     = "Cargadores"
	Projectors   = "Datas"
	HDMI         = "HDMI"
)

type Entry struct {
	Name         string
	Kind         Kind
	InitialCount int
}

type Catalog struct {
	kinds map[string]Kind
	seed  []inventory.Item
}

func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{kinds: make(map[string]Kind, len(entries))}
	for _, e := range entries {
		c.kinds[e.Name] = e.Kind
		if e.Kind == KindCountable {
			c.seed = append(c.seed, inventory.Item{Recurso: e.Name, Cantidad: e.InitialCount})
		}
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		Entry{Name: ComputerRoom, Kind: KindRoom},
		Entry{Name: Tablet, Kind: KindCountable, InitialCount: 96},
		Entry{Name: Chargers, Kind: KindCountable, InitialCount: 96},
		Entry{Name: Projectors, Kind: KindCountable, InitialCount: 2},
		Entry{Name: HDMI, Kind: KindCountable, InitialCount: 2},
	)
}

func (c *Catalog) KindOf(name string) Kind {
	if k, ok := c.kinds[name]; ok {
		return k
	}
	return KindFree
}

func (c *Catalog) IsCountable(name string) bool {
	return c.KindOf(name) == KindCountable
}

// SeedInventory returns the rows inserted on first startup.
func (c *Catalog) SeedInventory() []inventory.Item {
	out := make([]inventory.Item, len(c.seed))
	copy(out, c.seed)
	return out
}
