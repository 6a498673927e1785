package reservation

// Reservation is immutable once stored: it is only ever created or deleted.
type Reservation struct {
	ID       int64
	Nombre   string
	Curso    string
	Fecha    string
	Recurso  string
	Hora     string
	Cantidad int
}

// Slot identifies the time slot a room reservation occupies.
type Slot struct {
	Recurso string
	Fecha   string
	Hora    string
}

func (r Reservation) Slot() Slot {
	return Slot{Recurso: r.Recurso, Fecha: r.Fecha, Hora: r.Hora}
}

// Key compares by exact string equality, without normalization.
func (s Slot) Key() string {
	return s.Recurso + "|" + s.Fecha + "|" + s.Hora
}

// Created is the payload broadcast when a reservation is stored.
// It carries the request fields but not the generated id.
type Created struct {
	Nombre   string `json:"nombre"`
	Curso    string `json:"curso"`
	Fecha    string `json:"fecha"`
	Recurso  string `json:"recurso"`
	Hora     string `json:"hora"`
	Cantidad int    `json:"cantidad"`
}

func (r Reservation) Created() Created {
	return Created{
		Nombre:   r.Nombre,
		Curso:    r.Curso,
		Fecha:    r.Fecha,
		Recurso:  r.Recurso,
		Hora:     r.Hora,
		Cantidad: r.Cantidad,
	}
}
