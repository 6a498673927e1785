package api

// User-facing texts returned by the API.
const (
	MsgReservationCreated      = "¡Reserva realizada con éxito!"
	MsgRoomCheckFailed         = "Error al verificar la reserva."
	MsgSlotTaken               = "No puedes reservar a esta hora, otra persona ya lo hizo"
	MsgInventoryCheckFailed    = "Error al verificar inventario."
	MsgInsufficientInventory   = "Solo queda esta %d cantidad de lo que está pidiendo"
	MsgInventoryUpdateFailed   = "Error al actualizar inventario."
	MsgReservationSaveFailed   = "Error al guardar la reserva."
	MsgInvalidQuantity         = "La cantidad solicitada debe ser mayor que cero."
	MsgReservationDeleted      = "Reserva eliminada"
	MsgReservationDeletedStock = "Reserva eliminada y inventario actualizado"

	ErrMsgInvalidRequest      = "Solicitud inválida"
	ErrMsgListReservations    = "Error al obtener reservas"
	ErrMsgListInventory       = "Error al obtener inventario"
	ErrMsgReservationLookup   = "Error al obtener la reserva"
	ErrMsgReservationDeletion = "Error al eliminar la reserva"
)
