package inventory

// StorageKey clave única bajo la que se persiste el estado completo.
const StorageKey = "inventario:estado"

// Gateway puerta de persistencia clave-valor del dispositivo. Get devuelve
// (nil, nil) cuando la clave no existe.
type Gateway interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Clear() error
}

// Tópicos publicados en el bus de eventos tras cada persistencia exitosa.
// Los interesados (logging, UI) se suscriben de forma explícita en lugar de
// observar estado global.
const (
	TopicStoreChanged     = "inventario:sucursal"
	TopicCategoryChanged  = "inventario:categoria"
	TopicProductChanged   = "inventario:producto"
	TopicMovementRecorded = "inventario:movimiento"
	TopicStateLoaded      = "inventario:cargado"
)
