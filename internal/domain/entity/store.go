package entity

import "time"

// StoreType tipo de tienda dentro de la cadena.
type StoreType string

const (
	StoreTypeFranchise      StoreType = "franchise"
	StoreTypeCentralKitchen StoreType = "central_kitchen"
)

// Store tienda o cocina central de una cadena.
type Store struct {
	ID        int64
	ChainID   int64
	Name      string
	Address   string
	Type      StoreType
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item insumo que la cocina central produce y las tiendas almacenan.
// Es la unidad sobre la que trabajan producción e inventario.
type Item struct {
	ID      int64
	ChainID int64
	Name    string
	Unit    string // kg, l, unidad...
}
