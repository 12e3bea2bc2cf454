package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON Point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// ScheduleEntry is one weekday of a restaurant's opening hours
type ScheduleEntry struct {
	Day    string `json:"dia" bson:"dia"`
	Opens  string `json:"apertura" bson:"apertura"`
	Closes string `json:"cierre" bson:"cierre"`
}

// Restaurant represents one restaurant document
type Restaurant struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"nombre" bson:"nombre"`
	Address  string             `json:"direccion" bson:"direccion"`
	Location GeoPoint           `json:"ubicacion" bson:"ubicacion"`
	Phone    string             `json:"telefono" bson:"telefono"`
	Email    string             `json:"email" bson:"email"`
	Schedule []ScheduleEntry    `json:"horario" bson:"horario"`
}

// User represents one user account document
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName    string             `json:"nombre" bson:"nombre"`
	LastName     string             `json:"apellido" bson:"apellido"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"telefono" bson:"telefono"`
	Address      string             `json:"direccion" bson:"direccion"`
	NIT          string             `json:"nit" bson:"nit"`
	RegisteredAt time.Time          `json:"fechaRegistro" bson:"fechaRegistro"`
	Password     string             `json:"-" bson:"password"`
	Role         string             `json:"rol" bson:"rol"`
}

// MenuItem is a pre-existing menu document. The seeder only reads these
// fields; it never writes the articulos_menu collection.
type MenuItem struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"nombre" bson:"nombre"`
	Price float64            `json:"precio" bson:"precio"`
}

// OrderItem is one line item within an order. Name and price are snapshots
// taken at generation time so order history survives later menu edits.
type OrderItem struct {
	MenuItemID primitive.ObjectID `json:"menuItemId" bson:"menuItemId"`
	Name       string             `json:"nombre" bson:"nombre"`
	Quantity   int                `json:"cantidad" bson:"cantidad"`
	Price      float64            `json:"precio" bson:"precio"`
}

// Order represents one order document
type Order struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"usuarioId" bson:"usuarioId"`
	RestaurantID primitive.ObjectID `json:"restauranteId" bson:"restauranteId"`
	Date         time.Time          `json:"fecha" bson:"fecha"`
	Status       string             `json:"estado" bson:"estado"`
	Total        float64            `json:"total" bson:"total"`
	Items        []OrderItem        `json:"articulos" bson:"articulos"`
}

// Review represents one review document. Every review references an order;
// MenuItemID is set only for item-level reviews and must then point at one
// of that order's line items.
type Review struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID  `json:"usuarioId" bson:"usuarioId"`
	RestaurantID primitive.ObjectID  `json:"restauranteId" bson:"restauranteId"`
	OrderID      primitive.ObjectID  `json:"ordenId" bson:"ordenId"`
	MenuItemID   *primitive.ObjectID `json:"menuItemId,omitempty" bson:"menuItemId,omitempty"`
	Rating       int                 `json:"calificacion" bson:"calificacion"`
	Comment      string              `json:"comentario" bson:"comentario"`
	Date         time.Time           `json:"fecha" bson:"fecha"`
}

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Order statuses
const (
	OrderStatusConfirmed = "confirmado"
	OrderStatusPreparing = "en preparación"
	OrderStatusDelivered = "entregado"
	OrderStatusCancelled = "cancelado"
)

// Collection names
const (
	CollRestaurants = "restaurantes"
	CollUsers       = "usuarios"
	CollMenuItems   = "articulos_menu"
	CollOrders      = "ordenes"
	CollReviews     = "resenas"
)
