package seed

import "github.com/juliogsp/restaurante-seeder/internal/models"

// ── Reference data pools ──

var streets = []string{
	"Av. Principal", "Calle Secundaria", "Paseo de la Reforma", "Camino Real",
}

var cities = []string{
	"Madrid", "Barcelona", "Valencia", "Sevilla", "Bilbao",
}

var firstNames = []string{
	"María", "Juan", "Ana", "Luis", "Carmen", "Carlos", "Lucía", "Miguel",
}

var lastNames = []string{
	"García", "Rodríguez", "Martínez", "López", "Sánchez", "Pérez",
}

var restaurantNames = []string{
	"Mamis Restaurant",
	"La Paella Dorada",
	"Casa del Sabor",
	"El Rincón de la Abuela",
	"Tapas y Más",
}

// orderComments are used for reviews that rate the order as a whole.
var orderComments = []string{
	"¡Excelente servicio y comida deliciosa!",
	"Muy buena experiencia, aunque tardó un poco.",
	"La app funcionó perfecto y la comida llegó caliente.",
	"¡La mejor paella que he probado!",
	"Repetiré sin dudarlo, súper recomendado.",
}

// itemComments are format strings taking the reviewed menu item's name.
var itemComments = []string{
	"El plato \"%s\" estaba espectacular.",
	"Pedí \"%s\" y llegó recién hecho, buenísimo.",
	"\"%s\" es mi favorito de toda la carta.",
	"La porción de \"%s\" podría ser más grande, pero el sabor es excelente.",
	"Volvería solo por \"%s\".",
}

var orderStatuses = []string{
	models.OrderStatusConfirmed,
	models.OrderStatusPreparing,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
}

var roles = []string{models.RoleAdmin, models.RoleUser}

// ratingWeights[r-1] is the sampling weight of rating r. The distribution
// favors 4-star reviews, with an expected value close to 3.9.
var ratingWeights = [5]int{5, 10, 20, 40, 25}

// weekSchedule is the fixed weekly opening-hours block every generated
// restaurant carries.
var weekSchedule = []models.ScheduleEntry{
	{Day: "Lunes", Opens: "10:00", Closes: "22:00"},
	{Day: "Martes", Opens: "10:00", Closes: "22:00"},
	{Day: "Miércoles", Opens: "10:00", Closes: "22:00"},
	{Day: "Jueves", Opens: "10:00", Closes: "22:00"},
	{Day: "Viernes", Opens: "10:00", Closes: "23:00"},
	{Day: "Sábado", Opens: "11:00", Closes: "23:00"},
	{Day: "Domingo", Opens: "12:00", Closes: "21:00"},
}
