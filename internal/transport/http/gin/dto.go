package httpgin

import (
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/pricing"
)

type DomoResponse struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	Capacidad       int    `json:"capacidad"`
	PrecioSemana    int64  `json:"precio_semana"`
	PrecioFinSemana int64  `json:"precio_fin_semana"`
	Imagen          string `json:"imagen,omitempty"`
}

type DisponibilidadResponse struct {
	Ocupadas []string `json:"ocupadas"`
}

type CalcularPrecioRequest struct {
	DomoID      int64  `json:"domo_id" binding:"required"`
	FechaInicio string `json:"fecha_inicio" binding:"required"`
	FechaFin    string `json:"fecha_fin" binding:"required"`
}

type PrecioResponse struct {
	PrecioBase  int64 `json:"precio_base"`
	Descuento   int64 `json:"descuento"`
	PrecioTotal int64 `json:"precio_total"`
	Noches      int   `json:"noches"`
}

type CrearReservaRequest struct {
	DomoID          int64  `json:"domo_id" binding:"required"`
	NombreCliente   string `json:"nombre_cliente" binding:"required"`
	EmailCliente    string `json:"email_cliente"`
	TelefonoCliente string `json:"telefono_cliente"`
	FechaInicio     string `json:"fecha_inicio" binding:"required"`
	FechaFin        string `json:"fecha_fin" binding:"required"`
}

type CrearReservaResponse struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
}

type ReservaResponse struct {
	ID                int64  `json:"id"`
	DomoID            int64  `json:"domo_id"`
	DomoNombre        string `json:"domo_nombre,omitempty"`
	NombreCliente     string `json:"nombre_cliente"`
	EmailCliente      string `json:"email_cliente"`
	TelefonoCliente   string `json:"telefono_cliente"`
	FechaInicio       string `json:"fecha_inicio"`
	FechaFin          string `json:"fecha_fin"`
	CantidadNoches    int    `json:"cantidad_noches"`
	PrecioTotal       int64  `json:"precio_total"`
	DescuentoAplicado int64  `json:"descuento_aplicado"`
	Estado            string `json:"estado"`
	FechaCreacion     string `json:"fecha_creacion"`
}

type UpdateDomoRequest struct {
	PrecioSemana    *int64  `json:"precio_semana"`
	PrecioFinSemana *int64  `json:"precio_fin_semana"`
	Descripcion     *string `json:"descripcion"`
}

type FeriadoRequest struct {
	Fecha  string `json:"fecha" binding:"required"`
	Nombre string `json:"nombre" binding:"required"`
}

type FeriadoResponse struct {
	ID     int64  `json:"id"`
	Fecha  string `json:"fecha"`
	Nombre string `json:"nombre"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(pricing.DateLayout, s)
}
