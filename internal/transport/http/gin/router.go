package httpgin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/domain"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/pricing"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
	redisrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/redis"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/admin"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/auth"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/booking"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/query"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/api/domos", handleListDomos(svcs))
	r.GET("/api/disponibilidad/:domoID", handleDisponibilidad(svcs))
	r.POST("/api/calcular-precio", handleCalcularPrecio(svcs))
	r.POST("/api/crear-reserva", handleCrearReserva(svcs, idem))

	r.POST("/admin/login", handleLogin(svcs))

	// Admin API, behind the bearer token
	adm := r.Group("/api/admin", AdminAuth(svcs.Auth))
	{
		adm.GET("/reservas", handleListReservas(svcs))
		adm.GET("/domos", handleListDomosAdmin(svcs))
		adm.PUT("/domo/:id", handleUpdateDomo(svcs))
		adm.DELETE("/reserva/:id", handleCancelReserva(svcs))
		adm.GET("/feriados", handleListFeriados(svcs))
		adm.POST("/feriados", handleAddFeriado(svcs))
		adm.DELETE("/feriado/:id", handleDeleteFeriado(svcs))
		adm.GET("/descuentos", handleGetDescuentos(svcs))
		adm.PUT("/descuentos", handleUpdateDescuentos(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List domos
// @Success  200  {array}  DomoResponse
// @Router   /api/domos [get]
func handleListDomos(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		domos, err := svcs.Query.ListDomos(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make([]DomoResponse, 0, len(domos))
		for _, d := range domos {
			out = append(out, DomoResponse{
				ID:              d.ID,
				Nombre:          d.Name,
				Descripcion:     d.Description,
				Capacidad:       d.Capacity,
				PrecioSemana:    d.WeekdayRate,
				PrecioFinSemana: d.WeekendRate,
				Imagen:          fmt.Sprintf("/static/img/domo%d.jpg", d.ID),
			})
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=60", true)
	}
}

// @Summary  Occupied dates for a domo
// @Param    domoID  path  int  true  "Domo ID"
// @Success  200  {object}  DisponibilidadResponse
// @Router   /api/disponibilidad/{domoID} [get]
func handleDisponibilidad(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		domoID, ok := parseInt64Param(c, "domoID")
		if !ok {
			return
		}
		dates, err := svcs.Query.OccupiedDates(c.Request.Context(), domoID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, DisponibilidadResponse{Ocupadas: dates}, "public, max-age=15", true)
	}
}

// @Summary  Price a candidate stay
// @Param    req body  CalcularPrecioRequest true "payload"
// @Success  200 {object} PrecioResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/calcular-precio [post]
func handleCalcularPrecio(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CalcularPrecioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		start, err := parseDate(req.FechaInicio)
		if err != nil {
			badRequest(c, "Formato de fecha inválido")
			return
		}
		end, err := parseDate(req.FechaFin)
		if err != nil {
			badRequest(c, "Formato de fecha inválido")
			return
		}

		q, err := svcs.Query.PriceQuote(c.Request.Context(), req.DomoID, start, end)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, PrecioResponse{
			PrecioBase:  q.Base,
			Descuento:   q.Discount,
			PrecioTotal: q.Total,
			Noches:      q.Nights,
		})
	}
}

// @Summary  Create reservation (idempotent)
// @Param    req body  CrearReservaRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} CrearReservaResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "dates unavailable / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /api/crear-reserva [post]
func handleCrearReserva(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrearReservaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		start, err := parseDate(req.FechaInicio)
		if err != nil {
			badRequest(c, "Formato de fecha inválido")
			return
		}
		end, err := parseDate(req.FechaFin)
		if err != nil {
			badRequest(c, "Formato de fecha inválido")
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemReserva(req.DomoID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		_, err = svcs.Booking.CreateReservation(
			c.Request.Context(),
			booking.CreateReservationInput{
				DomoID:       req.DomoID,
				CustomerName: req.NombreCliente,
				Email:        req.EmailCliente,
				Phone:        req.TelefonoCliente,
				StartDate:    start,
				EndDate:      end,
			},
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		resp := CrearReservaResponse{Success: true, Mensaje: "Reserva creada exitosamente"}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Admin login
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} ErrorResponse
// @Router   /admin/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		token, err := svcs.Auth.Login(req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Token: token})
	}
}

// @Summary  List all reservations
// @Success  200 {array} ReservaResponse
// @Router   /api/admin/reservas [get]
func handleListReservas(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservas, err := svcs.Admin.ListReservations(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make([]ReservaResponse, 0, len(reservas))
		for _, r := range reservas {
			out = append(out, toReservaResponse(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  List domos (admin, uncached)
// @Success  200 {array} DomoResponse
// @Router   /api/admin/domos [get]
func handleListDomosAdmin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		domos, err := svcs.Admin.ListDomos(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make([]DomoResponse, 0, len(domos))
		for _, d := range domos {
			out = append(out, DomoResponse{
				ID:              d.ID,
				Nombre:          d.Name,
				Descripcion:     d.Description,
				Capacidad:       d.Capacity,
				PrecioSemana:    d.WeekdayRate,
				PrecioFinSemana: d.WeekendRate,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Update domo rates/description
// @Param    id  path  int  true  "Domo ID"
// @Param    req body  UpdateDomoRequest true "payload"
// @Success  200 {object} DomoResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/domo/{id} [put]
func handleUpdateDomo(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateDomoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		d, err := svcs.Admin.UpdateDomo(c.Request.Context(), id, postgres.UpdateDomoParams{
			WeekdayRate: req.PrecioSemana,
			WeekendRate: req.PrecioFinSemana,
			Description: req.Descripcion,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, DomoResponse{
			ID:              d.ID,
			Nombre:          d.Name,
			Descripcion:     d.Description,
			Capacidad:       d.Capacity,
			PrecioSemana:    d.WeekdayRate,
			PrecioFinSemana: d.WeekendRate,
		})
	}
}

// @Summary  Cancel a reservation
// @Param    id  path  int  true  "Reservation ID"
// @Success  200 {object} MensajeResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/reserva/{id} [delete]
func handleCancelReserva(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Admin.CancelReservation(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MensajeResponse{Mensaje: "Reserva cancelada"})
	}
}

// @Summary  List holidays
// @Success  200 {array} FeriadoResponse
// @Router   /api/admin/feriados [get]
func handleListFeriados(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		feriados, err := svcs.Admin.ListHolidays(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make([]FeriadoResponse, 0, len(feriados))
		for _, f := range feriados {
			out = append(out, FeriadoResponse{
				ID:     f.ID,
				Fecha:  f.Date.Format(pricing.DateLayout),
				Nombre: f.Name,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Add a holiday
// @Param    req body  FeriadoRequest true "payload"
// @Success  201 {object} FeriadoResponse
// @Failure  409 {object} ErrorResponse
// @Router   /api/admin/feriados [post]
func handleAddFeriado(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FeriadoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		fecha, err := parseDate(req.Fecha)
		if err != nil {
			badRequest(c, "Formato de fecha inválido")
			return
		}

		f, err := svcs.Admin.AddHoliday(c.Request.Context(), fecha, req.Nombre)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, FeriadoResponse{
			ID:     f.ID,
			Fecha:  f.Date.Format(pricing.DateLayout),
			Nombre: f.Name,
		})
	}
}

// @Summary  Delete a holiday
// @Param    id  path  int  true  "Holiday ID"
// @Success  200 {object} MensajeResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/feriado/{id} [delete]
func handleDeleteFeriado(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Admin.DeleteHoliday(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MensajeResponse{Mensaje: "Feriado eliminado"})
	}
}

// @Summary  Get discount tiers
// @Success  200 {object} map[string]float64
// @Router   /api/admin/descuentos [get]
func handleGetDescuentos(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		tiers, err := svcs.Admin.GetDiscounts(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make(map[string]float64, len(tiers))
		for _, t := range tiers {
			out[strconv.Itoa(t.MinNights)] = float64(t.Bps) / 10000
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Replace discount tiers
// @Param    req body  map[string]float64 true "nights -> fraction"
// @Success  200 {object} MensajeResponse
// @Failure  400 {object} ErrorResponse
// @Router   /api/admin/descuentos [put]
func handleUpdateDescuentos(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Admin.UpdateDiscounts(c.Request.Context(), raw); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MensajeResponse{Mensaje: "Descuentos actualizados"})
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func toReservaResponse(r domain.ReservationWithDomo) ReservaResponse {
	return ReservaResponse{
		ID:                r.ID,
		DomoID:            r.DomoID,
		DomoNombre:        r.DomoName,
		NombreCliente:     r.CustomerName,
		EmailCliente:      r.Email,
		TelefonoCliente:   r.Phone,
		FechaInicio:       r.StartDate.Format(pricing.DateLayout),
		FechaFin:          r.EndDate.Format(pricing.DateLayout),
		CantidadNoches:    r.Nights,
		PrecioTotal:       r.TotalPrice,
		DescuentoAplicado: r.Discount,
		Estado:            string(r.Status),
		FechaCreacion:     r.CreatedAt.Format(time.RFC3339),
	}
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// booking service
	case errors.Is(err, booking.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "La fecha final debe ser posterior a la inicial"})
		return
	case errors.Is(err, booking.ErrMissingContact):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Debes proporcionar un teléfono"})
		return
	case errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Estas fechas no están disponibles"})
		return
	case errors.Is(err, booking.ErrDomoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Domo no encontrado"})
		return
	// query service
	case errors.Is(err, query.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "La fecha final debe ser posterior a la inicial"})
		return
	case errors.Is(err, query.ErrDomoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Domo no encontrado"})
		return
	// admin service
	case errors.Is(err, admin.ErrDomoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Domo no encontrado"})
		return
	case errors.Is(err, admin.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reserva no encontrada"})
		return
	case errors.Is(err, admin.ErrHolidayNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Feriado no encontrado"})
		return
	case errors.Is(err, admin.ErrHolidayConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "El feriado ya existe"})
		return
	case errors.Is(err, admin.ErrBadDiscounts):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Configuración de descuentos inválida"})
		return
	// auth service
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Contraseña incorrecta"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
