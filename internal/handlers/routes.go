package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"plantillas-crud-api/internal/middleware"
	"plantillas-crud-api/pkg/lambda"
)

// SetupRoutes mounts the plantilla operations on a gin router for local runs
func SetupRoutes(router *gin.Engine, handler *PlantillaHandler) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "plantillas-crud-api",
			"version": "1.0.0",
		})
	})

	plantilla := router.Group("/plantilla")
	{
		plantilla.POST("", CreatePlantilla(handler))
		plantilla.GET("", ListPlantillas(handler))
		plantilla.GET("/:id", GetPlantilla(handler))
		plantilla.PUT("/:id", UpdatePlantilla(handler))
	}
}

// @Summary Create a plantilla
// @Tags plantilla
// @Accept json
// @Produce json
// @Param plantilla body models.CreatePlantillaRequest true "Plantilla data"
// @Success 201 {object} lambda.Envelope
// @Failure 403 {object} lambda.Envelope
// @Router /plantilla [post]
func CreatePlantilla(h *PlantillaHandler) gin.HandlerFunc {
	return adapt(h.HandleCreate)
}

// @Summary List plantillas
// @Tags plantilla
// @Produce json
// @Success 200 {object} lambda.Envelope
// @Failure 403 {object} lambda.Envelope
// @Router /plantilla [get]
func ListPlantillas(h *PlantillaHandler) gin.HandlerFunc {
	return adapt(h.HandleGetAll)
}

// @Summary Get a plantilla
// @Tags plantilla
// @Produce json
// @Param id path string true "Plantilla ObjectID"
// @Success 200 {object} lambda.Envelope
// @Failure 403 {object} lambda.Envelope
// @Router /plantilla/{id} [get]
func GetPlantilla(h *PlantillaHandler) gin.HandlerFunc {
	return adapt(h.HandleGet)
}

// @Summary Replace a plantilla
// @Tags plantilla
// @Accept json
// @Produce json
// @Param id path string true "Plantilla ObjectID"
// @Param plantilla body models.UpdatePlantillaRequest true "Full plantilla data"
// @Success 200 {object} lambda.Envelope
// @Failure 403 {object} lambda.Envelope
// @Router /plantilla/{id} [put]
func UpdatePlantilla(h *PlantillaHandler) gin.HandlerFunc {
	return adapt(h.HandleUpdate)
}

// adapt converts a gin request into a lambda.Request and writes the lambda.Response back
func adapt(fn lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		requestID := c.GetString(middleware.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		headers := make(map[string]string, len(c.Request.Header))
		for k := range c.Request.Header {
			headers[k] = c.GetHeader(k)
		}

		query := make(map[string]string)
		for k, v := range c.Request.URL.Query() {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}

		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		req := &lambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     headers,
			QueryParams: query,
			Body:        body,
			PathParams:  params,
			RequestID:   requestID,
		}

		resp, err := fn(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, "application/json", resp.Body)
	}
}
