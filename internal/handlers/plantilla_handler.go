package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"plantillas-crud-api/internal/database"
	"plantillas-crud-api/internal/models"
	"plantillas-crud-api/internal/repositories"
	"plantillas-crud-api/pkg/lambda"
)

// Response messages
const (
	MsgCreated       = "Created plantilla"
	MsgCreateFailed  = "Error registering new plantilla!"
	MsgFound         = "plantilla OK"
	MsgGetFailed     = "Error get plantilla!"
	MsgUpdated       = "Updated plantilla"
	MsgUpdateFailed  = "Error updating plantilla!"
	statusOperFailed = http.StatusForbidden
)

// PlantillaHandler serves the plantilla CRUD operations. Every call opens its own
// database session, performs one operation and closes the session before
// returning. All failures collapse into a 403 envelope without Data; the cause
// is only logged.
type PlantillaHandler struct {
	connector database.Connector
	validator *models.Validator
	formatter *lambda.Formatter
	logger    *logrus.Logger
}

// NewPlantillaHandler creates a new plantilla handler
func NewPlantillaHandler(connector database.Connector, validator *models.Validator, formatter *lambda.Formatter, logger *logrus.Logger) *PlantillaHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &PlantillaHandler{
		connector: connector,
		validator: validator,
		formatter: formatter,
		logger:    logger,
	}
}

// HandleCreate validates the body, inserts it and returns the stored record
func (h *PlantillaHandler) HandleCreate(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	log := h.requestLogger(req, "create")
	defer h.recoverFailure(log, MsgCreateFailed, &resp)

	payload, err := lambda.ParseBody(req)
	if err != nil {
		return h.fail(log, MsgCreateFailed, err), nil
	}

	plantilla, err := h.validator.ValidateCreate(payload)
	if err != nil {
		return h.fail(log, MsgCreateFailed, err), nil
	}

	session := h.connector.Connect(ctx)
	if session == nil {
		return h.fail(log, MsgCreateFailed, repositories.ErrConnection), nil
	}
	defer database.Close(ctx, session, h.logger)

	repo := session.Plantillas()

	id, err := repo.Insert(ctx, plantilla)
	if err != nil {
		return h.fail(log, MsgCreateFailed, err), nil
	}

	created, err := repo.FindByID(ctx, id)
	if err != nil {
		return h.fail(log, MsgCreateFailed, err), nil
	}

	log.WithField("plantilla_id", id).Info("Created new plantilla")
	return h.formatter.FormatResponse(created, MsgCreated, http.StatusCreated, true), nil
}

// HandleGet returns the plantilla identified by the id path parameter
func (h *PlantillaHandler) HandleGet(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	log := h.requestLogger(req, "get")
	defer h.recoverFailure(log, MsgGetFailed, &resp)

	id, err := lambda.PathID(req)
	if err != nil {
		return h.fail(log, MsgGetFailed, err), nil
	}
	log = log.WithField("plantilla_id", id)

	session := h.connector.Connect(ctx)
	if session == nil {
		return h.fail(log, MsgGetFailed, repositories.ErrConnection), nil
	}
	defer database.Close(ctx, session, h.logger)

	plantilla, err := session.Plantillas().FindByID(ctx, id)
	if err != nil {
		return h.fail(log, MsgGetFailed, err), nil
	}

	log.Debug("plantilla found")
	return h.formatter.FormatResponse(plantilla, MsgFound, http.StatusOK, true), nil
}

// HandleGetAll returns every stored plantilla. An empty collection is reported
// as a failure, like a missing record.
func (h *PlantillaHandler) HandleGetAll(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	log := h.requestLogger(req, "get_all")
	defer h.recoverFailure(log, MsgGetFailed, &resp)

	session := h.connector.Connect(ctx)
	if session == nil {
		return h.fail(log, MsgGetFailed, repositories.ErrConnection), nil
	}
	defer database.Close(ctx, session, h.logger)

	plantillas, err := session.Plantillas().FindAll(ctx)
	if err != nil {
		return h.fail(log, MsgGetFailed, err), nil
	}

	if len(plantillas) == 0 {
		return h.fail(log, MsgGetFailed, repositories.ErrNotFound), nil
	}

	log.WithField("count", len(plantillas)).Debug("plantillas found")
	return h.formatter.FormatResponse(plantillas, MsgFound, http.StatusOK, true), nil
}

// HandleUpdate replaces the plantilla identified by the id path parameter with
// the validated body. Fields left out of the body are not carried over.
func (h *PlantillaHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	log := h.requestLogger(req, "update")
	defer h.recoverFailure(log, MsgUpdateFailed, &resp)

	id, err := lambda.PathID(req)
	if err != nil {
		return h.fail(log, MsgUpdateFailed, err), nil
	}
	log = log.WithField("plantilla_id", id)

	payload, err := lambda.ParseBody(req)
	if err != nil {
		return h.fail(log, MsgUpdateFailed, err), nil
	}

	plantilla, err := h.validator.ValidateUpdate(payload)
	if err != nil {
		return h.fail(log, MsgUpdateFailed, err), nil
	}

	session := h.connector.Connect(ctx)
	if session == nil {
		return h.fail(log, MsgUpdateFailed, repositories.ErrConnection), nil
	}
	defer database.Close(ctx, session, h.logger)

	repo := session.Plantillas()

	if err := repo.Replace(ctx, id, plantilla); err != nil {
		return h.fail(log, MsgUpdateFailed, err), nil
	}

	updated, err := repo.FindByID(ctx, id)
	if err != nil {
		return h.fail(log, MsgUpdateFailed, err), nil
	}

	log.Info("Updated plantilla")
	return h.formatter.FormatResponse(updated, MsgUpdated, http.StatusOK, true), nil
}

func (h *PlantillaHandler) requestLogger(req *lambda.Request, operation string) *logrus.Entry {
	fields := logrus.Fields{"operation": operation}
	if req != nil && req.RequestID != "" {
		fields["request_id"] = req.RequestID
	}
	return h.logger.WithFields(fields)
}

func (h *PlantillaHandler) fail(log *logrus.Entry, message string, err error) *lambda.Response {
	log.WithFields(logrus.Fields{
		"error":      err.Error(),
		"error_kind": errorKind(err),
	}).Warn(message)
	return h.formatter.FormatResponse(nil, message, statusOperFailed, false)
}

func (h *PlantillaHandler) recoverFailure(log *logrus.Entry, message string, resp **lambda.Response) {
	if r := recover(); r != nil {
		*resp = h.fail(log, message, fmt.Errorf("panic: %v", r))
	}
}
