package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/amaumene/mellab/internal/controllers"
	"github.com/amaumene/mellab/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Static client-facing messages
const (
	msgMissingSubject = "Please provide a title or id"
	msgInvalidMode    = "Invalid mode"
	msgNotFound       = "Subject not found"
	msgConfiguration  = "Server Configuration Error"
)

var validate = validator.New()

// Invoker is one serverless-style entry point: flat parameters in, envelope out
type Invoker interface {
	Invoke(ctx context.Context, params map[string]string) models.Response
}

// Serve adapts an Invoker to net/http. Preflight requests get the CORS headers only.
func Serve(w http.ResponseWriter, r *http.Request, inv Invoker) {
	if r.Method == http.MethodOptions {
		write(w, models.Response{StatusCode: http.StatusOK, Headers: models.DefaultHeaders()})
		return
	}

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	write(w, inv.Invoke(r.Context(), params))
}

func write(w http.ResponseWriter, resp models.Response) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		w.Write([]byte(resp.Body))
	}
}

// validationMessage maps the first failing field of q to its static message.
// fields restricts validation to the named fields; none means all.
func validationMessage(q models.Query, fields ...string) (string, bool) {
	var err error
	if len(fields) > 0 {
		err = validate.StructPartial(q, fields...)
	} else {
		err = validate.Struct(q)
	}
	if err == nil {
		return "", true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		switch ve[0].Field() {
		case "Title", "ID":
			return msgMissingSubject, false
		case "Mode":
			return msgInvalidMode, false
		}
	}
	return err.Error(), false
}

// errorResponse maps an orchestration error to its envelope
func errorResponse(err error, logger *logrus.Logger) models.Response {
	if errors.Is(err, controllers.ErrNotFound) {
		logger.WithError(err).Debug("Subject not found")
		return models.NewErrorResponse(http.StatusNotFound, msgNotFound)
	}

	logger.WithError(err).Error("Request failed")
	return models.NewErrorResponse(http.StatusInternalServerError, err.Error())
}

// recoverResponse turns a panic into a 500 envelope
func recoverResponse(resp *models.Response, logger *logrus.Logger) {
	if rec := recover(); rec != nil {
		logger.WithField("panic", rec).Error("Recovered from panic")
		*resp = models.NewErrorResponse(http.StatusInternalServerError, fmt.Sprint(rec))
	}
}
