package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/Uilsaun/GitResaHotel/internal/response"
	"github.com/Uilsaun/GitResaHotel/internal/validator"
)

func (app *application) reportServerError(r *http.Request, err error) {
	var (
		message = err.Error()
		method  = r.Method
		url     = r.URL.String()
	)

	requestAttrs := slog.Group("request", "method", method, "url", url)
	app.logger.Error(message, requestAttrs)
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	err := response.JSONWithHeaders(w, status, response.JSONObject{"error": message}, headers)
	if err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorMessage(w, r, http.StatusInternalServerError, message, nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource could not be found"
	app.errorMessage(w, r, http.StatusNotFound, message, nil)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorMessage(w, r, http.StatusMethodNotAllowed, message, nil)
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (app *application) failedValidation(w http.ResponseWriter, r *http.Request, v validator.Validator) {
	err := response.JSON(w, http.StatusUnprocessableEntity, v)
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) authenticationRequired(w http.ResponseWriter, r *http.Request) {
	app.businessErrorMessage(w, r, http.StatusUnauthorized, model.ErrInvalidCredentials.Code, "authentication required")
}

// businessError translates the typed taxonomy into an HTTP status. Anything
// that is not a *model.Error is an unexpected failure and surfaces as a
// generic 500 without leaking internals.
func (app *application) businessError(w http.ResponseWriter, r *http.Request, err error) {
	var bizErr *model.Error
	if !errors.As(err, &bizErr) {
		app.serverError(w, r, err)
		return
	}

	status := http.StatusUnprocessableEntity
	switch bizErr.Code {
	case model.CodeInvalidCredentials:
		status = http.StatusUnauthorized
	case model.CodeEmailExists:
		status = http.StatusConflict
	case model.CodeClientNotFound:
		status = http.StatusNotFound
	case model.CodeInvalidID:
		status = http.StatusBadRequest
	case model.CodeFetch:
		status = http.StatusInternalServerError
	}

	app.businessErrorMessage(w, r, status, bizErr.Code, bizErr.Message)
}

func (app *application) businessErrorMessage(w http.ResponseWriter, r *http.Request, status int, code model.Code, message string) {
	payload := response.JSONObject{"error": response.JSONObject{"code": code, "message": message}}
	if err := response.JSON(w, status, payload); err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
