package main

import (
	"errors"
	"net/http"

	"github.com/Uilsaun/GitResaHotel/internal/auth"
	"github.com/Uilsaun/GitResaHotel/internal/ctxstore"
	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/Uilsaun/GitResaHotel/internal/request"
	"github.com/Uilsaun/GitResaHotel/internal/response"
	"github.com/Uilsaun/GitResaHotel/internal/validator"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestRegister struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Nom             string `json:"nom"`
	Telephone       string `json:"telephone"`
	NombrePersonnes int    `json:"nombrePersonnes"`
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestRegister
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	v.Check(input.Email != "" && input.Password != "" && input.ConfirmPassword != "" &&
		input.Nom != "" && input.Telephone != "" && input.NombrePersonnes != 0,
		"all fields are required")
	v.Check(input.Password == input.ConfirmPassword, "passwords do not match")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	client, err := app.auth.Register(ctx, auth.RegisterData{
		Nom:             input.Nom,
		Email:           input.Email,
		Telephone:       input.Telephone,
		NombrePersonnes: input.NombrePersonnes,
		Password:        input.Password,
	})
	if err != nil {
		app.businessError(w, r, err)
		return
	}

	logger.Debug("client registered", "clientId", client.ID)

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"client": client}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input requestLogin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		app.errorMessage(w, r, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	client, err := app.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		app.businessError(w, r, err)
		return
	}

	sess, err := app.sessions.Create(client, input.Remember)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.setSessionCookie(w, sess)

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"client": client}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(_sessionCookieName); err == nil {
		app.sessions.Destroy(cookie.Value)
	}

	app.clearSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := app.sessionFromContext(r)

	client, err := app.auth.FindByID(ctx, int(sess.ClientID))
	if err != nil {
		// The account behind the session is gone; drop the session.
		if errors.Is(err, model.ErrClientNotFound) {
			app.sessions.Destroy(sess.Token)
			app.clearSessionCookie(w)
			app.authenticationRequired(w, r)
			return
		}

		app.businessError(w, r, err)
		return
	}

	reservations, err := app.reservations.ListByClient(ctx, client.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payload := response.JSONObject{
		"client":       client,
		"reservations": reservations,
	}
	if err := response.JSON(w, http.StatusOK, payload); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateProfile struct {
	Nom             *string `json:"nom"`
	Telephone       *string `json:"telephone"`
	NombrePersonnes *int    `json:"nombrePersonnes"`
}

func (app *application) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := app.sessionFromContext(r)

	var input requestUpdateProfile
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	client, err := app.auth.UpdateProfile(ctx, sess.ClientID, auth.ProfileData{
		Nom:             input.Nom,
		Telephone:       input.Telephone,
		NombrePersonnes: input.NombrePersonnes,
	})
	if err != nil {
		app.businessError(w, r, err)
		return
	}

	if err := app.sessions.Refresh(sess.Token, client); err != nil {
		app.logger.Warn("failed to refresh session cache", "error", err)
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"client": client}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestChangePassword struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (app *application) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := app.sessionFromContext(r)

	var input requestChangePassword
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	v.Check(input.OldPassword != "" && input.NewPassword != "" && input.ConfirmPassword != "",
		"all fields are required")
	v.Check(input.NewPassword == input.ConfirmPassword, "new passwords do not match")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	if err := app.auth.ChangePassword(ctx, sess.ClientID, input.OldPassword, input.NewPassword); err != nil {
		app.businessError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
