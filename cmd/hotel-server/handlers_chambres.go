package main

import (
	"errors"
	"net/http"

	"github.com/Uilsaun/GitResaHotel/internal/response"
)

// handleChambresDisponibles answers GET
// /api/v1/chambres/disponibles?date_arrivee&date_depart&nb_personnes.
// Dates come as 2006-01-02, both or neither; nb_personnes is optional.
// Without dates the query degenerates to every chambre, capacity-filtered.
func (app *application) handleChambresDisponibles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	arrivee, hasArrivee, err := dateQueryParam(r, "date_arrivee")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	depart, hasDepart, err := dateQueryParam(r, "date_depart")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if hasArrivee != hasDepart {
		app.badRequest(w, r, errors.New("date_arrivee and date_depart must be supplied together"))
		return
	}

	minCapacite := optionalIntQueryParam(r, "nb_personnes")

	var (
		chambres any
		queryErr error
	)
	if hasArrivee {
		chambres, queryErr = app.booking.FindAvailable(ctx, arrivee, depart, minCapacite)
	} else {
		chambres, queryErr = app.booking.ListChambres(ctx, minCapacite)
	}
	if queryErr != nil {
		app.businessError(w, r, queryErr)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"chambres": chambres}); err != nil {
		app.serverError(w, r, err)
	}
}
