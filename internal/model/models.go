package model

import "time"

type ID = uint

// Client is a customer account. PasswordHash stays inside the database and
// auth layers; JSON marshaling always omits it.
type Client struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Nom             string `json:"nom" db:"nom"`
	Email           string `json:"email" db:"email"`
	Telephone       string `json:"telephone" db:"telephone"`
	NombrePersonnes int    `json:"nombrePersonnes" db:"nombre_personnes"`
	PasswordHash    string `json:"-" db:"password"`
}

type Chambre struct {
	ID       ID  `json:"id" db:"id"`
	Numero   int `json:"numero" db:"numero"`
	Capacite int `json:"capacite" db:"capacite"`
}

// Reservation rows are consumed read-only here: the availability queries and
// the profile listing. The chambre fields are filled by the join in
// ReservationDAO.ListByClient and stay nil elsewhere.
type Reservation struct {
	ID          ID        `json:"id" db:"id"`
	ChambreID   ID        `json:"chambreId" db:"chambre_id"`
	ClientID    ID        `json:"clientId" db:"client_id"`
	DateArrivee time.Time `json:"dateArrivee" db:"date_arrivee"`
	DateDepart  time.Time `json:"dateDepart" db:"date_depart"`

	ChambreNumero   *int `json:"chambreNumero,omitempty" db:"chambre_numero"`
	ChambreCapacite *int `json:"chambreCapacite,omitempty" db:"chambre_capacite"`
}
