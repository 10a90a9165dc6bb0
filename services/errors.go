package services

import "errors"

// Validation and authorization errors surfaced to API clients.
var (
	// ErrAccesRefuse is returned when the caller lacks write access to the
	// zone a record belongs to.
	ErrAccesRefuse = errors.New("accès refusé pour cette zone")
	// ErrLocalisationInconnue is returned when a write names a site identity
	// that does not exist. Sites are created by the importer, never by the
	// write endpoints.
	ErrLocalisationInconnue = errors.New("cette localisation n'existe pas")
	// ErrContratInconnu is returned when a system write references a contract
	// the caller cannot see.
	ErrContratInconnu = errors.New("ce contrat n'existe pas")
	// ErrNumeroMarcheExistant is returned on a duplicate contract number.
	ErrNumeroMarcheExistant = errors.New("un contrat avec ce numéro de marché existe déjà")
	// ErrDomaineInconnu is returned when a system write references an unknown
	// business domain.
	ErrDomaineInconnu = errors.New("ce domaine métier n'existe pas")
)
