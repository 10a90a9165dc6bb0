package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"s2inventory/models"
)

// dateLayout is the wire format of the date filters (HTML date inputs).
const dateLayout = "2006-01-02"

// RechercheSystemes carries the validated filters of a system search. Empty
// fields leave the corresponding criterion out of the query.
type RechercheSystemes struct {
	ZonesUsid []models.ZoneUsid `json:"z_usid,omitempty"`
	Villes    []string          `json:"z_ville,omitempty"`
	Quartiers []string          `json:"z_quartier,omitempty"`

	Nom               string                      `json:"s_nom,omitempty"`
	Domaines          []uint                      `json:"s_metier,omitempty"`
	Classes           []models.ClasseHomologation `json:"s_classe,omitempty"`
	HomologationAvant *time.Time                  `json:"s_fin,omitempty"`

	FonctionsOrdi    []models.FonctionOrdinateur `json:"o_fonction,omitempty"`
	FamillesOs       []models.FamilleOs          `json:"o_famille,omitempty"`
	OrdiMarqueModele string                      `json:"o_marque_modele,omitempty"`

	TypesEffecteur        []models.TypeEffecteur `json:"e_type,omitempty"`
	EffecteurMarqueModele string                 `json:"e_marque_modele,omitempty"`

	EditeurLogiciel string     `json:"l_editeur_logiciel,omitempty"`
	LicenceAvant    *time.Time `json:"l_fin,omitempty"`
}

// RechercheContrats carries the validated filters of a contract search.
// AvecInactifs widens the result to inactive contracts; by default only
// active contracts are returned.
type RechercheContrats struct {
	ZonesUsid    []models.ZoneUsid `json:"zone_usid,omitempty"`
	NumeroMarche string            `json:"numero_marche,omitempty"`
	NomSociete   string            `json:"nom_societe,omitempty"`
	FinAvant     *time.Time        `json:"date_fin,omitempty"`
	AvecInactifs bool              `json:"est_actif,omitempty"`
}

// ParseRechercheSystemes builds the system search filters from raw query
// parameters. Any invalid value fails the whole parse; the caller then falls
// back to the unfiltered permission-scoped search with a warning.
func ParseRechercheSystemes(values url.Values) (*RechercheSystemes, error) {
	var f RechercheSystemes

	for _, raw := range values["z_usid"] {
		z, err := models.ParseZoneUsid(raw)
		if err != nil {
			return nil, err
		}
		f.ZonesUsid = append(f.ZonesUsid, z)
	}
	f.Villes = values["z_ville"]
	f.Quartiers = values["z_quartier"]

	f.Nom = values.Get("s_nom")
	for _, raw := range values["s_metier"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("domaine métier invalide: %q", raw)
		}
		f.Domaines = append(f.Domaines, uint(id))
	}
	for _, raw := range values["s_classe"] {
		n, err := strconv.Atoi(raw)
		if err != nil || !validClasse(models.ClasseHomologation(n)) {
			return nil, fmt.Errorf("classe d'homologation invalide: %q", raw)
		}
		f.Classes = append(f.Classes, models.ClasseHomologation(n))
	}
	var err error
	if f.HomologationAvant, err = parseDate(values.Get("s_fin")); err != nil {
		return nil, err
	}

	for _, raw := range values["o_fonction"] {
		n, err := strconv.Atoi(raw)
		if err != nil || n < int(models.OrdiMaintenance) || n > int(models.OrdiServeurBaseDonnees) {
			return nil, fmt.Errorf("fonction d'ordinateur invalide: %q", raw)
		}
		f.FonctionsOrdi = append(f.FonctionsOrdi, models.FonctionOrdinateur(n))
	}
	for _, raw := range values["o_famille"] {
		n, err := strconv.Atoi(raw)
		if err != nil || n < int(models.OsAutre) || n > int(models.OsIndustriel) {
			return nil, fmt.Errorf("famille d'OS invalide: %q", raw)
		}
		f.FamillesOs = append(f.FamillesOs, models.FamilleOs(n))
	}
	f.OrdiMarqueModele = values.Get("o_marque_modele")

	for _, raw := range values["e_type"] {
		n, err := strconv.Atoi(raw)
		if err != nil || n < int(models.EffAutre) || n > int(models.EffVariateur) {
			return nil, fmt.Errorf("type de matériel invalide: %q", raw)
		}
		f.TypesEffecteur = append(f.TypesEffecteur, models.TypeEffecteur(n))
	}
	f.EffecteurMarqueModele = values.Get("e_marque_modele")

	f.EditeurLogiciel = values.Get("l_editeur_logiciel")
	if f.LicenceAvant, err = parseDate(values.Get("l_fin")); err != nil {
		return nil, err
	}

	return &f, nil
}

// ParseRechercheContrats builds the contract search filters from raw query
// parameters, with the same degrade-on-invalid contract as the systems parse.
func ParseRechercheContrats(values url.Values) (*RechercheContrats, error) {
	var f RechercheContrats

	for _, raw := range values["zone_usid"] {
		z, err := models.ParseZoneUsid(raw)
		if err != nil {
			return nil, err
		}
		f.ZonesUsid = append(f.ZonesUsid, z)
	}
	f.NumeroMarche = values.Get("numero_marche")
	f.NomSociete = values.Get("nom_societe")

	var err error
	if f.FinAvant, err = parseDate(values.Get("date_fin")); err != nil {
		return nil, err
	}

	if raw := values.Get("est_actif"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			// les formulaires HTML envoient "on" pour une case cochée
			if raw != "on" {
				return nil, fmt.Errorf("valeur est_actif invalide: %q", raw)
			}
			b = true
		}
		f.AvecInactifs = b
	}

	return &f, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("date invalide: %q", raw)
	}
	return &t, nil
}

func validClasse(c models.ClasseHomologation) bool {
	switch c {
	case models.ClasseC1, models.ClasseC2, models.ClasseC3, models.ClasseNC:
		return true
	}
	return false
}
