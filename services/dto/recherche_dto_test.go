package dto

import (
	"net/url"
	"testing"
	"time"

	"s2inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRechercheSystemes(t *testing.T) {
	values := url.Values{
		"z_usid":          {"RVC", "CBG"},
		"z_ville":         {"rennes"},
		"s_nom":           {"chaufferie"},
		"s_metier":        {"3"},
		"s_classe":        {"1", "99"},
		"s_fin":           {"2026-12-31"},
		"o_fonction":      {"1"},
		"o_famille":       {"5", "18"},
		"o_marque_modele": {"siemens"},
		"e_type":          {"2"},
		"l_fin":           {"2025-06-30"},
	}

	f, err := ParseRechercheSystemes(values)
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneUsid{models.ZoneRVC, models.ZoneCBG}, f.ZonesUsid)
	assert.Equal(t, []string{"rennes"}, f.Villes)
	assert.Equal(t, "chaufferie", f.Nom)
	assert.Equal(t, []uint{3}, f.Domaines)
	assert.Equal(t, []models.ClasseHomologation{models.ClasseC1, models.ClasseNC}, f.Classes)
	require.NotNil(t, f.HomologationAvant)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *f.HomologationAvant)
	assert.Equal(t, []models.FonctionOrdinateur{models.OrdiSupervision}, f.FonctionsOrdi)
	assert.Equal(t, []models.FamilleOs{models.OsWin10, models.OsLinuxServeur}, f.FamillesOs)
	assert.Equal(t, "siemens", f.OrdiMarqueModele)
	assert.Equal(t, []models.TypeEffecteur{models.TypeEffecteur(2)}, f.TypesEffecteur)
	require.NotNil(t, f.LicenceAvant)
}

func TestParseRechercheSystemesVide(t *testing.T) {
	f, err := ParseRechercheSystemes(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, f.ZonesUsid)
	assert.Empty(t, f.Nom)
	assert.Nil(t, f.HomologationAvant)
}

func TestParseRechercheSystemesInvalide(t *testing.T) {
	cas := map[string]url.Values{
		"zone inconnue":     {"z_usid": {"XXX"}},
		"domaine non entier": {"s_metier": {"abc"}},
		"classe hors plage":  {"s_classe": {"7"}},
		"date malformee":     {"s_fin": {"31/12/2026"}},
		"fonction hors plage": {"o_fonction": {"12"}},
		"famille negative":   {"o_famille": {"-1"}},
		"type hors plage":    {"e_type": {"42"}},
	}
	for nom, values := range cas {
		t.Run(nom, func(t *testing.T) {
			_, err := ParseRechercheSystemes(values)
			assert.Error(t, err)
		})
	}
}

func TestParseRechercheContrats(t *testing.T) {
	values := url.Values{
		"zone_usid":     {"TRS"},
		"numero_marche": {"2024-017"},
		"nom_societe":   {"engie"},
		"date_fin":      {"2027-01-01"},
		"est_actif":     {"true"},
	}
	f, err := ParseRechercheContrats(values)
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneUsid{models.ZoneTRS}, f.ZonesUsid)
	assert.Equal(t, "2024-017", f.NumeroMarche)
	assert.Equal(t, "engie", f.NomSociete)
	require.NotNil(t, f.FinAvant)
	assert.True(t, f.AvecInactifs)
}

func TestParseRechercheContratsCaseCochee(t *testing.T) {
	// les formulaires HTML envoient "on" pour une case cochée
	f, err := ParseRechercheContrats(url.Values{"est_actif": {"on"}})
	require.NoError(t, err)
	assert.True(t, f.AvecInactifs)
}

func TestParseRechercheContratsInvalide(t *testing.T) {
	_, err := ParseRechercheContrats(url.Values{"est_actif": {"peut-etre"}})
	assert.Error(t, err)

	_, err = ParseRechercheContrats(url.Values{"zone_usid": {"PAR"}})
	assert.Error(t, err)
}
