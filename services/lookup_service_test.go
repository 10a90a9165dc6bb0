package services

import (
	"context"
	"net/url"
	"strconv"
	"testing"

	"s2inventory/bootstrap"
	"s2inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVilles(t *testing.T) {
	db := prepareBase(t)
	srv := NewLookupService()
	ctx := context.Background()

	creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	creeLocalisation(t, db, models.ZoneRVC, "saint-jacques-de-la-lande", "aeroport")
	creeLocalisation(t, db, models.ZoneCBG, "cherbourg", "chantereyne")

	u := identite("lecteur", "consult_RVC", "consult_CBG")
	villes, err := srv.Villes(ctx, u, url.Values{"usid": {"RVC"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"rennes", "saint-jacques-de-la-lande"}, villes)

	// les zones hors du périmètre de consultation sont filtrées
	villes, err = srv.Villes(ctx, identite("lecteur", "consult_RVC"), url.Values{"usid": {"RVC", "CBG"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"rennes", "saint-jacques-de-la-lande"}, villes)

	// paramètre invalide ou absent : liste vide, jamais d'erreur
	villes, err = srv.Villes(ctx, u, url.Values{"usid": {"XXX"}})
	require.NoError(t, err)
	assert.Empty(t, villes)
	villes, err = srv.Villes(ctx, u, url.Values{})
	require.NoError(t, err)
	assert.Empty(t, villes)
}

func TestLookupQuartiers(t *testing.T) {
	db := prepareBase(t)
	srv := NewLookupService()
	ctx := context.Background()

	creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	creeLocalisation(t, db, models.ZoneRVC, "rennes", "beaulieu")
	creeLocalisation(t, db, models.ZoneCBG, "cherbourg", "chantereyne")

	u := identite("lecteur", "consult_RVC")
	quartiers, err := srv.Quartiers(ctx, u, url.Values{"ville": {"rennes"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"beaulieu", "maurepas"}, quartiers)

	// une ville d'une zone non consultable ne renvoie rien
	quartiers, err = srv.Quartiers(ctx, u, url.Values{"ville": {"cherbourg"}})
	require.NoError(t, err)
	assert.Empty(t, quartiers)

	quartiers, err = srv.Quartiers(ctx, u, url.Values{})
	require.NoError(t, err)
	assert.Empty(t, quartiers)
}

func TestLookupZonesQuartier(t *testing.T) {
	db := prepareBase(t)
	srv := NewLookupService()
	ctx := context.Background()

	loc := &models.Localisation{
		ZoneUsid:     models.ZoneRVC,
		NomVille:     "rennes",
		NomQuartier:  "maurepas",
		ZoneQuartier: "zone technique",
		Protection:   models.ProtectionZP,
		Sensibilite:  models.SensibiliteHaute,
	}
	require.NoError(t, db.Create(loc).Error)

	u := identite("lecteur", "consult_RVC")
	zones, err := srv.ZonesQuartier(ctx, u, url.Values{"quartier": {"maurepas"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"zone technique"}, zones)

	zones, err = srv.ZonesQuartier(ctx, u, url.Values{})
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestLookupFonctions(t *testing.T) {
	prepareBase(t)
	srv := NewLookupService()
	ctx := context.Background()

	// le référentiel des métiers n'est pas borné par zone
	u := identite("personne")
	domaine := bootstrap.DomainesParCode["CVC"]
	fonctions, err := srv.Fonctions(ctx, u, url.Values{"domaine": {strconv.FormatUint(uint64(domaine.ID), 10)}})
	require.NoError(t, err)
	require.Len(t, fonctions, len(bootstrap.FonctionsParDomaine[domaine.ID]))
	for _, f := range fonctions {
		assert.Equal(t, domaine.ID, f.DomaineID)
	}

	fonctions, err = srv.Fonctions(ctx, u, url.Values{"domaine": {"abc"}})
	require.NoError(t, err)
	assert.Empty(t, fonctions)
}
