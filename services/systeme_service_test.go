package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	"s2inventory/bootstrap"
	"s2inventory/models"
	"s2inventory/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func payloadSysteme(loc *models.Localisation, nom string) *dto.SystemeModification {
	domaine := bootstrap.DomainesParCode["CVC"]
	return &dto.SystemeModification{
		Localisation: dto.LocalisationIdentite{
			ZoneUsid:    string(loc.ZoneUsid),
			NomVille:    loc.NomVille,
			NomQuartier: loc.NomQuartier,
		},
		Nom:                nom,
		Environnement:      int(models.EnvOperationnel),
		DomaineID:          domaine.ID,
		HomologationClasse: int(models.ClasseNC),
	}
}

func TestSystemeCreateEtDetails(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()
	u := identite("rssi.rennes", "consult_RVC", "modif_RVC")

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")

	payload := payloadSysteme(loc, "chaufferie nord")
	payload.FonctionsIDs = fonctionIds(t, "CVC", "CHA", "GTC")
	payload.MaterielsIT = []dto.OrdinateurModification{{
		Fonction:  int(models.OrdiSupervision),
		Marque:    "dell",
		Modele:    "optiplex",
		OsFamille: int(models.OsWin10),
		Nombre:    1,
	}}
	payload.MaterielsOT = []dto.EffecteurModification{{
		Type:   int(models.EffAutomate),
		Marque: "siemens",
		Modele: "s7-1200",
		Nombre: 2,
	}}
	payload.Licences = []dto.LicenceModification{{
		Editeur:  "siemens",
		Logiciel: "tia portal",
		DateFin:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	details, err := srv.Create(ctx, u, payload)
	require.NoError(t, err)
	assert.Equal(t, "chaufferie nord", details.Nom)
	assert.Equal(t, "rssi.rennes", details.FicheUtilisateur)
	assert.Len(t, details.FonctionsMetiers, 2)
	assert.Len(t, details.MaterielsIT, 1)
	assert.Len(t, details.MaterielsOT, 1)
	assert.Len(t, details.Licences, 1)
	// somme 2 * domaine 3 * (env 2 + sens 2) * 100 / 364
	assert.Equal(t, 6, details.Criticite)

	relu, err := srv.Details(ctx, u, details.ID)
	require.NoError(t, err)
	assert.Equal(t, details.ID, relu.ID)
}

func TestSystemeCreateRefuse(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")

	// lecture seule sur la zone
	_, err := srv.Create(ctx, identite("lecteur", "consult_RVC"), payloadSysteme(loc, "chaufferie"))
	assert.ErrorIs(t, err, ErrAccesRefuse)

	// localisation inexistante
	payload := payloadSysteme(loc, "chaufferie")
	payload.Localisation.NomVille = "nantes"
	_, err = srv.Create(ctx, identite("rssi", "modif_RVC"), payload)
	assert.ErrorIs(t, err, ErrLocalisationInconnue)

	// fonction d'un autre domaine métier
	payload = payloadSysteme(loc, "chaufferie")
	payload.FonctionsIDs = fonctionIds(t, "EE", "PEE")
	_, err = srv.Create(ctx, identite("rssi", "modif_RVC"), payload)
	assert.Error(t, err)

	// contrat inconnu
	inconnu := uint(9999)
	payload = payloadSysteme(loc, "chaufferie")
	payload.ContratMcsID = &inconnu
	_, err = srv.Create(ctx, identite("rssi", "modif_RVC"), payload)
	assert.ErrorIs(t, err, ErrContratInconnu)
}

func TestSystemeUpdateRemplaceCollections(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()
	u := identite("rssi.rennes", "consult_RVC", "modif_RVC")

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")

	payload := payloadSysteme(loc, "chaufferie nord")
	payload.FonctionsIDs = fonctionIds(t, "CVC", "CHA", "ECS")
	payload.MaterielsOT = []dto.EffecteurModification{
		{Type: int(models.EffAutomate), Marque: "siemens", Modele: "s7", Nombre: 1},
		{Type: int(models.EffSonde), Marque: "kimo", Modele: "tm200", Nombre: 4},
	}
	details, err := srv.Create(ctx, u, payload)
	require.NoError(t, err)

	payload.FonctionsIDs = fonctionIds(t, "CVC", "GTC")
	payload.MaterielsOT = []dto.EffecteurModification{
		{Type: int(models.EffCamera), Marque: "axis", Modele: "q1700", Nombre: 1},
	}
	payload.Description = "rénové"
	relu, err := srv.Update(ctx, u, details.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "rénové", relu.Description)
	require.Len(t, relu.FonctionsMetiers, 1)
	assert.Equal(t, "GTC", relu.FonctionsMetiers[0].Code)
	require.Len(t, relu.MaterielsOT, 1)
	assert.Equal(t, models.EffCamera, relu.MaterielsOT[0].Type)

	// les anciens matériels ont bien disparu de la base
	var nbEffecteurs int64
	db.Model(&models.MaterielEffecteur{}).Count(&nbEffecteurs)
	assert.EqualValues(t, 1, nbEffecteurs)
}

func TestSystemeInterconnexionsMiroir(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()
	u := identite("rssi.rennes", "consult_RVC", "modif_RVC")

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	cible := creeSysteme(t, db, loc, "gtc centrale")

	payload := payloadSysteme(loc, "chaufferie nord")
	payload.Interconnexions = []dto.InterconnexionModification{{
		SystemeToID: cible.ID,
		TypeReseau:  int(models.ReseauDRConnecte),
		TypeLiaison: int(models.LiaisonFilaire),
		Protocole:   "bacnet",
	}}
	details, err := srv.Create(ctx, u, payload)
	require.NoError(t, err)

	// les deux sens du lien existent avec les mêmes attributs
	var aller, retour models.Interconnexion
	require.NoError(t, db.Where("systeme_from_id = ? AND systeme_to_id = ?", details.ID, cible.ID).First(&aller).Error)
	require.NoError(t, db.Where("systeme_from_id = ? AND systeme_to_id = ?", cible.ID, details.ID).First(&retour).Error)
	assert.Equal(t, aller.Protocole, retour.Protocole)
	assert.Equal(t, aller.TypeReseau, retour.TypeReseau)

	// le remplacement par une liste vide efface le miroir aussi
	payload.Interconnexions = nil
	_, err = srv.Update(ctx, u, details.ID, payload)
	require.NoError(t, err)
	var nbLiens int64
	db.Model(&models.Interconnexion{}).Count(&nbLiens)
	assert.EqualValues(t, 0, nbLiens)
}

func TestSystemeInterconnexionRefusee(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()
	u := identite("rssi.rennes", "consult_RVC", "modif_RVC")

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	locAutre := creeLocalisation(t, db, models.ZoneCBG, "cherbourg", "chantereyne")
	cibleAutre := creeSysteme(t, db, locAutre, "systeme cherbourg")

	// la cible est hors des zones modifiables de l'appelant
	payload := payloadSysteme(loc, "chaufferie nord")
	payload.Interconnexions = []dto.InterconnexionModification{{SystemeToID: cibleAutre.ID}}
	_, err := srv.Create(ctx, u, payload)
	assert.Error(t, err)
}

func TestSystemeDeleteCorbeille(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()
	u := identite("rssi.rennes", "consult_RVC", "modif_RVC")

	loc := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	systeme := creeSysteme(t, db, loc, "chaufferie nord")

	require.NoError(t, srv.Delete(ctx, u, systeme.ID))

	// la fiche reste en base mais sort des requêtes
	var relu models.SystemeIndustriel
	require.NoError(t, db.First(&relu, systeme.ID).Error)
	assert.True(t, relu.FicheCorbeille)

	_, err := srv.Details(ctx, u, systeme.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// une identité en lecture seule ne peut pas supprimer
	autre := creeSysteme(t, db, loc, "poste hta")
	err = srv.Delete(ctx, identite("lecteur", "consult_RVC"), autre.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSystemeRecherche(t *testing.T) {
	db := prepareBase(t)
	srv := NewSystemeService()
	ctx := context.Background()

	locRennes := creeLocalisation(t, db, models.ZoneRVC, "rennes", "maurepas")
	locCherbourg := creeLocalisation(t, db, models.ZoneCBG, "cherbourg", "chantereyne")
	creeSysteme(t, db, locRennes, "chaufferie nord")
	creeSysteme(t, db, locRennes, "gtc centrale")
	creeSysteme(t, db, locCherbourg, "poste hta")

	// le périmètre de consultation borne toujours la recherche
	u := identite("lecteur.rennes", "consult_RVC")
	resultats, avert, err := srv.Recherche(ctx, u, url.Values{})
	require.NoError(t, err)
	assert.Empty(t, avert)
	assert.Len(t, resultats, 2)

	// filtre par nom
	resultats, _, err = srv.Recherche(ctx, u, url.Values{"s_nom": {"chauf"}})
	require.NoError(t, err)
	require.Len(t, resultats, 1)
	assert.Equal(t, "chaufferie nord", resultats[0].Nom)

	// un filtre invalide dégrade en recherche non filtrée avec avertissement
	resultats, avert, err = srv.Recherche(ctx, u, url.Values{"z_usid": {"XXX"}})
	require.NoError(t, err)
	assert.Equal(t, AvertissementRecherche, avert)
	assert.Len(t, resultats, 2)

	// aucune permission, aucune fiche
	resultats, _, err = srv.Recherche(ctx, identite("personne"), url.Values{})
	require.NoError(t, err)
	assert.Empty(t, resultats)
}
