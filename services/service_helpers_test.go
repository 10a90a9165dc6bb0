package services

import (
	"testing"

	"s2inventory/bootstrap"
	"s2inventory/models"
	"s2inventory/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func prepareBase(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenTestDB(t)
	require.NoError(t, bootstrap.LoadData())
	return db
}

func identite(username string, perms ...string) *models.UserIdentity {
	return &models.UserIdentity{Username: username, Permissions: perms}
}

func creeLocalisation(t *testing.T, db *gorm.DB, zone models.ZoneUsid, ville, quartier string) *models.Localisation {
	t.Helper()
	loc := &models.Localisation{
		ZoneUsid:    zone,
		NomVille:    ville,
		NomQuartier: quartier,
		Protection:  models.ProtectionZP,
		Sensibilite: models.SensibiliteHaute,
	}
	require.NoError(t, db.Create(loc).Error)
	return loc
}

// creeSysteme inserts a bare system in the CVC domain without going through
// the service layer.
func creeSysteme(t *testing.T, db *gorm.DB, loc *models.Localisation, nom string) *models.SystemeIndustriel {
	t.Helper()
	domaine := bootstrap.DomainesParCode["CVC"]
	systeme := &models.SystemeIndustriel{
		LocalisationID:     &loc.ID,
		Nom:                nom,
		Environnement:      models.EnvOperationnel,
		DomaineID:          domaine.ID,
		HomologationClasse: models.ClasseNC,
	}
	require.NoError(t, db.Omit("FonctionsMetiers", "Interconnexions", "MaterielsIT", "MaterielsOT", "Licences").Create(systeme).Error)
	return systeme
}

// fonctionIds returns the ids of the named functions of a domain.
func fonctionIds(t *testing.T, codeDomaine string, codes ...string) []uint {
	t.Helper()
	domaine, ok := bootstrap.DomainesParCode[codeDomaine]
	require.True(t, ok)
	parCode := make(map[string]uint)
	for _, f := range bootstrap.FonctionsParDomaine[domaine.ID] {
		parCode[f.Code] = f.ID
	}
	var ids []uint
	for _, code := range codes {
		id, ok := parCode[code]
		require.True(t, ok, "fonction %s inconnue", code)
		ids = append(ids, id)
	}
	return ids
}
