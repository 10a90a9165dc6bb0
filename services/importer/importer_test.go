package importer

import (
	"fmt"
	"testing"

	"s2inventory/bootstrap"
	"s2inventory/models"
	"s2inventory/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// construireClasseur builds a workbook with the three inventory sheets, three
// header rows each, and the given data rows.
func construireClasseur(t *testing.T, systemes, ordinateurs, effecteurs [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	contenus := map[string][][]string{
		ongletSystemes:    systemes,
		ongletOrdinateurs: ordinateurs,
		ongletEffecteurs:  effecteurs,
	}
	for _, onglet := range []string{ongletSystemes, ongletOrdinateurs, ongletEffecteurs} {
		_, err := f.NewSheet(onglet)
		require.NoError(t, err)
		for r := 1; r <= lignesEntete; r++ {
			require.NoError(t, f.SetCellValue(onglet, fmt.Sprintf("A%d", r), "entête"))
		}
		for i, ligne := range contenus[onglet] {
			l := ligne
			require.NoError(t, f.SetSheetRow(onglet, fmt.Sprintf("A%d", i+lignesEntete+1), &l))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// ligneSystemeTest fills a systems-sheet row for the Rennes zone. Unlisted
// columns stay empty.
func ligneSystemeTest(id, nom, domaine, fonctions string) []string {
	ligne := make([]string, 27)
	ligne[colSysExcelID] = id
	ligne[colSysNom] = nom
	ligne[colSysNumeroGTP] = "GTP-1"
	ligne[colLocZoneUsid] = "USID_RENNES"
	ligne[colLocNomVille] = "Rennes"
	ligne[colLocNomQuartier] = "Maurepas"
	ligne[colLocZoneQuartier] = ""
	ligne[colLocProtection] = "ZP"
	ligne[colLocSensibilite] = "HAUTE"
	ligne[colSysEnvironnement] = "operationnel"
	ligne[colSysDomaine] = domaine
	ligne[colSysFonctions] = fonctions
	ligne[colSysHomologFin] = "31/12/2026"
	ligne[colSysHomologClasse] = "standard (3)"
	ligne[colSysDescription] = "système de test"
	return ligne
}

func ligneOrdinateurTest(id string) []string {
	ligne := make([]string, 15)
	ligne[colOrdiExcelID] = id
	ligne[colOrdiFonction] = "poste de supervision"
	ligne[colOrdiMarque] = "DELL"
	ligne[colOrdiModele] = "Optiplex"
	ligne[colOrdiOsFamille] = "windows 10"
	ligne[colOrdiOsVersion] = "22H2"
	ligne[colOrdiNombre] = "2"
	return ligne
}

func ligneEffecteurTest(id, typeEff string) []string {
	ligne := make([]string, 15)
	ligne[colEffExcelID] = id
	ligne[colEffType] = typeEff
	ligne[colEffMarque] = "Siemens"
	ligne[colEffModele] = "S7-1200"
	ligne[colEffFirmware] = "V4.5"
	ligne[colEffNombre] = "1"
	return ligne
}

func prepareBase(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenTestDB(t)
	require.NoError(t, bootstrap.LoadData())
	return db
}

func dernierMessage(res Result) Message {
	return res.Messages[len(res.Messages)-1]
}

func TestImporteComplet(t *testing.T) {
	db := prepareBase(t)

	contenu := construireClasseur(t,
		[][]string{
			ligneSystemeTest("s1", "Chaufferie Nord", "CVC_chauffage ventilation", "chaufferie (CHA-GTC)"),
			ligneSystemeTest("s2", "poste hta", "EE_energie electrique", "distribution (DEE)"),
		},
		[][]string{ligneOrdinateurTest("s1")},
		[][]string{ligneEffecteurTest("s1", "automate")},
	)

	res := NewImporter("testeur").Importe(models.ZoneRVC, contenu, false)
	assert.Equal(t, StatusOK, res.Status)

	var nbSystemes, nbLocalisations, nbOrdinateurs, nbEffecteurs int64
	db.Model(&models.SystemeIndustriel{}).Count(&nbSystemes)
	db.Model(&models.Localisation{}).Count(&nbLocalisations)
	db.Model(&models.MaterielOrdinateur{}).Count(&nbOrdinateurs)
	db.Model(&models.MaterielEffecteur{}).Count(&nbEffecteurs)
	assert.EqualValues(t, 2, nbSystemes)
	assert.EqualValues(t, 1, nbLocalisations)
	assert.EqualValues(t, 1, nbOrdinateurs)
	assert.EqualValues(t, 1, nbEffecteurs)

	var systeme models.SystemeIndustriel
	require.NoError(t, db.Preload("FonctionsMetiers").Preload("Localisation").
		Where("nom = ?", "chaufferie nord").First(&systeme).Error)
	assert.Equal(t, models.EnvOperationnel, systeme.Environnement)
	assert.Equal(t, models.ClasseC3, systeme.HomologationClasse)
	assert.Equal(t, "testeur", systeme.FicheUtilisateur)
	assert.Len(t, systeme.FonctionsMetiers, 2)
	require.NotNil(t, systeme.Localisation)
	assert.Equal(t, "rennes", systeme.Localisation.NomVille)
	assert.Equal(t, models.SensibiliteHaute, systeme.Localisation.Sensibilite)

	var ordinateur models.MaterielOrdinateur
	require.NoError(t, db.First(&ordinateur).Error)
	assert.Equal(t, "dell", ordinateur.Marque)
	assert.Equal(t, systeme.ID, ordinateur.SystemeID)
	assert.Equal(t, 2, ordinateur.Nombre)
}

func TestImporteIdempotent(t *testing.T) {
	db := prepareBase(t)

	contenu := construireClasseur(t,
		[][]string{ligneSystemeTest("s1", "chaufferie nord", "CVC_chauffage", "chaufferie (CHA)")},
		nil, nil,
	)

	imp := NewImporter("testeur")
	res := imp.Importe(models.ZoneRVC, contenu, false)
	require.Equal(t, StatusOK, res.Status)
	res = imp.Importe(models.ZoneRVC, contenu, false)
	require.Equal(t, StatusOK, res.Status)

	// la ré-importation rafraîchit le système existant au lieu de le dupliquer
	var nbSystemes, nbLocalisations int64
	db.Model(&models.SystemeIndustriel{}).Count(&nbSystemes)
	db.Model(&models.Localisation{}).Count(&nbLocalisations)
	assert.EqualValues(t, 1, nbSystemes)
	assert.EqualValues(t, 1, nbLocalisations)
}

func TestImporteErreurSystemeAbandonne(t *testing.T) {
	db := prepareBase(t)

	contenu := construireClasseur(t,
		[][]string{
			ligneSystemeTest("s1", "chaufferie nord", "CVC_chauffage", "chaufferie (CHA)"),
			ligneSystemeTest("s2", "poste hta", "XYZ_domaine inconnu", "distribution (DEE)"),
		},
		[][]string{ligneOrdinateurTest("s1")},
		nil,
	)

	res := NewImporter("testeur").Importe(models.ZoneRVC, contenu, false)
	assert.Equal(t, StatusMajor, res.Status)
	assert.Equal(t, "Il y a eu des erreurs dans l'import des S2I, fin du programme", dernierMessage(res).Texte)

	// les onglets de matériels ne sont pas traités après un échec des S2I
	var nbOrdinateurs int64
	db.Model(&models.MaterielOrdinateur{}).Count(&nbOrdinateurs)
	assert.EqualValues(t, 0, nbOrdinateurs)
}

func TestImporteFonctionAutreDomaine(t *testing.T) {
	db := prepareBase(t)

	// DEE appartient au domaine EE, pas au domaine CVC inscrit sur la ligne
	contenu := construireClasseur(t,
		[][]string{ligneSystemeTest("s1", "chaufferie nord", "CVC_chauffage", "distribution (DEE)")},
		nil, nil,
	)

	res := NewImporter("testeur").Importe(models.ZoneRVC, contenu, false)
	assert.Equal(t, StatusMajor, res.Status)

	trouve := false
	for _, m := range res.Messages {
		if m.Type == MessageError && m.Texte == "import S2I - erreur pour la ligne n°4 : Colonne 12 : la fonction de domaine métier 'DEE' est inconnue ou ne correspond pas au domaine métier inscrit" {
			trouve = true
		}
	}
	assert.True(t, trouve, "message d'erreur attendu absent: %v", res.Messages)

	var systeme models.SystemeIndustriel
	require.NoError(t, db.Preload("FonctionsMetiers").First(&systeme).Error)
	assert.Empty(t, systeme.FonctionsMetiers)
}

func TestImporteErreurMaterielDegrade(t *testing.T) {
	db := prepareBase(t)

	contenu := construireClasseur(t,
		[][]string{ligneSystemeTest("s1", "chaufferie nord", "CVC_chauffage", "chaufferie (CHA)")},
		nil,
		[][]string{
			ligneEffecteurTest("s1", "automate"),
			ligneEffecteurTest("s1", "drone"),
			ligneEffecteurTest("inconnu", "automate"),
		},
	)

	res := NewImporter("testeur").Importe(models.ZoneRVC, contenu, false)
	assert.Equal(t, StatusMinor, res.Status)

	// la ligne valide est importée malgré les erreurs des autres
	var nbEffecteurs int64
	db.Model(&models.MaterielEffecteur{}).Count(&nbEffecteurs)
	assert.EqualValues(t, 1, nbEffecteurs)

	erreurs := 0
	for _, m := range res.Messages {
		if m.Type == MessageError {
			erreurs++
		}
	}
	assert.Equal(t, 2, erreurs)
}

func TestImporteFichierIllisible(t *testing.T) {
	prepareBase(t)

	res := NewImporter("testeur").Importe(models.ZoneRVC, []byte("pas un classeur"), false)
	assert.Equal(t, StatusFatal, res.Status)
	require.NotEmpty(t, res.Messages)
	assert.Equal(t, MessageError, res.Messages[0].Type)
	assert.Contains(t, res.Messages[0].Texte, "erreur dans la lecture du fichier excel")
}

func TestImporteBase64Invalide(t *testing.T) {
	prepareBase(t)

	res := NewImporter("testeur").ImporteBase64(models.ZoneRVC, "%%%pas du base64%%%", false)
	assert.Equal(t, StatusFatal, res.Status)
}

func TestImporteNettoie(t *testing.T) {
	db := prepareBase(t)

	// données préexistantes dans deux zones
	ancienne := construireClasseur(t,
		[][]string{ligneSystemeTest("s1", "ancien systeme", "CVC_chauffage", "chaufferie (CHA)")},
		[][]string{ligneOrdinateurTest("s1")},
		nil,
	)
	require.Equal(t, StatusOK, NewImporter("testeur").Importe(models.ZoneRVC, ancienne, false).Status)

	autreZone := ligneSystemeTest("a1", "systeme cherbourg", "SO_surete", "solaire (SO)")
	autreZone[colLocZoneUsid] = "USID_CHERBOURG"
	autreZone[colLocNomVille] = "Cherbourg"
	autre := construireClasseur(t, [][]string{autreZone}, nil, nil)
	require.Equal(t, StatusOK, NewImporter("testeur").Importe(models.ZoneCBG, autre, false).Status)

	nouvelle := construireClasseur(t,
		[][]string{ligneSystemeTest("s1", "nouveau systeme", "CVC_chauffage", "chaufferie (CHA)")},
		nil, nil,
	)
	res := NewImporter("testeur").Importe(models.ZoneRVC, nouvelle, true)
	require.Equal(t, StatusOK, res.Status)
	require.NotEmpty(t, res.Messages)
	assert.Equal(t, MessageSuccess, res.Messages[0].Type)
	assert.Equal(t, "zone RVC nettoyée de la base de donnée", res.Messages[0].Texte)

	var noms []string
	require.NoError(t, db.Model(&models.SystemeIndustriel{}).Order("nom").Pluck("nom", &noms).Error)
	assert.Equal(t, []string{"nouveau systeme", "systeme cherbourg"}, noms)

	// le nettoyage emporte les matériels de la zone
	var nbOrdinateurs int64
	db.Model(&models.MaterielOrdinateur{}).Count(&nbOrdinateurs)
	assert.EqualValues(t, 0, nbOrdinateurs)
}
