package importer

import (
	"testing"

	"s2inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ligneLoc builds a row filled up to the location columns.
func ligneLoc(zone, ville, quartier, zoneQuartier, protection, sensibilite string) []string {
	return []string{"", "", "", zone, ville, quartier, zoneQuartier, protection, sensibilite}
}

func TestLitZoneUsid(t *testing.T) {
	zone, err := litZoneUsid(ligneLoc("usid_rennes", "", "", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, models.ZoneRVC, zone)

	zone, err = litZoneUsid(ligneLoc("USID_BRICY", "", "", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, models.ZoneOAN, zone)

	_, err = litZoneUsid(ligneLoc("USID_PARIS", "", "", "", "", ""))
	require.Error(t, err)
	assert.Equal(t, "Colonne 4 : la zone_usid 'USID_PARIS' est inconnue", err.Error())
}

func TestLitNomVille(t *testing.T) {
	assert.Equal(t, "saint-jacques-de-la-lande",
		litNomVille(ligneLoc("", "Saint_Jacques_de_la_Lande", "", "", "", "")))
}

func TestLitProtection(t *testing.T) {
	p, err := litProtection(ligneLoc("", "", "", "", "zdhs", ""))
	require.NoError(t, err)
	assert.Equal(t, models.ProtectionZDHS, p)

	_, err = litProtection(ligneLoc("", "", "", "", "XY", ""))
	require.Error(t, err)
	assert.Equal(t, "Colonne 8 : le niveau de protection périmétrique 'XY' est inconnu", err.Error())
}

func TestLitSensibilite(t *testing.T) {
	s, err := litSensibilite(ligneLoc("", "", "", "", "", "Vitale"))
	require.NoError(t, err)
	assert.Equal(t, models.SensibiliteVitale, s)

	_, err = litSensibilite(ligneLoc("", "", "", "", "", "faible"))
	require.Error(t, err)
	assert.Equal(t, "Colonne 9 : le niveau de sensibilité 'FAIBLE' est inconnu", err.Error())
}

func ligneSys(cellules map[int]string) []string {
	ligne := make([]string, 27)
	for idx, v := range cellules {
		ligne[idx] = v
	}
	return ligne
}

func TestLitEnvironnement(t *testing.T) {
	env, err := litEnvironnement(ligneSys(map[int]string{colSysEnvironnement: "Nucleaire"}))
	require.NoError(t, err)
	assert.Equal(t, models.EnvNucleaire, env)

	_, err = litEnvironnement(ligneSys(map[int]string{colSysEnvironnement: "spatial"}))
	require.Error(t, err)
	assert.Equal(t, "Colonne 10 : l'environnement 'spatial' est inconnu", err.Error())
}

func TestLitCodeDomaine(t *testing.T) {
	assert.Equal(t, "CVC", litCodeDomaine(ligneSys(map[int]string{colSysDomaine: "cvc_chauffage ventilation climatisation"})))
	assert.Equal(t, "EE", litCodeDomaine(ligneSys(map[int]string{colSysDomaine: "EE"})))
}

func TestLitCodesFonctions(t *testing.T) {
	// le libellé porte les acronymes dans la dernière parenthèse
	ligne := ligneSys(map[int]string{colSysFonctions: "chaufferie, eau chaude (sanitaire) (CHA-ECS-GTC)"})
	assert.Equal(t, []string{"CHA", "ECS", "GTC"}, litCodesFonctions(ligne))

	ligne = ligneSys(map[int]string{colSysFonctions: "solaire (SO)"})
	assert.Equal(t, []string{"SO"}, litCodesFonctions(ligne))
}

func TestLitHomologation(t *testing.T) {
	date, err := litHomologationFin(ligneSys(map[int]string{colSysHomologFin: "31/12/2026"}))
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, 12, int(date.Month()))

	// une cellule typée date sort de la lecture brute en numéro de série Excel
	date, err = litHomologationFin(ligneSys(map[int]string{colSysHomologFin: "46387"}))
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, 12, int(date.Month()))
	assert.Equal(t, 31, date.Day())

	date, err = litHomologationFin(ligneSys(nil))
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = litHomologationFin(ligneSys(map[int]string{colSysHomologFin: "2026-12-31"}))
	require.Error(t, err)
	assert.Equal(t, "Colonne 14 : impossible de convertir la date '2026-12-31'", err.Error())

	classe, err := litHomologationClasse(ligneSys(map[int]string{colSysHomologClasse: "Simplifiée (2)"}))
	require.NoError(t, err)
	assert.Equal(t, models.ClasseC2, classe)

	classe, err = litHomologationClasse(ligneSys(map[int]string{colSysHomologClasse: "?"}))
	require.NoError(t, err)
	assert.Equal(t, models.ClasseNC, classe)

	classe, err = litHomologationClasse(ligneSys(nil))
	require.NoError(t, err)
	assert.Equal(t, models.ClasseNC, classe)

	_, err = litHomologationClasse(ligneSys(map[int]string{colSysHomologClasse: "renforcée (4)"}))
	assert.Error(t, err)
}

func TestLitFonctionOrdinateur(t *testing.T) {
	ligne := make([]string, 15)
	ligne[colOrdiFonction] = "Poste d'administration"
	fonction, err := litFonctionOrdinateur(ligne)
	require.NoError(t, err)
	assert.Equal(t, models.OrdiAdministration, fonction)

	// les extractions mélangent apostrophe droite et apostrophe typographique
	ligne[colOrdiFonction] = "poste d’administration"
	fonction, err = litFonctionOrdinateur(ligne)
	require.NoError(t, err)
	assert.Equal(t, models.OrdiAdministration, fonction)

	ligne[colOrdiFonction] = "poste de jeu"
	_, err = litFonctionOrdinateur(ligne)
	require.Error(t, err)
	assert.Equal(t, "Colonne 9 : la fonction 'poste de jeu' est inconnue", err.Error())
}

func TestLitFamilleOs(t *testing.T) {
	ligne := make([]string, 15)
	ligne[colOrdiOsFamille] = "Windows Serveur 2019"
	famille, err := litFamilleOs(ligne)
	require.NoError(t, err)
	assert.Equal(t, models.OsWinServeur2019, famille)

	ligne[colOrdiOsFamille] = "ms-dos"
	_, err = litFamilleOs(ligne)
	require.Error(t, err)
	assert.Equal(t, "Colonne 12 : la famille d'OS 'ms-dos' est inconnue", err.Error())
}

func TestLitTypeEffecteur(t *testing.T) {
	ligne := make([]string, 15)
	ligne[colEffType] = "Caméra"
	typeEff, err := litTypeEffecteur(ligne)
	require.NoError(t, err)
	assert.Equal(t, models.EffCamera, typeEff)

	ligne[colEffType] = "drone"
	_, err = litTypeEffecteur(ligne)
	require.Error(t, err)
	assert.Equal(t, "Colonne 8 : le type 'drone' est inconnu", err.Error())
}

func TestLitNombre(t *testing.T) {
	ligne := make([]string, 15)
	ligne[colOrdiNombre] = "3"
	n, err := litNombre(ligne, colOrdiNombre)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ligne[colOrdiNombre] = "trois"
	_, err = litNombre(ligne, colOrdiNombre)
	require.Error(t, err)
	assert.Equal(t, "Colonne 14 : impossible de convertir le nombre 'trois'", err.Error())
}

func TestCelluleHorsLigne(t *testing.T) {
	// les lignes du classeur sont en dents de scie, les cellules vides de fin
	// ne sont pas matérialisées
	assert.Equal(t, "", cellule([]string{"a"}, 5))
	assert.Equal(t, "a", cellule([]string{"a"}, 0))
}
