package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"s2inventory/models"

	"github.com/xuri/excelize/v2"
)

// Sheet names and layout of the inventory workbook. Row numbers start at 1;
// the first three rows of every sheet are headers.
const (
	ongletSystemes    = "S2I"
	ongletOrdinateurs = "PC - SERVEUR"
	ongletEffecteurs  = "EQUIPEMENTS DIVERS"

	lignesEntete = 3
)

// Column indexes (0-based) of the three sheets. Error messages report them
// 1-based, matching what the operator sees in the spreadsheet.
const (
	colLocZoneUsid     = 3
	colLocNomVille     = 4
	colLocNomQuartier  = 5
	colLocZoneQuartier = 6
	colLocProtection   = 7
	colLocSensibilite  = 8

	colSysExcelID       = 0
	colSysNom           = 1
	colSysNumeroGTP     = 2
	colSysEnvironnement = 9
	colSysDomaine       = 10
	colSysFonctions     = 11
	colSysHomologFin    = 13
	colSysHomologClasse = 14
	colSysDescription   = 26

	colOrdiExcelID     = 0
	colOrdiFonction    = 8
	colOrdiMarque      = 9
	colOrdiModele      = 10
	colOrdiOsFamille   = 11
	colOrdiOsVersion   = 12
	colOrdiNombre      = 13
	colOrdiDescription = 14

	colEffExcelID     = 0
	colEffType        = 7
	colEffMarque      = 8
	colEffModele      = 9
	colEffFirmware    = 10
	colEffCortec      = 11
	colEffNombre      = 13
	colEffDescription = 14
)

// dateExcel is the rendering of date cells in the workbook.
const dateExcel = "02/01/2006"

// cellule reads a cell, returning the empty string past the end of the row.
// Spreadsheet rows are ragged: trailing empty cells are not materialized.
func cellule(ligne []string, idx int) string {
	if idx >= len(ligne) {
		return ""
	}
	return ligne[idx]
}

var zonesExcel = map[string]models.ZoneUsid{
	"USID_ANGERS":    models.ZoneAMS,
	"USID_AVORD":     models.ZoneBGA,
	"USID_BRICY":     models.ZoneOAN,
	"USID_CHERBOURG": models.ZoneCBG,
	"USID_EVREUX":    models.ZoneEVX,
	"USID_RENNES":    models.ZoneRVC,
	"USID_TOURS":     models.ZoneTRS,
}

func litZoneUsid(ligne []string) (models.ZoneUsid, error) {
	brut := strings.ToUpper(cellule(ligne, colLocZoneUsid))
	zone, ok := zonesExcel[brut]
	if !ok {
		return "", fmt.Errorf("Colonne %d : la zone_usid '%s' est inconnue", colLocZoneUsid+1, brut)
	}
	return zone, nil
}

func litNomVille(ligne []string) string {
	return strings.ReplaceAll(strings.ToLower(cellule(ligne, colLocNomVille)), "_", "-")
}

func litNomQuartier(ligne []string) string {
	return strings.ToLower(cellule(ligne, colLocNomQuartier))
}

func litZoneQuartier(ligne []string) string {
	return strings.ToLower(cellule(ligne, colLocZoneQuartier))
}

var protectionsExcel = map[string]models.Protection{
	"MC":   models.ProtectionMC,
	"TM":   models.ProtectionTM,
	"ZP":   models.ProtectionZP,
	"ZDHS": models.ProtectionZDHS,
	"ZR":   models.ProtectionZR,
	"ZNAR": models.ProtectionZNAR,
	"ZV":   models.ProtectionZV,
}

func litProtection(ligne []string) (models.Protection, error) {
	brut := strings.ToUpper(cellule(ligne, colLocProtection))
	protection, ok := protectionsExcel[brut]
	if !ok {
		return "", fmt.Errorf("Colonne %d : le niveau de protection périmétrique '%s' est inconnu", colLocProtection+1, brut)
	}
	return protection, nil
}

var sensibilitesExcel = map[string]models.Sensibilite{
	"VITALE":  models.SensibiliteVitale,
	"HAUTE":   models.SensibiliteHaute,
	"MOINDRE": models.SensibiliteMoindre,
}

func litSensibilite(ligne []string) (models.Sensibilite, error) {
	brut := strings.ToUpper(cellule(ligne, colLocSensibilite))
	sensibilite, ok := sensibilitesExcel[brut]
	if !ok {
		return "", fmt.Errorf("Colonne %d : le niveau de sensibilité '%s' est inconnu", colLocSensibilite+1, brut)
	}
	return sensibilite, nil
}

// litIDExcel reads the cross-sheet row identifier linking equipment rows to
// their system. Empty means the row itself is empty.
func litIDExcel(ligne []string, idx int) string {
	return strings.ToLower(cellule(ligne, idx))
}

func litNomSysteme(ligne []string) string {
	return strings.ToLower(cellule(ligne, colSysNom))
}

func litEnvironnement(ligne []string) (models.Environnement, error) {
	brut := strings.ToLower(cellule(ligne, colSysEnvironnement))
	switch brut {
	case "autre":
		return models.EnvAutre, nil
	case "nucleaire":
		return models.EnvNucleaire, nil
	case "cyber":
		return models.EnvCyber, nil
	case "operationnel":
		return models.EnvOperationnel, nil
	}
	return 0, fmt.Errorf("Colonne %d : l'environnement '%s' est inconnu", colSysEnvironnement+1, brut)
}

// litCodeDomaine extracts the business domain acronym, the text before the
// first underscore of the cell.
func litCodeDomaine(ligne []string) string {
	brut := cellule(ligne, colSysDomaine)
	return strings.ToUpper(strings.SplitN(brut, "_", 2)[0])
}

// litCodesFonctions extracts the business function acronyms: the text inside
// the last parenthesis group of the cell, split on dashes.
func litCodesFonctions(ligne []string) []string {
	brut := cellule(ligne, colSysFonctions)
	if idx := strings.LastIndex(brut, "("); idx >= 0 {
		brut = brut[idx+1:]
	}
	if runes := []rune(brut); len(runes) > 0 {
		brut = string(runes[:len(runes)-1])
	}
	return strings.Split(brut, "-")
}

// litHomologationFin reads the accreditation expiry. A date-typed cell comes
// out of the raw read as an Excel serial number, a text cell as dd/mm/yyyy.
func litHomologationFin(ligne []string) (*time.Time, error) {
	brut := cellule(ligne, colSysHomologFin)
	if brut == "" {
		return nil, nil
	}
	if serie, err := strconv.ParseFloat(brut, 64); err == nil {
		date, err := excelize.ExcelDateToTime(serie, false)
		if err != nil {
			return nil, fmt.Errorf("Colonne %d : impossible de convertir la date '%s'", colSysHomologFin+1, brut)
		}
		return &date, nil
	}
	date, err := time.Parse(dateExcel, brut)
	if err != nil {
		return nil, fmt.Errorf("Colonne %d : impossible de convertir la date '%s'", colSysHomologFin+1, brut)
	}
	return &date, nil
}

func litHomologationClasse(ligne []string) (models.ClasseHomologation, error) {
	brut := strings.ToLower(cellule(ligne, colSysHomologClasse))
	switch brut {
	case "", "?":
		return models.ClasseNC, nil
	case "sommaire (1)":
		return models.ClasseC1, nil
	case "simplifiée (2)":
		return models.ClasseC2, nil
	case "standard (3)":
		return models.ClasseC3, nil
	}
	return 0, fmt.Errorf("Colonne %d : la classe d'homologation '%s' est inconnue", colSysHomologClasse+1, brut)
}

var fonctionsOrdinateurExcel = map[string]models.FonctionOrdinateur{
	"poste de maintenance":                       models.OrdiMaintenance,
	"poste de supervision":                       models.OrdiSupervision,
	"poste d'administration":                     models.OrdiAdministration,
	"poste d’administration":                models.OrdiAdministration,
	"poste de supervision et d'administration":   models.OrdiSupervisionEtAdmin,
	"poste de supervision et d’administration": models.OrdiSupervisionEtAdmin,
	"serveur de temps":                           models.OrdiServeurTemps,
	"serveur de fichier":                         models.OrdiServeurFichier,
	"serveur de base de données":                 models.OrdiServeurBaseDonnees,
	"serveur d'annuaire":                         models.OrdiServeurAnnuaire,
	"serveur d’annuaire":                    models.OrdiServeurAnnuaire,
}

func litFonctionOrdinateur(ligne []string) (models.FonctionOrdinateur, error) {
	brut := strings.ToLower(cellule(ligne, colOrdiFonction))
	fonction, ok := fonctionsOrdinateurExcel[brut]
	if !ok {
		return 0, fmt.Errorf("Colonne %d : la fonction '%s' est inconnue", colOrdiFonction+1, brut)
	}
	return fonction, nil
}

var famillesOsExcel = map[string]models.FamilleOs{
	"autre":                   models.OsAutre,
	"windows xp":              models.OsWinXP,
	"windows vista":           models.OsWinVista,
	"windows 7":               models.OsWin7,
	"windows 8":               models.OsWin8,
	"windows 10":              models.OsWin10,
	"windows 11":              models.OsWin11,
	"windows serveur nt":      models.OsWinServeurNT,
	"windows serveur 2000":    models.OsWinServeur2000,
	"windows serveur 2003":    models.OsWinServeur2003,
	"windows serveur 2008":    models.OsWinServeur2008,
	"windows serveur 2008 r2": models.OsWinServeur2008R,
	"windows serveur 2012":    models.OsWinServeur2012,
	"windows serveur 2012 r2": models.OsWinServeur2012R,
	"windows serveur 2016":    models.OsWinServeur2016,
	"windows serveur 2019":    models.OsWinServeur2019,
	"windows serveur 2022":    models.OsWinServeur2022,
	"linux (mode bureau)":     models.OsLinuxDesktop,
	"linux (mode serveur)":    models.OsLinuxServeur,
	"android":                 models.OsAndroid,
	"propriétaire industriel": models.OsIndustriel,
}

func litFamilleOs(ligne []string) (models.FamilleOs, error) {
	brut := strings.ToLower(cellule(ligne, colOrdiOsFamille))
	famille, ok := famillesOsExcel[brut]
	if !ok {
		return 0, fmt.Errorf("Colonne %d : la famille d'OS '%s' est inconnue", colOrdiOsFamille+1, brut)
	}
	return famille, nil
}

var typesEffecteurExcel = map[string]models.TypeEffecteur{
	"autre matériel":        models.EffAutre,
	"capteur intelligent":   models.EffCapteur,
	"actionneur intelligent": models.EffActionneur,
	"routeur":               models.EffRouteur,
	"switch":                models.EffSwitch,
	"automate":              models.EffAutomate,
	"antenne":               models.EffAntenne,
	"caméra":                models.EffCamera,
	"centrale de mesure":    models.EffMesure,
	"imprimante":            models.EffImprimante,
	"onduleur":              models.EffOnduleur,
	"sonde":                 models.EffSonde,
	"télécommande":          models.EffTelecommande,
	"variateur":             models.EffVariateur,
	"enregistreur":          models.EffEnregistreur,
	"horloge":               models.EffHorloge,
	"hub":                   models.EffHub,
}

func litTypeEffecteur(ligne []string) (models.TypeEffecteur, error) {
	brut := strings.ToLower(cellule(ligne, colEffType))
	typeEffecteur, ok := typesEffecteurExcel[brut]
	if !ok {
		return 0, fmt.Errorf("Colonne %d : le type '%s' est inconnu", colEffType+1, brut)
	}
	return typeEffecteur, nil
}

func litNombre(ligne []string, idx int) (int, error) {
	brut := cellule(ligne, idx)
	nombre, err := strconv.Atoi(brut)
	if err != nil {
		return 0, fmt.Errorf("Colonne %d : impossible de convertir le nombre '%s'", idx+1, brut)
	}
	return nombre, nil
}
