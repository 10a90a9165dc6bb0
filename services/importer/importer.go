package importer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/repository"

	"gorm.io/gorm"
)

// Importer loads an inventory workbook into the database for one USID zone.
// Systems are matched on their identity tuple and refreshed when already
// known; equipment rows are always created. A failed system row cancels the
// equipment import, a failed equipment row only degrades the result.
type Importer struct {
	base          repository.BaseRepository
	localisations repository.LocalisationRepository
	systemes      repository.SystemeRepository
	metiers       repository.MetierRepository
	materiels     repository.MaterielRepository

	utilisateur string
}

// NewImporter creates an importer recording utilisateur as the author of the
// imported records.
func NewImporter(utilisateur string) *Importer {
	return &Importer{
		base:          repository.NewBaseRepository(),
		localisations: repository.NewLocalisationRepository(),
		systemes:      repository.NewSystemeRepository(),
		metiers:       repository.NewMetierRepository(),
		materiels:     repository.NewMaterielRepository(),
		utilisateur:   utilisateur,
	}
}

// ImporteBase64 decodes a base64 workbook and runs the import.
func (imp *Importer) ImporteBase64(zone models.ZoneUsid, encode string, nettoie bool) Result {
	contenu, err := base64.StdEncoding.DecodeString(encode)
	if err != nil {
		logger.Errorf("Erreur dans le décodage du fichier excel : %v", err)
		var res Result
		res.erreur("erreur dans la lecture du fichier excel : %v", err)
		res.Status = StatusFatal
		return res
	}
	return imp.Importe(zone, contenu, nettoie)
}

// Importe runs the import of a raw workbook for the zone, optionally cleaning
// the zone's records first.
func (imp *Importer) Importe(zone models.ZoneUsid, contenu []byte, nettoie bool) Result {
	var res Result

	cl, err := ouvreClasseur(contenu)
	if err != nil {
		logger.Errorf("Erreur dans la lecture du fichier excel : %v", err)
		res.erreur("erreur dans la lecture du fichier excel : %v", err)
		res.Status = StatusFatal
		return res
	}
	defer cl.Close()

	if nettoie {
		if err := imp.nettoyage(zone); err != nil {
			logger.Errorf("Erreur dans le nettoyage de la base de donnée : %v", err)
			res.erreur("erreur dans le nettoyage de la base de donnée : %v", err)
			res.Status = StatusFatal
			return res
		}
		res.success("zone %s nettoyée de la base de donnée", zone)
	}

	// l'onglet des systèmes industriels
	lignesSystemes, err := cl.Lignes(ongletSystemes)
	if err != nil {
		res.erreur("erreur dans la lecture du fichier excel : %v", err)
		res.Status = StatusFatal
		return res
	}
	memoire := make(map[string]uint)
	erreurSysteme := false
	for i, ligne := range lignesSystemes {
		numero := i + 1
		if numero <= lignesEntete {
			continue
		}
		if err := imp.traiteLigneSysteme(ligne, memoire, &res); err != nil {
			logger.Warnf("Import S2I - Erreur pour la ligne n° %d", numero)
			res.erreur("import S2I - erreur pour la ligne n°%d : %v", numero, err)
			erreurSysteme = true
		}
	}
	if erreurSysteme {
		logger.Warnf("Il y a eu des erreurs dans l'import des S2I, fin du programme")
		res.erreur("Il y a eu des erreurs dans l'import des S2I, fin du programme")
		res.Status = StatusMajor
		return res
	}
	res.success("importation réussie des S2I dans la base de donnée")

	// l'onglet des ordinateurs et serveurs
	erreurMineure := false
	lignesOrdinateurs, err := cl.Lignes(ongletOrdinateurs)
	if err != nil {
		res.erreur("erreur dans la lecture du fichier excel : %v", err)
		res.Status = StatusFatal
		return res
	}
	for i, ligne := range lignesOrdinateurs {
		numero := i + 1
		if numero <= lignesEntete {
			continue
		}
		if err := imp.traiteLigneOrdinateur(ligne, memoire); err != nil {
			logger.Warnf("Import ordinateur/serveur - Erreur pour la ligne n° %d", numero)
			res.erreur("import ordinateur/serveur - erreur pour la ligne n°%d : %v", numero, err)
			erreurMineure = true
		}
	}
	res.success("importation terminée des ordinateurs/serveurs dans la base de donnée")

	// l'onglet des matériels intelligents
	lignesEffecteurs, err := cl.Lignes(ongletEffecteurs)
	if err != nil {
		res.erreur("erreur dans la lecture du fichier excel : %v", err)
		res.Status = StatusFatal
		return res
	}
	for i, ligne := range lignesEffecteurs {
		numero := i + 1
		if numero <= lignesEntete {
			continue
		}
		if err := imp.traiteLigneEffecteur(ligne, memoire); err != nil {
			logger.Warnf("Import matériels intelligents - Erreur pour la ligne n° %d", numero)
			res.erreur("matériels intelligents - erreur pour la ligne n°%d : %v", numero, err)
			erreurMineure = true
		}
	}
	res.success("importation terminée des matériels intelligents dans la base de donnée")

	if erreurMineure {
		res.Status = StatusMinor
	} else {
		res.Status = StatusOK
	}
	return res
}

// nettoyage removes every record of the zone, children first, in one
// transaction.
func (imp *Importer) nettoyage(zone models.ZoneUsid) error {
	tx := imp.base.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := imp.materiels.DeleteOrdinateursByZone(tx, zone); err != nil {
		return err
	}
	if err := imp.materiels.DeleteEffecteursByZone(tx, zone); err != nil {
		return err
	}
	if err := imp.materiels.DeleteLicencesByZone(tx, zone); err != nil {
		return err
	}
	if err := imp.systemes.DeleteByZone(tx, zone); err != nil {
		return err
	}
	if err := imp.localisations.DeleteByZone(tx, zone); err != nil {
		return err
	}
	return tx.Commit().Error
}

// traiteLigneSysteme imports one row of the systems sheet: get-or-create the
// site, get-or-create the system on its identity tuple, then attach the
// business functions.
func (imp *Importer) traiteLigneSysteme(ligne []string, memoire map[string]uint, res *Result) error {
	idExcel := litIDExcel(ligne, colSysExcelID)
	if idExcel == "" {
		return nil
	}

	// la localisation du système
	zone, err := litZoneUsid(ligne)
	if err != nil {
		return err
	}
	ville := litNomVille(ligne)
	quartier := litNomQuartier(ligne)
	zoneQuartier := litZoneQuartier(ligne)

	localisation, err := imp.localisations.GetByIdentite(nil, zone, ville, quartier, zoneQuartier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		protection, err := litProtection(ligne)
		if err != nil {
			return err
		}
		sensibilite, err := litSensibilite(ligne)
		if err != nil {
			return err
		}
		localisation = &models.Localisation{
			ZoneUsid:     zone,
			NomVille:     ville,
			NomQuartier:  quartier,
			ZoneQuartier: zoneQuartier,
			Protection:   protection,
			Sensibilite:  sensibilite,
		}
		if err := imp.localisations.Create(nil, localisation); err != nil {
			return err
		}
		logger.Infof("création de la localisation '%s'", localisation.Libelle())
		res.info("localisation %s créée", localisation.Libelle())
	} else if err != nil {
		return err
	}

	// les informations principales du système
	nom := litNomSysteme(ligne)
	environnement, err := litEnvironnement(ligne)
	if err != nil {
		return err
	}
	codeDomaine := litCodeDomaine(ligne)
	domaine, err := imp.metiers.GetDomaineByCode(nil, codeDomaine)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("Colonne %d: l'acronyme du domaine métier '%s' est inconnu", colSysDomaine+1, codeDomaine)
	} else if err != nil {
		return err
	}
	homologationFin, err := litHomologationFin(ligne)
	if err != nil {
		return err
	}
	homologationClasse, err := litHomologationClasse(ligne)
	if err != nil {
		return err
	}

	systeme, err := imp.systemes.GetByIdentite(nil, localisation.ID, nom, environnement, domaine.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		systeme = &models.SystemeIndustriel{
			LocalisationID: &localisation.ID,
			Nom:            nom,
			Environnement:  environnement,
			DomaineID:      domaine.ID,
		}
	} else if err != nil {
		return err
	}
	systeme.NumeroGTP = cellule(ligne, colSysNumeroGTP)
	systeme.HomologationFin = homologationFin
	systeme.HomologationClasse = homologationClasse
	systeme.Description = cellule(ligne, colSysDescription)
	systeme.FicheUtilisateur = imp.utilisateur

	libelle := localisation.Libelle() + " - " + nom
	if err := imp.systemes.Save(nil, systeme); err != nil {
		return fmt.Errorf("Impossible de sauvegarder le système '%s'", libelle)
	}
	logger.Infof("création du système industriel '%s'", libelle)
	res.info("système industriel %s créé", libelle)

	// l'ajout des fonctions métiers
	codes := litCodesFonctions(ligne)
	disponibles, err := imp.metiers.FonctionsByCodes(nil, domaine.ID, codes)
	if err != nil {
		return err
	}
	parCode := make(map[string]models.FonctionMetier, len(disponibles))
	for _, fonction := range disponibles {
		parCode[fonction.Code] = fonction
	}
	var fonctions []models.FonctionMetier
	for _, code := range codes {
		fonction, ok := parCode[code]
		if !ok {
			return fmt.Errorf("Colonne %d : la fonction de domaine métier '%s' est inconnue ou ne correspond pas au domaine métier inscrit", colSysFonctions+1, code)
		}
		fonctions = append(fonctions, fonction)
	}
	if err := imp.systemes.AddFonctions(nil, systeme, fonctions); err != nil {
		return err
	}

	// la correspondance entre les ID du fichier excel et les clefs primaires,
	// pour rattacher les futurs matériels aux systèmes créés
	memoire[idExcel] = systeme.ID
	return nil
}

// traiteLigneOrdinateur imports one row of the computers sheet.
func (imp *Importer) traiteLigneOrdinateur(ligne []string, memoire map[string]uint) error {
	idExcel := litIDExcel(ligne, colOrdiExcelID)
	if idExcel == "" {
		return nil
	}

	systemeID, ok := memoire[idExcel]
	if !ok {
		return errors.New("impossible de créer le matériel car le système lié est introuvable")
	}
	fonction, err := litFonctionOrdinateur(ligne)
	if err != nil {
		return err
	}
	famille, err := litFamilleOs(ligne)
	if err != nil {
		return err
	}
	nombre, err := litNombre(ligne, colOrdiNombre)
	if err != nil {
		return err
	}
	ordinateur := models.MaterielOrdinateur{
		SystemeID:   systemeID,
		Fonction:    fonction,
		Marque:      strings.ToLower(cellule(ligne, colOrdiMarque)),
		Modele:      strings.ToLower(cellule(ligne, colOrdiModele)),
		OsFamille:   famille,
		OsVersion:   strings.ToLower(cellule(ligne, colOrdiOsVersion)),
		Nombre:      nombre,
		Description: cellule(ligne, colOrdiDescription),
	}
	if err := imp.materiels.CreateOrdinateur(nil, &ordinateur); err != nil {
		return fmt.Errorf("Erreur inconnue : %v", err)
	}
	return nil
}

// traiteLigneEffecteur imports one row of the field equipment sheet.
func (imp *Importer) traiteLigneEffecteur(ligne []string, memoire map[string]uint) error {
	idExcel := litIDExcel(ligne, colEffExcelID)
	if idExcel == "" {
		return nil
	}

	systemeID, ok := memoire[idExcel]
	if !ok {
		return errors.New("impossible de créer le matériel car le système lié est introuvable")
	}
	typeEffecteur, err := litTypeEffecteur(ligne)
	if err != nil {
		return err
	}
	nombre, err := litNombre(ligne, colEffNombre)
	if err != nil {
		return err
	}
	effecteur := models.MaterielEffecteur{
		SystemeID:   systemeID,
		Type:        typeEffecteur,
		Marque:      strings.ToLower(cellule(ligne, colEffMarque)),
		Modele:      strings.ToLower(cellule(ligne, colEffModele)),
		Nombre:      nombre,
		Firmware:    strings.ToLower(cellule(ligne, colEffFirmware)),
		Cortec:      strings.ToLower(cellule(ligne, colEffCortec)),
		Description: cellule(ligne, colEffDescription),
	}
	if err := imp.materiels.CreateEffecteur(nil, &effecteur); err != nil {
		return fmt.Errorf("Erreur inconnue : %v", err)
	}
	return nil
}
