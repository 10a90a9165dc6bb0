package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"s2inventory/bootstrap"
	"s2inventory/config"
	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/services/importer"
	"s2inventory/services/job"
)

const (
	couleurVert  = "\033[32m"
	couleurCyan  = "\033[36m"
	couleurRouge = "\033[31m"
	couleurFin   = "\033[0m"
)

func couleur(t importer.MessageType) string {
	switch t {
	case importer.MessageSuccess:
		return couleurVert
	case importer.MessageInfo:
		return couleurCyan
	default:
		return couleurRouge
	}
}

func utilisateurCourant() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "s2import"
}

func confirme(question string) bool {
	fmt.Printf("%s [o/N] ", question)
	lecteur := bufio.NewReader(os.Stdin)
	reponse, err := lecteur.ReadString('\n')
	if err != nil {
		return false
	}
	reponse = strings.ToLower(strings.TrimSpace(reponse))
	return reponse == "o" || reponse == "oui"
}

func main() {
	var (
		zoneBrute   = flag.String("zone", "", "zone USID à importer (AMS, BGA, CBG, EVX, OAN, RVC, TRS)")
		fichier     = flag.String("fichier", "", "classeur xlsx à importer")
		nettoie     = flag.Bool("nettoie", false, "vide la zone avant l'import")
		noInput     = flag.Bool("no-input", false, "ne pose aucune question")
		utilisateur = flag.String("utilisateur", utilisateurCourant(), "nom inscrit dans fiche_utilisateur")
	)
	flag.Parse()

	zone, err := models.ParseZoneUsid(*zoneBrute)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *fichier == "" {
		log.Fatal("le drapeau -fichier est obligatoire")
	}

	// le nom du fichier doit mentionner la ville de l'USID, sinon l'import
	// vise probablement la mauvaise zone
	nom := strings.ToLower(filepath.Base(*fichier))
	if !strings.Contains(nom, strings.ToLower(zone.Ville())) {
		fmt.Printf("%sAttention : le fichier '%s' ne mentionne pas la ville '%s'%s\n",
			couleurRouge, filepath.Base(*fichier), zone.Ville(), couleurFin)
		if !*noInput && !confirme("Continuer l'import malgré tout ?") {
			fmt.Println("Import annulé")
			os.Exit(1)
		}
	}
	if *nettoie && !*noInput {
		if !confirme(fmt.Sprintf("Toutes les données de la zone %s vont être supprimées, continuer ?", zone)) {
			fmt.Println("Import annulé")
			os.Exit(1)
		}
	}

	contenu, err := os.ReadFile(*fichier)
	if err != nil {
		log.Fatalf("lecture de %s : %v", *fichier, err)
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}
	logger.InitWithConfig(config.Cfg.LogFile, logger.ParseLogLevel(config.Cfg.LogLevel),
		config.Cfg.LogMaxSize, config.Cfg.LogMaxBackups, config.Cfg.LogMaxAge, config.Cfg.LogCompress)

	jms := job.GetJobMonitorService()
	jobID := jms.Enqueue(zone, *utilisateur, func() importer.Result {
		return importer.NewImporter(*utilisateur).Importe(zone, contenu, *nettoie)
	})

	var info *job.JobInfo
	for {
		courant, ok := jms.GetJob(jobID)
		if !ok {
			log.Fatalf("la tâche %s a disparu", jobID)
		}
		if courant.Status == job.StatusSuccess || courant.Status == job.StatusFailure {
			info = courant
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	if info.Result == nil {
		fmt.Printf("%sImport terminé sans compte-rendu%s\n", couleurRouge, couleurFin)
		os.Exit(1)
	}
	for _, m := range info.Result.Messages {
		fmt.Printf("%s%s%s\n", couleur(m.Type), m.Texte, couleurFin)
	}
	fmt.Printf("Statut final : %s\n", info.Result.Status)

	if info.Result.Status == importer.StatusOK || info.Result.Status == importer.StatusMinor {
		os.Exit(0)
	}
	os.Exit(1)
}
