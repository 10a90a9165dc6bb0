package bootstrap

import "s2inventory/models"

// Catalogue is the official business domain classification. It is seeded into
// the database at startup when absent; coefficients of existing rows are
// never overwritten, so local adjustments survive restarts.
var Catalogue = []models.DomaineMetier{
	{
		Code: "GT", Nom: "gestion technique", CoeffCriticite: 2,
		Fonctions: []models.FonctionMetier{
			{Code: "GTB", Nom: "gestion technique bâtimentaire", CoeffCriticite: 1},
			{Code: "GTS", Nom: "gestion technique de site", CoeffCriticite: 2},
		},
	},
	{
		Code: "SI", Nom: "sécurité incendie", CoeffCriticite: 3,
		Fonctions: []models.FonctionMetier{
			{Code: "DIN", Nom: "détection incendie", CoeffCriticite: 1},
			{Code: "DEI", Nom: "détection et extinction incendie", CoeffCriticite: 2},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "PS", Nom: "protection de site", CoeffCriticite: 4,
		Fonctions: []models.FonctionMetier{
			{Code: "CA", Nom: "contrôle d'accès", CoeffCriticite: 3},
			{Code: "DI", Nom: "détection d'intrusion", CoeffCriticite: 3},
			{Code: "VS", Nom: "vidéo surveillance", CoeffCriticite: 3},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "CVC", Nom: "chauffage, ventilation et climatisation", CoeffCriticite: 3,
		Fonctions: []models.FonctionMetier{
			{Code: "CHA", Nom: "chauffage", CoeffCriticite: 1},
			{Code: "ECS", Nom: "eau chaude sanitaire", CoeffCriticite: 1},
			{Code: "ECT", Nom: "eau chaude technique", CoeffCriticite: 2},
			{Code: "CLI", Nom: "climatisation (confort)", CoeffCriticite: 1},
			{Code: "FRI", Nom: "climatisation et froid industriel", CoeffCriticite: 3},
			{Code: "VT", Nom: "ventilation et traitement d'air (confort)", CoeffCriticite: 1},
			{Code: "VTI", Nom: "ventilation et traitement d'air industriel", CoeffCriticite: 3},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "GF", Nom: "gestion des fluides", CoeffCriticite: 2,
		Fonctions: []models.FonctionMetier{
			{Code: "TF", Nom: "traitement de fluides", CoeffCriticite: 2},
			{Code: "PF", Nom: "production de fluides", CoeffCriticite: 2},
			{Code: "DF", Nom: "distribution de fluides", CoeffCriticite: 2},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "MA", Nom: "manutention", CoeffCriticite: 1,
		Fonctions: []models.FonctionMetier{
			{Code: "LI", Nom: "levage industriel", CoeffCriticite: 1},
			{Code: "ASC", Nom: "ascenseur", CoeffCriticite: 1},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "EN", Nom: "entretien naval", CoeffCriticite: 3,
		Fonctions: []models.FonctionMetier{
			{Code: "MAE", Nom: "assèchement (station de pompage)", CoeffCriticite: 3},
			{Code: "MAS", Nom: "maintien à sec (porte de bassin)", CoeffCriticite: 3},
			{Code: "REF", Nom: "réfrigération (arrosage de coque)", CoeffCriticite: 2},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "SO", Nom: "sonorisation", CoeffCriticite: 1,
		Fonctions: []models.FonctionMetier{
			{Code: "SO", Nom: "sonorisation", CoeffCriticite: 1},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "EE", Nom: "énergie électrique", CoeffCriticite: 3,
		Fonctions: []models.FonctionMetier{
			{Code: "PEE", Nom: "production d'énergie électrique", CoeffCriticite: 3},
			{Code: "CEE", Nom: "conversion d'énergie électrique", CoeffCriticite: 2},
			{Code: "TEE", Nom: "transformation d'énergie électrique", CoeffCriticite: 2},
			{Code: "DEE", Nom: "distribution d'énergie électrique", CoeffCriticite: 2},
			{Code: "SEE", Nom: "stockage d'énergie électrique", CoeffCriticite: 2},
			{Code: "ECL", Nom: "éclairage", CoeffCriticite: 1},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
	{
		Code: "AU", Nom: "autre domaine métier", CoeffCriticite: 1,
		Fonctions: []models.FonctionMetier{
			{Code: "AUT", Nom: "autre fonction métier", CoeffCriticite: 1},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
	},
}
