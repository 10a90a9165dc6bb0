package dto

// CompteLibelle is one labeled count of an inventory breakdown.
type CompteLibelle struct {
	Libelle string `json:"libelle"`
	Nombre  int64  `json:"nombre"`
}

// Statistiques is the inventory dashboard payload, computed over the
// caller's consultation zones.
type Statistiques struct {
	TotalSystemes int64           `json:"total_systemes"`
	TotalContrats int64           `json:"total_contrats"`
	ParDomaine    []CompteLibelle `json:"par_domaine"`
	ParVille      []CompteLibelle `json:"par_ville"`
	ParClasse     []CompteLibelle `json:"par_classe"`
}
