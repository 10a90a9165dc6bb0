package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func systemeCVC() *SystemeIndustriel {
	return &SystemeIndustriel{
		Nom:           "chaufferie nord",
		Environnement: EnvNucleaire,
		DomaineMetier: &DomaineMetier{Code: "CVC", Nom: "chauffage ventilation climatisation", CoeffCriticite: 3},
		FonctionsMetiers: []FonctionMetier{
			{Code: "FRI", Nom: "climatisation et froid industriel", CoeffCriticite: 3},
			{Code: "ECT", Nom: "eau chaude technique", CoeffCriticite: 2},
			{Code: "GTC", Nom: "gestion technique centralisée", CoeffCriticite: 1},
		},
		Localisation: &Localisation{
			ZoneUsid:    ZoneRVC,
			NomVille:    "rennes",
			NomQuartier: "maurepas",
			Sensibilite: SensibiliteMoindre,
		},
	}
}

func TestCriticite(t *testing.T) {
	s := systemeCVC()
	// somme 6, domaine 3, environnement 4, sensibilité 1 -> 9000/364 tronqué
	assert.Equal(t, 24, s.Criticite())
}

func TestCriticiteSansFonction(t *testing.T) {
	s := systemeCVC()
	s.FonctionsMetiers = nil
	// la somme des coefficients retombe à 1
	assert.Equal(t, 1*3*(4+1)*100/364, s.Criticite())
}

func TestCriticiteSansLocalisation(t *testing.T) {
	s := systemeCVC()
	s.Localisation = nil
	assert.Equal(t, 24, s.Criticite())
}

func TestCriticiteBornes(t *testing.T) {
	s := &SystemeIndustriel{
		Environnement: EnvNucleaire,
		DomaineMetier: &DomaineMetier{Code: "PS", CoeffCriticite: 4},
		FonctionsMetiers: []FonctionMetier{
			{Code: "CA", CoeffCriticite: 3},
			{Code: "DI", CoeffCriticite: 3},
			{Code: "VS", CoeffCriticite: 3},
			{Code: "GTC", CoeffCriticite: 1},
			{Code: "XX", CoeffCriticite: 3},
		},
		Localisation: &Localisation{Sensibilite: SensibiliteVitale},
	}
	assert.Equal(t, 100, s.Criticite())

	bas := &SystemeIndustriel{
		Environnement:    EnvAutre,
		DomaineMetier:    &DomaineMetier{Code: "AU", CoeffCriticite: 1},
		FonctionsMetiers: []FonctionMetier{{Code: "AUT", CoeffCriticite: 1}},
		Localisation:     &Localisation{Sensibilite: SensibiliteMoindre},
	}
	crit := bas.Criticite()
	assert.GreaterOrEqual(t, crit, 0)
	assert.Less(t, crit, 10)
}

func TestCriticiteMonotoneEnvironnement(t *testing.T) {
	s := systemeCVC()
	previous := -1
	for _, env := range []Environnement{EnvAutre, EnvOperationnel, EnvCyber, EnvNucleaire} {
		s.Environnement = env
		crit := s.Criticite()
		assert.Greater(t, crit, previous, "environnement %d", env)
		previous = crit
	}
}

func TestParseZoneUsid(t *testing.T) {
	z, err := ParseZoneUsid("RVC")
	assert.NoError(t, err)
	assert.Equal(t, ZoneRVC, z)
	assert.Equal(t, "Rennes", z.Ville())
	assert.Equal(t, "consult_RVC", z.PermConsult())
	assert.Equal(t, "modif_RVC", z.PermModif())

	_, err = ParseZoneUsid("XYZ")
	assert.Error(t, err)
}

func TestUserIdentityHasPerm(t *testing.T) {
	u := UserIdentity{Username: "rssi.rennes", Permissions: []string{"consult_RVC", "modif_RVC"}}
	assert.True(t, u.HasPerm("consult_RVC"))
	assert.False(t, u.HasPerm("consult_AMS"))
}
