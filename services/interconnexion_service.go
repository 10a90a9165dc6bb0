package services

import (
	"errors"

	"s2inventory/models"
	"s2inventory/repository"

	"gorm.io/gorm"
)

// InterconnexionService maintains the mirrored-pair invariant of network
// links: every (from, to) row has a (to, from) counterpart sharing the same
// network, transport, protocol and description. Methods take the caller's
// transaction so a link write is atomic with the system write around it.
type InterconnexionService interface {
	SaveMirrored(tx *gorm.DB, interco *models.Interconnexion) error
	DeleteMirrored(tx *gorm.DB, fromID, toID uint) error
	DeleteAllMirrored(tx *gorm.DB, systemeID uint) error
}

type interconnexionService struct {
	intercoRepo repository.InterconnexionRepository
}

// NewInterconnexionService creates a new interconnection service instance.
func NewInterconnexionService() InterconnexionService {
	return &interconnexionService{
		intercoRepo: repository.NewInterconnexionRepository(),
	}
}

// SaveMirrored upserts the (from, to) row and its mirror. An existing mirror
// keeps its identity but its attributes are overwritten.
func (s *interconnexionService) SaveMirrored(tx *gorm.DB, interco *models.Interconnexion) error {
	if err := s.upsert(tx, interco); err != nil {
		return err
	}
	miroir := models.Interconnexion{
		SystemeFromID: interco.SystemeToID,
		SystemeToID:   interco.SystemeFromID,
		TypeReseau:    interco.TypeReseau,
		TypeLiaison:   interco.TypeLiaison,
		Protocole:     interco.Protocole,
		Description:   interco.Description,
	}
	return s.upsert(tx, &miroir)
}

func (s *interconnexionService) upsert(tx *gorm.DB, interco *models.Interconnexion) error {
	existant, err := s.intercoRepo.Get(tx, interco.SystemeFromID, interco.SystemeToID)
	if err == nil {
		existant.TypeReseau = interco.TypeReseau
		existant.TypeLiaison = interco.TypeLiaison
		existant.Protocole = interco.Protocole
		existant.Description = interco.Description
		if err := s.intercoRepo.Save(tx, existant); err != nil {
			return err
		}
		interco.ID = existant.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.intercoRepo.Create(tx, interco)
}

// DeleteMirrored removes both directions of the link. A missing mirror is
// not an error.
func (s *interconnexionService) DeleteMirrored(tx *gorm.DB, fromID, toID uint) error {
	if err := s.intercoRepo.Delete(tx, fromID, toID); err != nil {
		return err
	}
	return s.intercoRepo.Delete(tx, toID, fromID)
}

// DeleteAllMirrored removes every link touching the system, both directions.
func (s *interconnexionService) DeleteAllMirrored(tx *gorm.DB, systemeID uint) error {
	return s.intercoRepo.DeleteForSysteme(tx, systemeID)
}
