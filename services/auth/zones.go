package auth

import "s2inventory/models"

// ZonesConsultation returns the zones the identity may read, in canonical
// order. Only consult_ grants count; a modif_ grant on its own opens no
// consultation scope.
func ZonesConsultation(u *models.UserIdentity) []models.ZoneUsid {
	var zones []models.ZoneUsid
	for _, z := range models.Zones {
		if u.HasPerm(z.PermConsult()) {
			zones = append(zones, z)
		}
	}
	return zones
}

// ZonesModification returns the zones the identity may write, in canonical
// order.
func ZonesModification(u *models.UserIdentity) []models.ZoneUsid {
	var zones []models.ZoneUsid
	for _, z := range models.Zones {
		if u.HasPerm(z.PermModif()) {
			zones = append(zones, z)
		}
	}
	return zones
}

// CanConsult reports whether the identity may read records of the zone.
func CanConsult(u *models.UserIdentity, zone models.ZoneUsid) bool {
	return u.HasPerm(zone.PermConsult())
}

// CanModifier reports whether the identity may write records of the zone.
func CanModifier(u *models.UserIdentity, zone models.ZoneUsid) bool {
	return u.HasPerm(zone.PermModif())
}
