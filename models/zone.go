package models

import "fmt"

// ZoneUsid identifies the perimeter of responsibility of one of the seven USID.
type ZoneUsid string

// The seven USID zones.
const (
	ZoneAMS ZoneUsid = "AMS" // Angers
	ZoneBGA ZoneUsid = "BGA" // Bourges-Avord
	ZoneCBG ZoneUsid = "CBG" // Cherbourg
	ZoneEVX ZoneUsid = "EVX" // Évreux
	ZoneOAN ZoneUsid = "OAN" // Bricy
	ZoneRVC ZoneUsid = "RVC" // Rennes
	ZoneTRS ZoneUsid = "TRS" // Tours
)

// Zones lists every USID zone in canonical display order.
var Zones = []ZoneUsid{ZoneAMS, ZoneBGA, ZoneCBG, ZoneEVX, ZoneOAN, ZoneRVC, ZoneTRS}

var zoneVilles = map[ZoneUsid]string{
	ZoneAMS: "Angers",
	ZoneBGA: "Bourges-Avord",
	ZoneCBG: "Cherbourg",
	ZoneEVX: "Évreux",
	ZoneOAN: "Bricy",
	ZoneRVC: "Rennes",
	ZoneTRS: "Tours",
}

// ParseZoneUsid validates a zone code received from the outside (query params, CLI, claims).
func ParseZoneUsid(s string) (ZoneUsid, error) {
	z := ZoneUsid(s)
	if !z.Valid() {
		return "", fmt.Errorf("zone USID inconnue: %q", s)
	}
	return z, nil
}

// Valid reports whether z is one of the seven USID zones.
func (z ZoneUsid) Valid() bool {
	_, ok := zoneVilles[z]
	return ok
}

// Ville returns the city of the USID, used for filename sanity checks on import.
func (z ZoneUsid) Ville() string {
	return zoneVilles[z]
}

// PermConsult is the permission codename granting read access to the zone.
func (z ZoneUsid) PermConsult() string {
	return "consult_" + string(z)
}

// PermModif is the permission codename granting write access to the zone.
func (z ZoneUsid) PermModif() string {
	return "modif_" + string(z)
}

// Statistics permission codenames carried alongside the zone permissions.
const (
	PermStatRSSI = "stat_RSSI"
	PermStatBSSI = "stat_BSSI"
	PermStatINT  = "stat_INT"
	PermStatEXT  = "stat_EXT"
)

// UserIdentity is the authenticated caller: a username and the permission
// codenames granted to it. It is built from validated JWT claims and drives
// every zone-scoped query.
type UserIdentity struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// HasPerm reports whether the identity holds the given permission codename.
func (u *UserIdentity) HasPerm(code string) bool {
	for _, p := range u.Permissions {
		if p == code {
			return true
		}
	}
	return false
}
