package models

// Reference tables shared by the extraction and segmentation pipelines.
// They are defaults, not hard requirements: every consumer accepts the
// tables as configuration so alternates can be injected in tests.

// DefaultUnits is the canonical list of business units, in output order.
// Unit names found in the data but not listed here are ignored.
func DefaultUnits() []string {
	return []string{
		"Ancol",
		"Dufan Ancol",
		"Atlantis Ancol",
		"Sea World Ancol",
		"Samudra Ancol",
		"Jakarta Bird Land Ancol",
	}
}

// DefaultUnitSynonyms maps unit names as they appear in production exports
// to their canonical form.
func DefaultUnitSynonyms() map[string]string {
	return map[string]string{
		"Dunia Fantasi":  "Dufan Ancol",
		"SeaWorld Ancol": "Sea World Ancol",
		"Birdland":       "Jakarta Bird Land Ancol",
	}
}

// DefaultPromoTickets lists the promotional giveaway tickets excluded from
// customer analytics. A transaction whose distinct ticket details are all
// drawn from this list is promo-only.
func DefaultPromoTickets() []string {
	return []string{
		"Tiket Free Kendaraan Listrik - Mobil",
		"Tiket Free Kendaraan Listrik - Motor",
	}
}
