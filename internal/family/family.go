package family

// Family identifies an AMD processor generation as reported by the
// ryzen_smu codename sysfs attribute. The numeric values mirror the
// driver's enumeration and must not be reordered.
type Family uint32

const (
	Unsupported Family = iota
	Colfax
	Renoir
	Picasso
	Matisse
	Threadripper
	CastlePeak
	Raven
	Raven2
	SummitRidge
	PinnacleRidge
	Rembrandt
	Vermeer
	Vangogh
	Cezanne
	Milan
	Dali
	Lucienne
	Naples
	Chagall
	Raphael
	Phoenix
	HawkPoint
	GraniteRidge
	StrixPoint
	StormPeak

	familyCount
)

// FromID maps the driver's numeric codename id to a Family. Ids outside
// the known range degrade to Unsupported; they never fail.
func FromID(id uint32) Family {
	if id >= uint32(familyCount) {
		return Unsupported
	}
	return Family(id)
}

var names = [familyCount]string{
	Unsupported:   "Unsupported",
	Colfax:        "Colfax",
	Renoir:        "Renoir",
	Picasso:       "Picasso",
	Matisse:       "Matisse",
	Threadripper:  "Threadripper",
	CastlePeak:    "Castle Peak",
	Raven:         "Raven",
	Raven2:        "Raven 2",
	SummitRidge:   "Summit Ridge",
	PinnacleRidge: "Pinnacle Ridge",
	Rembrandt:     "Rembrandt",
	Vermeer:       "Vermeer",
	Vangogh:       "Van Gogh",
	Cezanne:       "Cezanne",
	Milan:         "Milan",
	Dali:          "Dali",
	Lucienne:      "Lucienne",
	Naples:        "Naples",
	Chagall:       "Chagall",
	Raphael:       "Raphael",
	Phoenix:       "Phoenix",
	HawkPoint:     "Hawk Point",
	GraniteRidge:  "Granite Ridge",
	StrixPoint:    "Strix Point",
	StormPeak:     "Storm Peak",
}

func (f Family) String() string {
	if f >= familyCount {
		return names[Unsupported]
	}
	return names[f]
}

// maxCCDs holds the number of core complex dies per package where it
// differs from the single-CCD default.
var maxCCDs = map[Family]int{
	Milan:        8,
	Naples:       8,
	Chagall:      8,
	StormPeak:    8,
	Threadripper: 4,
	CastlePeak:   4,
	Matisse:      2,
	Vermeer:      2,
	Raphael:      2,
	GraniteRidge: 2,
}

// CoresPerCCD returns the core count of one core complex die. Every
// generation supported by the driver ships 8-core CCDs.
func (f Family) CoresPerCCD() int { return 8 }

// MaxCCDs returns the maximum CCD count for this family's package.
func (f Family) MaxCCDs() int {
	if n, ok := maxCCDs[f]; ok {
		return n
	}
	return 1
}
