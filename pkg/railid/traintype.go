package railid

import "fmt"

// TransportCategory classifies a train run by the first two characters of the
// upstream three-character train type code.
type TransportCategory int

const (
	CategoryUnknown TransportCategory = iota
	CategoryNationalExpress
	CategoryInterNationalExpress
	CategoryInterRegionalExpress
	CategoryInterRegional
	CategoryRegionalFast
	CategoryRegional
	CategoryAdditional
	CategoryManeuver
	CategoryEmptyTransfer
	CategoryInterNationalCargo
	CategoryNationalCargo
	CategoryMaintenance
)

var categoryNames = map[TransportCategory]string{
	CategoryUnknown:              "UNKNOWN",
	CategoryNationalExpress:      "NATIONAL_EXPRESS_TRAIN",
	CategoryInterNationalExpress: "INTER_NATIONAL_EXPRESS_TRAIN",
	CategoryInterRegionalExpress: "INTER_REGIONAL_EXPRESS_TRAIN",
	CategoryInterRegional:        "INTER_REGIONAL_TRAIN",
	CategoryRegionalFast:         "REGIONAL_FAST_TRAIN",
	CategoryRegional:             "REGIONAL_TRAIN",
	CategoryAdditional:           "ADDITIONAL_TRAIN",
	CategoryManeuver:             "MANEUVER_TRAIN",
	CategoryEmptyTransfer:        "EMPTY_TRANSFER_TRAIN",
	CategoryInterNationalCargo:   "INTER_NATIONAL_CARGO_TRAIN",
	CategoryNationalCargo:        "NATIONAL_CARGO_TRAIN",
	CategoryMaintenance:          "MAINTENANCE_TRAIN",
}

func (c TransportCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// prefixCategories is the closed upstream mapping. Codes outside this table
// are a decode error; callers that tolerate schema drift substitute
// CategoryUnknown and count the miss.
var prefixCategories = map[string]TransportCategory{
	"EI": CategoryNationalExpress,
	"EC": CategoryInterNationalExpress,
	"EN": CategoryInterNationalExpress,
	"MM": CategoryInterNationalExpress,
	"MP": CategoryInterRegionalExpress,
	"MH": CategoryInterRegionalExpress,
	"MO": CategoryInterRegional,
	"MA": CategoryInterRegional,
	"RP": CategoryRegionalFast,
	"RA": CategoryRegional,
	"RM": CategoryRegional,
	"RO": CategoryRegional,
	"AM": CategoryRegional,
	"AP": CategoryRegional,
	"OK": CategoryAdditional,
	"LM": CategoryManeuver,
	"LW": CategoryManeuver,
	"LP": CategoryManeuver,
	"LT": CategoryManeuver,
	"LZ": CategoryManeuver,
	"LS": CategoryManeuver,
	"PC": CategoryEmptyTransfer,
	"PW": CategoryEmptyTransfer,
	"PX": CategoryEmptyTransfer,
	"PH": CategoryEmptyTransfer,
	"TH": CategoryEmptyTransfer,
	"TS": CategoryEmptyTransfer,
	"TT": CategoryEmptyTransfer,
	"TK": CategoryEmptyTransfer,
	"TA": CategoryInterNationalCargo,
	"TC": CategoryInterNationalCargo,
	"TG": CategoryInterNationalCargo,
	"TR": CategoryInterNationalCargo,
	"TB": CategoryNationalCargo,
	"TD": CategoryNationalCargo,
	"TP": CategoryNationalCargo,
	"TN": CategoryNationalCargo,
	"TM": CategoryNationalCargo,
	"TL": CategoryNationalCargo,
	"ZG": CategoryMaintenance,
	"ZN": CategoryMaintenance,
	"ZX": CategoryMaintenance,
	"ZH": CategoryMaintenance,
}

// ParseTrainType maps a three-character train type code to its transport
// category via the code's two-character prefix.
func ParseTrainType(code string) (TransportCategory, error) {
	if len(code) < 2 {
		return CategoryUnknown, fmt.Errorf("train type %q too short", code)
	}
	cat, ok := prefixCategories[code[:2]]
	if !ok {
		return CategoryUnknown, fmt.Errorf("unknown train type %q", code)
	}
	return cat, nil
}
