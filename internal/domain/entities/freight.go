package entities

// FreightOption is a named shipping tier with its price (minor units) and
// estimated delivery in days. Options are transient: only the selected
// option's carrier and price are captured into the order at submission.
type FreightOption struct {
	Carrier      string `json:"carrier"`
	Price        int64  `json:"price"`
	DeliveryDays int    `json:"delivery_days"`
}

// FreightQuote is the result of one freight computation: the resolved
// address (lookup backfill applied), the available tiers, and the
// fingerprint of the address the tiers were priced for.
type FreightQuote struct {
	Address     Address         `json:"address"`
	Options     []FreightOption `json:"options"`
	Fingerprint string          `json:"fingerprint"`
}

const (
	CarrierStandard = "Standard"
	CarrierExpress  = "Express"
	CarrierPriority = "Priority"
)

// nearRegions is the fixed set of region codes with the cheaper, faster
// freight table. The simulation is deterministic; there is no carrier call.
var nearRegions = map[string]bool{
	"SP": true,
	"RJ": true,
	"MG": true,
	"ES": true,
}

// FreightOptionsFor returns the tier table for a region code.
func FreightOptionsFor(region string) []FreightOption {
	if nearRegions[region] {
		return []FreightOption{
			{Carrier: CarrierStandard, Price: 1490, DeliveryDays: 5},
			{Carrier: CarrierExpress, Price: 2290, DeliveryDays: 2},
			{Carrier: CarrierPriority, Price: 3290, DeliveryDays: 1},
		}
	}
	return []FreightOption{
		{Carrier: CarrierStandard, Price: 1990, DeliveryDays: 8},
		{Carrier: CarrierExpress, Price: 2990, DeliveryDays: 4},
		{Carrier: CarrierPriority, Price: 3990, DeliveryDays: 2},
	}
}
