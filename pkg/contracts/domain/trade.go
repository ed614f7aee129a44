package domain

// Canonical trade records for the five MOLIT sale-transaction families.
// Monetary amounts are integers in 10,000-KRW units; a nil amount means the
// upstream value was blank or unparsable. Dates are ISO YYYY-MM-DD or "".

// AptTrade is one apartment sale transaction.
type AptTrade struct {
	AptName       string `json:"apt_name"`
	Amount        *int64 `json:"amount"`
	AmountRaw     string `json:"amount_raw"`
	AreaM2        string `json:"area_m2"`
	Floor         string `json:"floor"`
	BuildYear     string `json:"build_year"`
	Dong          string `json:"dong"`
	Jibun         string `json:"jibun"`
	DealDate      string `json:"deal_date"`
	DealType      string `json:"deal_type"`
	AgentLocation string `json:"agent_location"`
}

// OffiTrade is one officetel sale transaction.
type OffiTrade struct {
	OffiName  string `json:"offi_name"`
	Amount    *int64 `json:"amount"`
	AmountRaw string `json:"amount_raw"`
	AreaM2    string `json:"area_m2"`
	Floor     string `json:"floor"`
	BuildYear string `json:"build_year"`
	Dong      string `json:"dong"`
	Jibun     string `json:"jibun"`
	DealDate  string `json:"deal_date"`
}

// VillaTrade is one row-house / multi-household sale transaction.
type VillaTrade struct {
	HouseName string `json:"house_name"`
	Amount    *int64 `json:"amount"`
	AmountRaw string `json:"amount_raw"`
	AreaM2    string `json:"area_m2"`
	Floor     string `json:"floor"`
	BuildYear string `json:"build_year"`
	Dong      string `json:"dong"`
	Jibun     string `json:"jibun"`
	DealDate  string `json:"deal_date"`
	DealType  string `json:"deal_type"`
}

// HouseTrade is one detached / multi-family house sale transaction.
type HouseTrade struct {
	HouseType  string `json:"house_type"`
	Amount     *int64 `json:"amount"`
	AmountRaw  string `json:"amount_raw"`
	AreaM2     string `json:"area_m2"`
	LandAreaM2 string `json:"land_area_m2"`
	FloorCount string `json:"floor_count"`
	BuildYear  string `json:"build_year"`
	Dong       string `json:"dong"`
	Jibun      string `json:"jibun"`
	DealDate   string `json:"deal_date"`
	DealType   string `json:"deal_type"`
}

// CommercialTrade is one commercial/office building sale transaction.
type CommercialTrade struct {
	UseType     string `json:"use_type"`
	Amount      *int64 `json:"amount"`
	AmountRaw   string `json:"amount_raw"`
	AreaM2      string `json:"area_m2"`
	LandAreaM2  string `json:"land_area_m2"`
	Floor       string `json:"floor"`
	TotalFloors string `json:"total_floors"`
	BuildYear   string `json:"build_year"`
	Dong        string `json:"dong"`
	Jibun       string `json:"jibun"`
	DealDate    string `json:"deal_date"`
	DealType    string `json:"deal_type"`
}
