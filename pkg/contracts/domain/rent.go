package domain

// Lease-type values derived from the parsed monthly rent. There is no
// upstream field for this; a record is "monthly" iff its monthly rent parses
// to a value strictly greater than zero.
const (
	LeaseMonthly     = "monthly"
	LeaseDepositOnly = "deposit-only"
)

// AptRent is one apartment lease transaction.
type AptRent struct {
	AptName        string `json:"apt_name"`
	LeaseType      string `json:"lease_type"`
	Deposit        *int64 `json:"deposit"`
	DepositRaw     string `json:"deposit_raw"`
	MonthlyRent    *int64 `json:"monthly_rent"`
	MonthlyRentRaw string `json:"monthly_rent_raw"`
	AreaM2         string `json:"area_m2"`
	Floor          string `json:"floor"`
	BuildYear      string `json:"build_year"`
	Dong           string `json:"dong"`
	DealDate       string `json:"deal_date"`
}

// OffiRent is one officetel lease transaction.
type OffiRent struct {
	OffiName       string `json:"offi_name"`
	LeaseType      string `json:"lease_type"`
	Deposit        *int64 `json:"deposit"`
	DepositRaw     string `json:"deposit_raw"`
	MonthlyRent    *int64 `json:"monthly_rent"`
	MonthlyRentRaw string `json:"monthly_rent_raw"`
	AreaM2         string `json:"area_m2"`
	Floor          string `json:"floor"`
	BuildYear      string `json:"build_year"`
	Dong           string `json:"dong"`
	DealDate       string `json:"deal_date"`
}

// VillaRent is one row-house lease transaction.
type VillaRent struct {
	HouseName      string `json:"house_name"`
	LeaseType      string `json:"lease_type"`
	Deposit        *int64 `json:"deposit"`
	DepositRaw     string `json:"deposit_raw"`
	MonthlyRent    *int64 `json:"monthly_rent"`
	MonthlyRentRaw string `json:"monthly_rent_raw"`
	AreaM2         string `json:"area_m2"`
	Floor          string `json:"floor"`
	BuildYear      string `json:"build_year"`
	Dong           string `json:"dong"`
	DealDate       string `json:"deal_date"`
}

// HouseRent is one detached / multi-family house lease transaction.
type HouseRent struct {
	HouseType      string `json:"house_type"`
	LeaseType      string `json:"lease_type"`
	Deposit        *int64 `json:"deposit"`
	DepositRaw     string `json:"deposit_raw"`
	MonthlyRent    *int64 `json:"monthly_rent"`
	MonthlyRentRaw string `json:"monthly_rent_raw"`
	AreaM2         string `json:"area_m2"`
	Dong           string `json:"dong"`
	DealDate       string `json:"deal_date"`
}
