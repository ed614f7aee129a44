// Package datasets maps raw gateway records into canonical domain records.
// Each dataset family contributes an endpoint constant, a field-alias
// mapper, and any static reference tables the family carries.
package datasets

const gatewayBase = "http://apis.data.go.kr"

// MOLIT real-transaction endpoints (XML).
const (
	AptTradeURL        = gatewayBase + "/1613000/RTMSDataSvcAptTradeDev/getRTMSDataSvcAptTradeDev"
	AptRentURL         = gatewayBase + "/1613000/RTMSDataSvcAptRent/getRTMSDataSvcAptRent"
	OffiTradeURL       = gatewayBase + "/1613000/RTMSDataSvcOffiTrade/getRTMSDataSvcOffiTrade"
	OffiRentURL        = gatewayBase + "/1613000/RTMSDataSvcOffiRent/getRTMSDataSvcOffiRent"
	VillaTradeURL      = gatewayBase + "/1613000/RTMSDataSvcRHTrade/getRTMSDataSvcRHTrade"
	VillaRentURL       = gatewayBase + "/1613000/RTMSDataSvcRHRent/getRTMSDataSvcRHRent"
	HouseTradeURL      = gatewayBase + "/1613000/RTMSDataSvcSHTrade/getRTMSDataSvcSHTrade"
	HouseRentURL       = gatewayBase + "/1613000/RTMSDataSvcSHRent/getRTMSDataSvcSHRent"
	CommercialTradeURL = gatewayBase + "/1613000/RTMSDataSvcNrgTrade/getRTMSDataSvcNrgTrade"
)

// Onbid public-auction endpoints (JSON).
const (
	OnbidBidResultURL = gatewayBase + "/1230000/OnbidService/getOnbidBidResultList"
	OnbidThingInfoURL = gatewayBase + "/1230000/OnbidService/getOnbidThingInfoList"
)

// Building-permit endpoints (ArchPmsHubService, JSON via _type=json).
const (
	archPmsBase      = gatewayBase + "/1613000/ArchPmsHubService"
	PermitBasisURL   = archPmsBase + "/getApBasisOulnInfo"
	PermitParkingURL = archPmsBase + "/getApPklotInfo"
	PermitZoneURL    = archPmsBase + "/getApJijiguInfo"
	PermitLocURL     = archPmsBase + "/getApPlatPlcInfo"
	PermitHousingURL = archPmsBase + "/getApHsTpInfo"
)

// Apartment-complex endpoints (AptListService3 / AptBasisInfoServiceV4,
// JSON). These two services are served over TLS only.
const (
	ComplexListURL  = "https://apis.data.go.kr/1613000/AptListService3/getSigunguAptList3"
	ComplexBasisURL = "https://apis.data.go.kr/1613000/AptBasisInfoServiceV4/getAphusBassInfoV4"
)
