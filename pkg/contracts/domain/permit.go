package domain

// Building-permit records from the ArchPmsHub service. Numeric-looking
// fields (areas, ratios, counts) are carried as the upstream strings; only
// identity and date fields are normalized.

// PermitBasis is the basic-outline permit record.
type PermitBasis struct {
	BldName      string `json:"bld_name"`
	PlatPlc      string `json:"plat_plc"`
	MainPurps    string `json:"main_purps"`
	Strct        string `json:"strct"`
	Roof         string `json:"roof"`
	PlatArea     string `json:"plat_area"`
	ArchArea     string `json:"arch_area"`
	BcRat        string `json:"bc_rat"`
	TotArea      string `json:"tot_area"`
	VlRatFlrArea string `json:"vlrat_flo_area"`
	VlRat        string `json:"vl_rat"`
	GndFlrCnt    string `json:"gnd_flr_cnt"`
	UndFlrCnt    string `json:"und_flr_cnt"`
	HoCnt        string `json:"ho_cnt"`
	HhldCnt      string `json:"hhld_cnt"`
	FmlyCnt      string `json:"fmly_cnt"`
	MainBldCnt   string `json:"main_bld_cnt"`
	AtchBldCnt   string `json:"atch_bld_cnt"`
	ArchPmsDay   string `json:"arch_pms_day"`
	StcnsDay     string `json:"stcns_day"`
	UseAprDay    string `json:"use_apr_day"`
	CrtnDay      string `json:"crtn_day"`
}

// PermitParking is the parking-lot permit record. The outdoor and indoor
// counts each have two historical upstream spellings.
type PermitParking struct {
	BldName        string `json:"bld_name"`
	PlatPlc        string `json:"plat_plc"`
	PklotKind      string `json:"pklot_cd_nm"`
	AutoPrkngCnt   string `json:"auto_prkng_cnt"`
	MchngPrkngCnt  string `json:"mchng_prkng_cnt"`
	OutdorPrkngCnt string `json:"outdor_prkng_cnt"`
	IndrPrkngCnt   string `json:"indr_prkng_cnt"`
	CrtnDay        string `json:"crtn_day"`
}

// PermitZone is the land-use zone/district/area permit record.
type PermitZone struct {
	BldName  string `json:"bld_name"`
	PlatPlc  string `json:"plat_plc"`
	Jiyuk    string `json:"jiyuk_cd_nm"`
	Jigu     string `json:"jigu_cd_nm"`
	Guyuk    string `json:"guyuk_cd_nm"`
	EtcJiyuk string `json:"etc_jiyuk"`
	EtcJigu  string `json:"etc_jigu"`
	CrtnDay  string `json:"crtn_day"`
}

// PermitLocation is the site-location permit record.
type PermitLocation struct {
	BldName   string `json:"bld_name"`
	PlatPlc   string `json:"plat_plc"`
	Jimok     string `json:"jimok_cd_nm"`
	SigunguNm string `json:"sigungu_nm"`
	BjdongNm  string `json:"bjdong_nm"`
	HjdongNm  string `json:"hjdong_nm"`
	RoadNm    string `json:"road_nm"`
	Bun       string `json:"bun"`
	Ji        string `json:"ji"`
	CrtnDay   string `json:"crtn_day"`
}

// PermitHousing is the housing-type permit record.
type PermitHousing struct {
	BldName     string `json:"bld_name"`
	PlatPlc     string `json:"plat_plc"`
	HousingType string `json:"hs_tp_cd_nm"`
	HhldCnt     string `json:"hhld_cnt"`
	FmlyCnt     string `json:"fmly_cnt"`
	CrtnDay     string `json:"crtn_day"`
}
