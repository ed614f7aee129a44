package domain

// ComplexListing is one entry of a sigungu apartment-complex list.
type ComplexListing struct {
	KaptCode string `json:"kaptCode"`
	KaptName string `json:"kaptName"`
	NormName string `json:"kaptName_norm"`
	BjdCode  string `json:"bjdCode"`
	Addr     string `json:"addr"`
}

// ComplexDetail is per-complex basis info. A detail fetched after a soft
// sub-request failure carries only KaptCode; every other field stays empty.
type ComplexDetail struct {
	KaptCode  string `json:"kaptCode"`
	Units     string `json:"units,omitempty"`
	DongCnt   string `json:"dong_cnt,omitempty"`
	FloorMax  string `json:"floor_max,omitempty"`
	FloorBase string `json:"floor_base,omitempty"`
	UseDate   string `json:"use_date,omitempty"`
	Heat      string `json:"heat,omitempty"`
	Mgmt      string `json:"mgmt,omitempty"`
	Builder   string `json:"builder,omitempty"`
}

// ComplexInfo combines a listing with its detail for the enrichment map.
type ComplexInfo struct {
	KaptCode  string `json:"kaptCode"`
	KaptName  string `json:"kaptName"`
	BjdCode   string `json:"bjdCode"`
	Addr      string `json:"addr"`
	Units     string `json:"units,omitempty"`
	DongCnt   string `json:"dong_cnt,omitempty"`
	FloorMax  string `json:"floor_max,omitempty"`
	FloorBase string `json:"floor_base,omitempty"`
	UseDate   string `json:"use_date,omitempty"`
	Heat      string `json:"heat,omitempty"`
	Mgmt      string `json:"mgmt,omitempty"`
	Builder   string `json:"builder,omitempty"`
}
