package region

import "strings"

// Region is one administrative division and its 5-digit legal-dong prefix
// code, the LAWD_CD / sigunguCd value the gateway filters on.
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// regions lists the nationwide si/gun/gu table in gazetteer order. Names
// carry the province prefix so "서울 강남구" and plain "강남구" both resolve.
var regions = []Region{
	// 서울특별시
	{"서울 종로구", "11110"},
	{"서울 중구", "11140"},
	{"서울 용산구", "11170"},
	{"서울 성동구", "11200"},
	{"서울 광진구", "11215"},
	{"서울 동대문구", "11230"},
	{"서울 중랑구", "11260"},
	{"서울 성북구", "11290"},
	{"서울 강북구", "11305"},
	{"서울 도봉구", "11320"},
	{"서울 노원구", "11350"},
	{"서울 은평구", "11380"},
	{"서울 서대문구", "11410"},
	{"서울 마포구", "11440"},
	{"서울 양천구", "11470"},
	{"서울 강서구", "11500"},
	{"서울 구로구", "11530"},
	{"서울 금천구", "11545"},
	{"서울 영등포구", "11560"},
	{"서울 동작구", "11590"},
	{"서울 관악구", "11620"},
	{"서울 서초구", "11650"},
	{"서울 강남구", "11680"},
	{"서울 송파구", "11710"},
	{"서울 강동구", "11740"},
	// 부산광역시
	{"부산 중구", "26110"},
	{"부산 서구", "26140"},
	{"부산 동구", "26170"},
	{"부산 영도구", "26200"},
	{"부산 부산진구", "26230"},
	{"부산 동래구", "26260"},
	{"부산 남구", "26290"},
	{"부산 북구", "26320"},
	{"부산 해운대구", "26350"},
	{"부산 사하구", "26380"},
	{"부산 금정구", "26410"},
	{"부산 강서구", "26440"},
	{"부산 연제구", "26470"},
	{"부산 수영구", "26500"},
	{"부산 사상구", "26530"},
	{"부산 기장군", "26710"},
	// 대구광역시
	{"대구 중구", "27110"},
	{"대구 동구", "27140"},
	{"대구 서구", "27170"},
	{"대구 남구", "27200"},
	{"대구 북구", "27230"},
	{"대구 수성구", "27260"},
	{"대구 달서구", "27290"},
	{"대구 달성군", "27710"},
	// 인천광역시
	{"인천 중구", "28110"},
	{"인천 동구", "28140"},
	{"인천 미추홀구", "28177"},
	{"인천 연수구", "28185"},
	{"인천 남동구", "28200"},
	{"인천 부평구", "28237"},
	{"인천 계양구", "28245"},
	{"인천 서구", "28260"},
	{"인천 강화군", "28710"},
	// 광주광역시
	{"광주 동구", "29110"},
	{"광주 서구", "29140"},
	{"광주 남구", "29155"},
	{"광주 북구", "29170"},
	{"광주 광산구", "29200"},
	// 대전광역시
	{"대전 동구", "30110"},
	{"대전 중구", "30140"},
	{"대전 서구", "30170"},
	{"대전 유성구", "30200"},
	{"대전 대덕구", "30230"},
	// 울산광역시
	{"울산 중구", "31110"},
	{"울산 남구", "31140"},
	{"울산 동구", "31170"},
	{"울산 북구", "31200"},
	{"울산 울주군", "31710"},
	// 세종특별자치시
	{"세종시", "36110"},
	// 경기도
	{"수원시 장안구", "41111"},
	{"수원시 권선구", "41113"},
	{"수원시 팔달구", "41115"},
	{"수원시 영통구", "41117"},
	{"성남시 수정구", "41131"},
	{"성남시 중원구", "41133"},
	{"성남시 분당구", "41135"},
	{"의정부시", "41150"},
	{"안양시 만안구", "41171"},
	{"안양시 동안구", "41173"},
	{"부천시", "41190"},
	{"광명시", "41210"},
	{"평택시", "41220"},
	{"동두천시", "41250"},
	{"안산시 상록구", "41271"},
	{"안산시 단원구", "41273"},
	{"고양시 덕양구", "41281"},
	{"고양시 일산동구", "41285"},
	{"고양시 일산서구", "41287"},
	{"과천시", "41290"},
	{"구리시", "41310"},
	{"남양주시", "41360"},
	{"오산시", "41370"},
	{"시흥시", "41390"},
	{"군포시", "41410"},
	{"의왕시", "41430"},
	{"하남시", "41450"},
	{"용인시 처인구", "41461"},
	{"용인시 기흥구", "41463"},
	{"용인시 수지구", "41465"},
	{"파주시", "41480"},
	{"이천시", "41500"},
	{"안성시", "41550"},
	{"김포시", "41570"},
	{"화성시", "41590"},
	{"경기 광주시", "41610"},
	{"양주시", "41630"},
	{"포천시", "41650"},
	{"여주시", "41670"},
	// 강원특별자치도
	{"춘천시", "51110"},
	{"원주시", "51130"},
	{"강릉시", "51150"},
	{"속초시", "51210"},
	// 충청북도
	{"청주시 상당구", "43111"},
	{"청주시 서원구", "43112"},
	{"청주시 흥덕구", "43113"},
	{"청주시 청원구", "43114"},
	{"충주시", "43130"},
	{"제천시", "43150"},
	// 충청남도
	{"천안시 동남구", "44131"},
	{"천안시 서북구", "44133"},
	{"공주시", "44150"},
	{"아산시", "44200"},
	{"서산시", "44210"},
	{"당진시", "44270"},
	// 전북특별자치도
	{"전주시 완산구", "52111"},
	{"전주시 덕진구", "52113"},
	{"군산시", "52130"},
	{"익산시", "52140"},
	// 전라남도
	{"목포시", "46110"},
	{"여수시", "46130"},
	{"순천시", "46150"},
	{"나주시", "46170"},
	{"광양시", "46230"},
	// 경상북도
	{"포항시 남구", "47111"},
	{"포항시 북구", "47113"},
	{"경주시", "47130"},
	{"김천시", "47150"},
	{"안동시", "47170"},
	{"구미시", "47190"},
	// 경상남도
	{"창원시 의창구", "48121"},
	{"창원시 성산구", "48123"},
	{"창원시 마산합포구", "48125"},
	{"창원시 마산회원구", "48127"},
	{"창원시 진해구", "48129"},
	{"진주시", "48170"},
	{"통영시", "48220"},
	{"김해시", "48250"},
	{"거제시", "48310"},
	{"양산시", "48330"},
	// 제주특별자치도
	{"제주시", "50110"},
	{"서귀포시", "50130"},
}

// All returns the full region table in gazetteer order.
func All() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// CodeMap returns a name-to-code dictionary. A division whose bare gu/si
// name is nationally unique is keyed without the province prefix, so
// "강남구" resolves directly; shared names such as "중구" keep the prefixed
// form to stay unambiguous.
func CodeMap() map[string]string {
	counts := make(map[string]int)
	for _, r := range regions {
		counts[bareName(r.Name)]++
	}
	out := make(map[string]string, len(regions))
	for _, r := range regions {
		key := bareName(r.Name)
		if counts[key] > 1 {
			key = r.Name
		}
		out[key] = r.Code
	}
	return out
}

func bareName(name string) string {
	if i := strings.LastIndex(name, " "); i >= 0 {
		return name[i+1:]
	}
	return name
}
