package datasets

import (
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// Each mapper probes the gateway's current English field names first and
// falls back to the legacy Korean tag names still returned by older
// service versions.

func dealDate(rec molit.Record) string {
	return molit.MakeDate(
		rec.Get("dealYear", "년"),
		rec.Get("dealMonth", "월"),
		rec.Get("dealDay", "일"),
	)
}

// MapAptTrade maps one apartment sale record.
func MapAptTrade(rec molit.Record) domain.AptTrade {
	amountRaw := rec.Get("dealAmount", "거래금액")
	return domain.AptTrade{
		AptName:       rec.Get("aptNm", "아파트"),
		Amount:        molit.ParseAmount(amountRaw),
		AmountRaw:     amountRaw,
		AreaM2:        rec.Get("excluUseAr", "전용면적"),
		Floor:         rec.Get("floor", "층"),
		BuildYear:     rec.Get("buildYear", "건축년도"),
		Dong:          rec.Get("umdNm", "법정동"),
		Jibun:         rec.Get("jibun", "지번"),
		DealDate:      dealDate(rec),
		DealType:      rec.Get("dealingGbn", "거래유형"),
		AgentLocation: rec.Get("estateAgentSggNm", "중개사소재지"),
	}
}

// MapOffiTrade maps one officetel sale record.
func MapOffiTrade(rec molit.Record) domain.OffiTrade {
	amountRaw := rec.Get("dealAmount", "거래금액")
	return domain.OffiTrade{
		OffiName:  rec.Get("offiNm", "오피스텔"),
		Amount:    molit.ParseAmount(amountRaw),
		AmountRaw: amountRaw,
		AreaM2:    rec.Get("excluUseAr", "전용면적"),
		Floor:     rec.Get("floor", "층"),
		BuildYear: rec.Get("buildYear", "건축년도"),
		Dong:      rec.Get("umdNm", "법정동"),
		Jibun:     rec.Get("jibun", "지번"),
		DealDate:  dealDate(rec),
	}
}

// MapVillaTrade maps one row-house / multi-household sale record.
func MapVillaTrade(rec molit.Record) domain.VillaTrade {
	amountRaw := rec.Get("dealAmount", "거래금액")
	return domain.VillaTrade{
		HouseName: rec.Get("mhouseNm", "연립다세대"),
		Amount:    molit.ParseAmount(amountRaw),
		AmountRaw: amountRaw,
		AreaM2:    rec.Get("excluUseAr", "전용면적"),
		Floor:     rec.Get("floor", "층"),
		BuildYear: rec.Get("buildYear", "건축년도"),
		Dong:      rec.Get("umdNm", "법정동"),
		Jibun:     rec.Get("jibun", "지번"),
		DealDate:  dealDate(rec),
		DealType:  rec.Get("dealingGbn", "거래유형"),
	}
}

// MapHouseTrade maps one detached / multi-family house sale record.
func MapHouseTrade(rec molit.Record) domain.HouseTrade {
	amountRaw := rec.Get("dealAmount", "거래금액")
	return domain.HouseTrade{
		HouseType:  rec.Get("houseType", "주택유형"),
		Amount:     molit.ParseAmount(amountRaw),
		AmountRaw:  amountRaw,
		AreaM2:     rec.Get("totalFloorAr", "연면적"),
		LandAreaM2: rec.Get("platArea", "대지면적"),
		FloorCount: rec.Get("floorCount", "층"),
		BuildYear:  rec.Get("buildYear", "건축년도"),
		Dong:       rec.Get("umdNm", "법정동"),
		Jibun:      rec.Get("jibun", "지번"),
		DealDate:   dealDate(rec),
		DealType:   rec.Get("dealingGbn", "거래유형"),
	}
}

// MapCommercialTrade maps one commercial/office building sale record.
func MapCommercialTrade(rec molit.Record) domain.CommercialTrade {
	amountRaw := rec.Get("dealAmount", "거래금액")
	return domain.CommercialTrade{
		UseType:     rec.Get("useNm", "용도"),
		Amount:      molit.ParseAmount(amountRaw),
		AmountRaw:   amountRaw,
		AreaM2:      rec.Get("dealArea", "건물면적"),
		LandAreaM2:  rec.Get("platArea", "대지면적"),
		Floor:       rec.Get("floor", "층"),
		TotalFloors: rec.Get("totalFloor", "건물층수"),
		BuildYear:   rec.Get("buildYear", "건축년도"),
		Dong:        rec.Get("umdNm", "법정동"),
		Jibun:       rec.Get("jibun", "지번"),
		DealDate:    dealDate(rec),
		DealType:    rec.Get("dealingGbn", "거래유형"),
	}
}
