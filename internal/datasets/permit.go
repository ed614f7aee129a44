package datasets

import (
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// MapPermitBasis maps one basic-outline permit record.
func MapPermitBasis(rec molit.Record) domain.PermitBasis {
	return domain.PermitBasis{
		BldName:      rec.Get("bldNm"),
		PlatPlc:      rec.Get("platPlc"),
		MainPurps:    rec.Get("mainPurpsCdNm"),
		Strct:        rec.Get("strctCdNm"),
		Roof:         rec.Get("roofCdNm"),
		PlatArea:     rec.Get("platArea"),
		ArchArea:     rec.Get("archArea"),
		BcRat:        rec.Get("bcRat"),
		TotArea:      rec.Get("totArea"),
		VlRatFlrArea: rec.Get("vlratFlrArea"),
		VlRat:        rec.Get("vlRat"),
		GndFlrCnt:    rec.Get("grndFlrCnt"),
		UndFlrCnt:    rec.Get("ugrndFlrCnt"),
		HoCnt:        rec.Get("hoCnt"),
		HhldCnt:      rec.Get("hhldCnt"),
		FmlyCnt:      rec.Get("fmlyCnt"),
		MainBldCnt:   rec.Get("mainBldCnt"),
		AtchBldCnt:   rec.Get("atchBldCnt"),
		ArchPmsDay:   rec.Get("archPmsDay"),
		StcnsDay:     rec.Get("stcnsDay"),
		UseAprDay:    rec.Get("useAprDay"),
		CrtnDay:      rec.Get("crtnDay"),
	}
}

// MapPermitParking maps one parking-lot permit record. The outdoor and
// indoor counts each have an older and a newer upstream spelling.
func MapPermitParking(rec molit.Record) domain.PermitParking {
	return domain.PermitParking{
		BldName:        rec.Get("bldNm"),
		PlatPlc:        rec.Get("platPlc"),
		PklotKind:      rec.Get("pklotCdNm"),
		AutoPrkngCnt:   rec.Get("autoPrkngCnt"),
		MchngPrkngCnt:  rec.Get("mchngPrkngCnt"),
		OutdorPrkngCnt: rec.Get("outdorMechPrkngCnt", "outdorPrkngCnt"),
		IndrPrkngCnt:   rec.Get("indrAutoMechPrkngCnt", "indrPrkngCnt"),
		CrtnDay:        rec.Get("crtnDay"),
	}
}

// MapPermitZone maps one land-use zone/district/area permit record.
func MapPermitZone(rec molit.Record) domain.PermitZone {
	return domain.PermitZone{
		BldName:  rec.Get("bldNm"),
		PlatPlc:  rec.Get("platPlc"),
		Jiyuk:    rec.Get("jiyukCdNm"),
		Jigu:     rec.Get("jiguCdNm"),
		Guyuk:    rec.Get("guyukCdNm"),
		EtcJiyuk: rec.Get("etcJiyukCd"),
		EtcJigu:  rec.Get("etcJiguCd"),
		CrtnDay:  rec.Get("crtnDay"),
	}
}

// MapPermitLocation maps one site-location permit record.
func MapPermitLocation(rec molit.Record) domain.PermitLocation {
	return domain.PermitLocation{
		BldName:   rec.Get("bldNm"),
		PlatPlc:   rec.Get("platPlc"),
		Jimok:     rec.Get("jimokCdNm"),
		SigunguNm: rec.Get("sigunguNm"),
		BjdongNm:  rec.Get("bjdongNm"),
		HjdongNm:  rec.Get("hjdongNm"),
		RoadNm:    rec.Get("newPlatPlc", "roadNm"),
		Bun:       rec.Get("bun"),
		Ji:        rec.Get("ji"),
		CrtnDay:   rec.Get("crtnDay"),
	}
}

// MapPermitHousing maps one housing-type permit record.
func MapPermitHousing(rec molit.Record) domain.PermitHousing {
	return domain.PermitHousing{
		BldName:     rec.Get("bldNm"),
		PlatPlc:     rec.Get("platPlc"),
		HousingType: rec.Get("hsTpCdNm"),
		HhldCnt:     rec.Get("hhldCnt"),
		FmlyCnt:     rec.Get("fmlyCnt"),
		CrtnDay:     rec.Get("crtnDay"),
	}
}
