package datasets

import (
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// rentAmounts resolves deposit and monthly rent plus the derived lease
// type. There is no upstream lease-type field; a record is a monthly lease
// iff its monthly rent parses to a strictly positive value.
func rentAmounts(rec molit.Record) (deposit *int64, depositRaw string, monthly *int64, monthlyRaw, leaseType string) {
	depositRaw = rec.Get("deposit", "보증금액")
	monthlyRaw = rec.Get("monthlyRent", "월세금액")
	deposit = molit.ParseAmount(depositRaw)
	monthly = molit.ParseAmount(monthlyRaw)
	leaseType = domain.LeaseDepositOnly
	if monthly != nil && *monthly > 0 {
		leaseType = domain.LeaseMonthly
	}
	return
}

// MapAptRent maps one apartment lease record.
func MapAptRent(rec molit.Record) domain.AptRent {
	deposit, depositRaw, monthly, monthlyRaw, leaseType := rentAmounts(rec)
	return domain.AptRent{
		AptName:        rec.Get("aptNm", "아파트"),
		LeaseType:      leaseType,
		Deposit:        deposit,
		DepositRaw:     depositRaw,
		MonthlyRent:    monthly,
		MonthlyRentRaw: monthlyRaw,
		AreaM2:         rec.Get("excluUseAr", "전용면적"),
		Floor:          rec.Get("floor", "층"),
		BuildYear:      rec.Get("buildYear", "건축년도"),
		Dong:           rec.Get("umdNm", "법정동"),
		DealDate:       dealDate(rec),
	}
}

// MapOffiRent maps one officetel lease record.
func MapOffiRent(rec molit.Record) domain.OffiRent {
	deposit, depositRaw, monthly, monthlyRaw, leaseType := rentAmounts(rec)
	return domain.OffiRent{
		OffiName:       rec.Get("offiNm", "오피스텔"),
		LeaseType:      leaseType,
		Deposit:        deposit,
		DepositRaw:     depositRaw,
		MonthlyRent:    monthly,
		MonthlyRentRaw: monthlyRaw,
		AreaM2:         rec.Get("excluUseAr", "전용면적"),
		Floor:          rec.Get("floor", "층"),
		BuildYear:      rec.Get("buildYear", "건축년도"),
		Dong:           rec.Get("umdNm", "법정동"),
		DealDate:       dealDate(rec),
	}
}

// MapVillaRent maps one row-house lease record.
func MapVillaRent(rec molit.Record) domain.VillaRent {
	deposit, depositRaw, monthly, monthlyRaw, leaseType := rentAmounts(rec)
	return domain.VillaRent{
		HouseName:      rec.Get("mhouseNm", "연립다세대"),
		LeaseType:      leaseType,
		Deposit:        deposit,
		DepositRaw:     depositRaw,
		MonthlyRent:    monthly,
		MonthlyRentRaw: monthlyRaw,
		AreaM2:         rec.Get("excluUseAr", "전용면적"),
		Floor:          rec.Get("floor", "층"),
		BuildYear:      rec.Get("buildYear", "건축년도"),
		Dong:           rec.Get("umdNm", "법정동"),
		DealDate:       dealDate(rec),
	}
}

// MapHouseRent maps one detached / multi-family house lease record.
func MapHouseRent(rec molit.Record) domain.HouseRent {
	deposit, depositRaw, monthly, monthlyRaw, leaseType := rentAmounts(rec)
	return domain.HouseRent{
		HouseType:      rec.Get("houseType", "주택유형"),
		LeaseType:      leaseType,
		Deposit:        deposit,
		DepositRaw:     depositRaw,
		MonthlyRent:    monthly,
		MonthlyRentRaw: monthlyRaw,
		AreaM2:         rec.Get("totalFloorAr", "연면적"),
		Dong:           rec.Get("umdNm", "법정동"),
		DealDate:       dealDate(rec),
	}
}
