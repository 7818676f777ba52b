package service

import (
	"database/sql"
	"fmt"
	"pmsdesk/internal/category"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/repository"
)

// categoryStore routes category-agnostic operations to the repository that
// owns the category's tables.
type categoryStore struct {
	MasterSheetRepository       repository.MasterSheetRepository
	EquityHoldingRepository     repository.EquityHoldingRepository
	MutualFundHoldingRepository repository.MutualFundHoldingRepository
}

func (s categoryStore) deleteByQcode(tx *sql.Tx, c category.Category, stage domain.Stage, qcode string) (int64, error) {
	switch c {
	case category.MasterSheet:
		return s.MasterSheetRepository.DeleteByQcode(tx, stage, qcode)
	case category.EquityHolding:
		return s.EquityHoldingRepository.DeleteByQcode(tx, stage, qcode)
	case category.MutualFundHolding:
		return s.MutualFundHoldingRepository.DeleteByQcode(tx, stage, qcode)
	}
	return 0, fmt.Errorf("unsupported category %s", c)
}

func (s categoryStore) deleteBetween(tx *sql.Tx, c category.Category, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error) {
	switch c {
	case category.MasterSheet:
		return s.MasterSheetRepository.DeleteBetween(tx, stage, qcode, dates)
	case category.EquityHolding:
		return s.EquityHoldingRepository.DeleteBetween(tx, stage, qcode, dates)
	case category.MutualFundHolding:
		return s.MutualFundHoldingRepository.DeleteBetween(tx, stage, qcode, dates)
	}
	return 0, fmt.Errorf("unsupported category %s", c)
}
