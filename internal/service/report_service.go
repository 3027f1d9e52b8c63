package service

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RevenueSummer is the slice of the store the report job needs.
type RevenueSummer interface {
	SumTotalFee() (int, error)
}

type ReportService struct {
	Store RevenueSummer
}

func NewReportService(store RevenueSummer) *ReportService {
	return &ReportService{Store: store}
}

// LogRevenueSnapshot reads the accumulated revenue and logs it. Run
// periodically from the cron scheduler; it never mutates anything.
func (s *ReportService) LogRevenueSnapshot() error {
	total, err := s.Store.SumTotalFee()
	if err != nil {
		return fmt.Errorf("revenue snapshot: failed to sum fees: %w", err)
	}
	logrus.WithField("total_pendapatan", total).Info("revenue snapshot")
	return nil
}
