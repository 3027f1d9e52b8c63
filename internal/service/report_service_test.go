package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummer struct {
	total int
	err   error
}

func (s stubSummer) SumTotalFee() (int, error) { return s.total, s.err }

func TestLogRevenueSnapshot(t *testing.T) {
	reports := NewReportService(stubSummer{total: 25000})
	require.NoError(t, reports.LogRevenueSnapshot())
}

func TestLogRevenueSnapshotWrapsStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	reports := NewReportService(stubSummer{err: boom})

	err := reports.LogRevenueSnapshot()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
