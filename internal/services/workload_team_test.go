package services

import (
	"math"
	"testing"
)

func TestComputeTeamStats(t *testing.T) {
	metrics := map[uint]*WorkloadMetrics{
		1: {WorkloadScore: 30, ManagerRisk: ManagerRisk{Level: RiskLow}, UrgentTasksCount: 0},
		2: {WorkloadScore: 70, ManagerRisk: ManagerRisk{Level: RiskMedium}, UrgentTasksCount: 2},
		3: {WorkloadScore: 95, ManagerRisk: ManagerRisk{Level: RiskHigh}, UrgentTasksCount: 1},
		4: {WorkloadScore: 145, ManagerRisk: ManagerRisk{Level: RiskCritical}, UrgentTasksCount: 4},
	}

	stats := ComputeTeamStats(metrics)

	if !almostEqual(stats.AverageScore, 85) {
		t.Errorf("AverageScore = %f, expected 85", stats.AverageScore)
	}
	if stats.AvailableCount != 2 {
		t.Errorf("AvailableCount = %d, expected 2 (low and medium)", stats.AvailableCount)
	}
	if stats.CriticalCount != 1 {
		t.Errorf("CriticalCount = %d, expected 1", stats.CriticalCount)
	}
	if stats.TotalUrgentTasks != 7 {
		t.Errorf("TotalUrgentTasks = %d, expected 7", stats.TotalUrgentTasks)
	}
}

func TestComputeTeamStats_EmptyTeam(t *testing.T) {
	stats := ComputeTeamStats(nil)

	if stats.AverageScore != 0 || math.IsNaN(stats.AverageScore) {
		t.Errorf("AverageScore = %f, expected a defined 0 for an empty team", stats.AverageScore)
	}
	if stats.AvailableCount != 0 || stats.CriticalCount != 0 || stats.TotalUrgentTasks != 0 {
		t.Errorf("counts = %+v, expected all zero", stats)
	}
}

func TestComputeTeamStats_CountsFollowManagerRisk(t *testing.T) {
	// A low raw score escalated to critical by urgent work must count as
	// critical, not available.
	metrics := map[uint]*WorkloadMetrics{
		1: {WorkloadScore: 20, ManagerRisk: ManagerRisk{Level: RiskCritical}, UrgentTasksCount: 3},
	}

	stats := ComputeTeamStats(metrics)
	if stats.AvailableCount != 0 {
		t.Errorf("AvailableCount = %d, expected 0", stats.AvailableCount)
	}
	if stats.CriticalCount != 1 {
		t.Errorf("CriticalCount = %d, expected 1", stats.CriticalCount)
	}
}
