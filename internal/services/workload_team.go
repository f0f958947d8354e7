package services

// ComputeTeamStats reduces all employees' metrics into team-wide numbers.
// With zero employees every field is a defined zero, never NaN.
func ComputeTeamStats(metrics map[uint]*WorkloadMetrics) TeamStats {
	stats := TeamStats{}
	if len(metrics) == 0 {
		return stats
	}

	total := 0.0
	for _, m := range metrics {
		total += m.WorkloadScore
		switch m.ManagerRisk.Level {
		case RiskLow, RiskMedium:
			stats.AvailableCount++
		case RiskCritical:
			stats.CriticalCount++
		}
		stats.TotalUrgentTasks += m.UrgentTasksCount
	}
	stats.AverageScore = total / float64(len(metrics))

	return stats
}
