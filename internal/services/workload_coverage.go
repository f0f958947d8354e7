package services

// analyzeCoverage compares hours required by near-term deadlines against
// hours available in the same window. The ratio is left nil when nothing is
// due inside the horizon: "no deadline pressure" is not the same as zero.
// The ratio is raw and uncapped; presentation-layer capping is a consumer
// concern.
func analyzeCoverage(requiredHours, dailyTarget float64, workDays int) Coverage {
	available := dailyTarget * float64(workDays)

	cov := Coverage{
		RequiredHours:  requiredHours,
		AvailableHours: available,
		CoverageGap:    requiredHours - available,
	}

	if requiredHours > 0 {
		ratio := available / requiredHours * 100
		cov.CoverageRatio = &ratio
	}

	return cov
}
