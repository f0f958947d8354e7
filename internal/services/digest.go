package services

import (
	"fmt"
	"strings"

	"github.com/praxishq/praxis/pkg/logger"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DigestService runs a scheduled end-of-day team workload digest and
// records it in the system log for the morning review.
type DigestService struct {
	workload  *WorkloadService
	scheduler *cron.Cron
	entryID   cron.EntryID
	log       zerolog.Logger
}

func NewDigestService(workload *WorkloadService) *DigestService {
	return &DigestService{
		workload: workload,
		log:      logger.Module("digest"),
	}
}

// StartScheduler schedules the digest at the given "HH:MM" local time.
func (s *DigestService) StartScheduler(digestTime string) error {
	s.scheduler = cron.New()

	hour, minute := "18", "0"
	parts := strings.Split(digestTime, ":")
	if len(parts) == 2 {
		hour, minute = parts[0], parts[1]
	}
	cronExpr := fmt.Sprintf("%s %s * * *", minute, hour)

	entryID, err := s.scheduler.AddFunc(cronExpr, func() {
		if err := s.Run(); err != nil {
			s.log.Error().Err(err).Msg("digest run failed")
		}
	})
	if err != nil {
		return err
	}
	s.entryID = entryID

	s.scheduler.Start()
	s.log.Info().Str("at", digestTime).Str("cron", cronExpr).Msg("digest scheduled")
	return nil
}

func (s *DigestService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Run computes the team overview once and records the outcome. A failed
// batch is recorded as unavailable; no partial digest is written.
func (s *DigestService) Run() error {
	overview, err := s.workload.TeamMetrics()
	if err != nil {
		LogError("digest", "daily_digest", "team workload unavailable: "+err.Error(), nil)
		return err
	}

	msg := fmt.Sprintf("team avg %.1f%%, %d available, %d critical, %d urgent tasks",
		overview.Stats.AverageScore, overview.Stats.AvailableCount,
		overview.Stats.CriticalCount, overview.Stats.TotalUrgentTasks)
	LogInfo("digest", "daily_digest", msg, overview.Stats)
	s.log.Info().Msg(msg)
	return nil
}
