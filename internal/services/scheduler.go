package services

import (
	"time"

	"go.uber.org/zap"

	"cognitrack/internal/models"
	"cognitrack/internal/repository"
)

// Scheduler sends daily test reminders to users who have not yet completed
// a test today.
type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine, checking once per minute.
func (s *Scheduler) Start() {
	s.log.Info("Starting reminder scheduler...")
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	currentTime := time.Now().UTC().Format("15:04")
	s.log.Debug("Running reminder check", zap.String("utc_time", currentTime))

	users, err := repository.GetUsersForReminder(currentTime)
	if err != nil {
		s.log.Error("Failed to get users for reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		completed, err := repository.HasCompletedTestToday(user.ID)
		if err != nil {
			s.log.Error("Failed to check test completion status", zap.Uint("userID", user.ID), zap.Error(err))
			continue
		}

		if !completed {
			go s.sendReminder(user)
		}
	}
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendReminderEmail(user)
}
