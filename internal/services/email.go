package services

import (
	"fmt"

	"go.uber.org/zap"

	"cognitrack/internal/models"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendReminderEmail simulates sending a daily test reminder.
func (s *EmailService) SendReminderEmail(user models.User) {
	s.log.Info("Sending reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	// A real deployment would plug an SMTP client in here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Reminder to complete your daily cognitive test\nHi %s,\nThis is a friendly reminder to take today's test so your supplement analysis stays on track.\n\n", user.Email, user.FirstName)
}
