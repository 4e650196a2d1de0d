// Package notify queues admin email notifications through Redis and delivers
// them over SMTP from a background worker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
	"github.com/Logananthan283/Veyil-Gaming/internal/metrics"
	"github.com/Logananthan283/Veyil-Gaming/internal/timeutil"
)

const (
	queueKey  = "notifications"
	failedKey = "notifications:failed"
)

type Job struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis      *redis.Client
	from       string
	fromName   string
	adminEmail string
	smtpHost   string
	smtpPort   string
	smtpUser   string
	smtpPass   string
}

func New(fromEmail, fromName, adminEmail, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:       fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		smtpUser:   smtpUser,
		smtpPass:   smtpPass,
	}
}

func (s *Service) enqueue(ctx context.Context, subject, body string) error {
	job := Job{
		To:      s.adminEmail,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal notification: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue notification %q: %v", subject, err)
		return err
	}

	logger.Infof("Notification queued: %s", subject)
	return nil
}

// BookingCreated mails the admin a summary of a fresh booking.
func (s *Service) BookingCreated(ctx context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("New booking: %s on %s", b.PlayerName, b.Console)
	body := fmt.Sprintf(`A new booking was recorded.

Player: %s (%s)
Console: %s
Players: %d
Date: %s
Start: %s
Hours: %.1f
Amount: %.2f (%s)`,
		b.PlayerName, b.Mobile, b.Console, b.Players, b.Date,
		timeutil.Display12h(b.StartTime), b.Hours, b.FinalAmount, b.PaymentMode)
	return s.enqueue(ctx, subject, body)
}

// SessionsCompleted mails the admin about sessions the watcher closed.
func (s *Service) SessionsCompleted(ctx context.Context, bookings []booking.Booking) error {
	var lines []string
	for i := range bookings {
		b := &bookings[i]
		lines = append(lines, fmt.Sprintf("- %s on %s (%s, %.1fh)",
			b.PlayerName, b.Console, timeutil.Display12h(b.StartTime), b.Hours))
	}
	subject := fmt.Sprintf("%d session(s) completed", len(bookings))
	body := "The following sessions ended and were marked completed:\n\n" +
		strings.Join(lines, "\n")
	return s.enqueue(ctx, subject, body)
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}
	metrics.SetNotificationQueueDepth(s.QueueLength(ctx))

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending notification to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send notification to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying notification to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Notification to %s failed after 3 attempts", job.To)
			s.saveFailed(job, err)
		}
		return
	}

	logger.Infof("Notification sent to %s", job.To)
}

func (s *Service) sendNow(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Notification moved to failed queue: %s", job.Subject)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
