package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"churchconnect/internal/models"
)

// BulkEmailService sends one message to many members in the background.
type BulkEmailService struct {
	sender  EmailSenderInterface
	from    string
	delay   time.Duration
	metrics MetricsRecorderInterface
	logger  *slog.Logger

	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.BulkEmailJob
	wg   sync.WaitGroup
}

func NewBulkEmailService(
	sender EmailSenderInterface,
	from string,
	delay time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *BulkEmailService {
	return &BulkEmailService{
		sender:  sender,
		from:    from,
		delay:   delay,
		metrics: metrics,
		logger:  logger,
		jobs:    make(map[uuid.UUID]*models.BulkEmailJob),
	}
}

// Start validates req and schedules the send. The job stops early if ctx is
// cancelled before delivery starts.
func (s *BulkEmailService) Start(ctx context.Context, req models.BulkEmailRequest, recipients []string) (models.BulkEmailJob, error) {
	if err := req.Validate(); err != nil {
		return models.BulkEmailJob{}, err
	}
	if len(recipients) == 0 {
		return models.BulkEmailJob{}, models.NewFieldError("recipients", "no members match the chosen audience")
	}

	job := &models.BulkEmailJob{
		ID:         uuid.New(),
		Audience:   req.Audience,
		Category:   req.Category,
		Subject:    req.Subject,
		Recipients: len(recipients),
		Status:     models.BulkEmailStatusSending,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	snapshot := *job
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.deliver(ctx, req, recipients)
		s.finish(job.ID, err)
	}()

	return snapshot, nil
}

func (s *BulkEmailService) deliver(ctx context.Context, req models.BulkEmailRequest, recipients []string) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	body := MessageHTML(req.Message)
	reqs := make([]SendRequest, 0, len(recipients))
	for _, to := range recipients {
		reqs = append(reqs, SendRequest{
			To:      []string{to},
			From:    s.from,
			Subject: req.Subject,
			HTML:    body,
		})
	}

	_, err := s.sender.SendBatch(ctx, reqs)
	return err
}

func (s *BulkEmailService) finish(id uuid.UUID, err error) {
	s.mu.Lock()
	job := s.jobs[id]
	job.Finish(err)
	status := job.Status
	recipients := job.Recipients
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("bulk email failed", "job_id", id, "recipients", recipients, "error", err)
	} else {
		s.logger.Info("bulk email sent", "job_id", id, "recipients", recipients)
	}
	if s.metrics != nil {
		s.metrics.IncrementCounter("bulk_email", map[string]string{"status": status})
	}
}

func (s *BulkEmailService) Job(id uuid.UUID) (models.BulkEmailJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.BulkEmailJob{}, false
	}
	return *job, true
}

// Wait blocks until every started job has finished.
func (s *BulkEmailService) Wait() {
	s.wg.Wait()
}
