package services

import (
	"context"
	"log"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	requestRepo      repositories.CreditRequestRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	requestRepo repositories.CreditRequestRepository,
) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		requestRepo:      requestRepo,
		cron:             cron.New(),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// 03:00 daily: purge expired and revoked refresh tokens
	s.cron.AddFunc("0 3 * * *", s.purgeDeadTokens)

	// 08:30 daily: remind operators about the pending review queue
	s.cron.AddFunc("30 8 * * *", s.logPendingRequests)

	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) purgeDeadTokens() {
	deleted, err := s.refreshTokenRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("❌ Token purge error: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Purged %d dead refresh tokens", deleted)
	}
}

func (s *CronService) logPendingRequests() {
	count, err := s.requestRepo.CountByStatus(context.Background(), models.CreditStatusPending)
	if err != nil {
		log.Printf("❌ Pending request count error: %v", err)
		return
	}
	if count > 0 {
		log.Printf("⏰ %d credit requests awaiting review", count)
	}
}
