package cron

import (
	"context"
	"log"
	"time"

	"webimmo/config"
	"webimmo/services/reviews"

	"github.com/hibiken/asynq"
)

const TypeReviewSync = "reviews:sync"

// InitReviewSyncWorker runs the async worker and the periodic scheduler in
// background. The scheduler enqueues one sync task per interval; the worker
// executes it. Failures are logged only; the next tick is the retry.
func InitReviewSyncWorker(reviewSvc reviews.ReviewService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReviewSync, handleReviewSyncTask(reviewSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReviewSyncWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReviewSyncWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReviewSyncWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Register the periodic sync entry.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		schedule := config.AppConfig.ReviewSyncSchedule
		if schedule == "" {
			schedule = "@every 24h"
		}
		if _, err := scheduler.Register(schedule, asynq.NewTask(TypeReviewSync, nil)); err != nil {
			log.Printf("[ReviewSyncWorker] Failed to register schedule %q: %v", schedule, err)
			return
		}
		log.Printf("[ReviewSyncWorker] Scheduled review sync: %s", schedule)
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReviewSyncWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleReviewSyncTask(reviewSvc reviews.ReviewService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[ReviewSync] Starting scheduled review sync...")

		result, err := reviewSvc.Sync(ctx)
		if err != nil {
			// Logged only: the scheduled run has no caller to report to and
			// the next tick is the de facto retry.
			log.Printf("[ReviewSync] Sync failed: %v", err)
			return nil
		}

		log.Printf("[ReviewSync] %s", result.Message)
		return nil
	}
}
