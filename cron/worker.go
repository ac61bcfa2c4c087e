package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shipquote/config"
	"shipquote/models"
	"shipquote/services/shipment"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitShipmentWorker runs the async notification worker in background.
func InitShipmentWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shipment.TypeShipmentBooked, handleShipmentBookedTask(logger))

	// Start async worker with retry logic
	go func() {
		log.Println("[ShipmentWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ShipmentWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ShipmentWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleShipmentBookedTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ShipmentBookedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ShipmentWorker] Invalid payload: %v", err)
			return err
		}

		// Downstream notification dispatch (email/push) hangs off this event.
		logger.Info("shipment booked",
			zap.String("shipment", p.ShipmentID),
			zap.String("user", p.UserID),
			zap.String("provider", p.Provider),
			zap.String("pickupDate", p.PickupDate))
		return nil
	}
}
