// The worker drains the mirror queue: it pops snapshot jobs pushed by the
// server and uploads them to the configured OSS bucket. Upload failures are
// logged and the job is dropped; the next snapshot supersedes it anyway.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swajayfour/swajay_go_server/config"
	"github.com/swajayfour/swajay_go_server/internal/database"
	"github.com/swajayfour/swajay_go_server/internal/pkg/oss"
	"github.com/swajayfour/swajay_go_server/internal/pkg/queue"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Mirror.Endpoint == "" {
		log.Fatal("Mirror is not configured, nothing to do")
	}
	if cfg.Queue.MirrorQueue == "" {
		log.Fatal("queue.mirror_queue is not configured")
	}

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}

	ossClient, err := oss.NewClient(&cfg.Mirror)
	if err != nil {
		log.Fatalf("Failed to create OSS client: %v", err)
	}

	q := queue.NewQueue(rdb, cfg.Queue.MirrorQueue)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down worker")
		cancel()
	}()

	log.Printf("Mirror worker started, queue: %s", cfg.Queue.MirrorQueue)

	for {
		job, err := q.Pop(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Failed to pop mirror job: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			if ctx.Err() != nil {
				return
			}
			continue
		}

		if err := ossClient.UploadJSON(job.Name, job.Payload); err != nil {
			log.Printf("Failed to mirror %s: %v", job.Name, err)
			continue
		}
		log.Printf("Mirrored %s (%d bytes)", job.Name, len(job.Payload))
	}
}
