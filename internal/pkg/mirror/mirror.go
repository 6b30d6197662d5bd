// Package mirror provides a best-effort sink for copies of the store's JSON
// documents. Mirroring never blocks or fails the caller: errors are logged
// and swallowed.
package mirror

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/swajayfour/swajay_go_server/internal/pkg/oss"
	"github.com/swajayfour/swajay_go_server/internal/pkg/queue"
)

// Sink accepts named JSON documents on a fire-and-forget basis.
type Sink interface {
	TrySave(name string, payload interface{})
}

// NewNoop returns a sink that discards everything. Used when no mirror is
// configured.
func NewNoop() Sink {
	return noopSink{}
}

type noopSink struct{}

func (noopSink) TrySave(string, interface{}) {}

// NewOSS returns a sink that uploads documents directly, in the background.
func NewOSS(client *oss.Client) Sink {
	return &ossSink{client: client}
}

type ossSink struct {
	client *oss.Client
}

func (s *ossSink) TrySave(name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Mirror %s: marshal failed: %v", name, err)
		return
	}

	go func() {
		if err := s.client.UploadJSON(name, data); err != nil {
			log.Printf("Mirror %s: upload failed: %v", name, err)
		}
	}()
}

// NewQueued returns a sink that defers uploads to the worker via redis.
func NewQueued(q *queue.Queue) Sink {
	return &queuedSink{queue: q}
}

type queuedSink struct {
	queue *queue.Queue
}

func (s *queuedSink) TrySave(name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Mirror %s: marshal failed: %v", name, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	job := &queue.MirrorJob{
		Name:     name,
		Payload:  data,
		QueuedAt: time.Now().UTC(),
	}
	if err := s.queue.Push(ctx, job); err != nil {
		log.Printf("Mirror %s: enqueue failed: %v", name, err)
	}
}
