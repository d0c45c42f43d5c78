package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeThumbnail is the task type processed by the thumbnail worker.
const TypeThumbnail = "thumbnail:generate"

// ThumbnailMaxRetry bounds how often a failed thumbnail job is retried.
const ThumbnailMaxRetry = 3

// ThumbnailPayload identifies the image a thumbnail job works on.
type ThumbnailPayload struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// NewThumbnailTask builds a thumbnail task for the given image.
func NewThumbnailTask(userID, fileID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ThumbnailPayload{UserID: userID, FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("marshal thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeThumbnail, payload, asynq.MaxRetry(ThumbnailMaxRetry)), nil
}

// ParseThumbnailPayload decodes the payload of a thumbnail task.
func ParseThumbnailPayload(t *asynq.Task) (ThumbnailPayload, error) {
	var p ThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal thumbnail payload: %w", err)
	}
	return p, nil
}

// Enqueuer schedules background jobs.
type Enqueuer interface {
	EnqueueThumbnail(ctx context.Context, userID, fileID string) error
}

// Client enqueues tasks into Redis.
type Client struct {
	client *asynq.Client
}

// Ensure Client implements Enqueuer
var _ Enqueuer = (*Client)(nil)

// RedisOpt builds asynq connection options.
func RedisOpt(addr, password string, db int) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
}

// NewClient creates a new queue client.
func NewClient(opt asynq.RedisConnOpt) *Client {
	return &Client{client: asynq.NewClient(opt)}
}

// EnqueueThumbnail schedules thumbnail generation for an uploaded image.
func (c *Client) EnqueueThumbnail(ctx context.Context, userID, fileID string) error {
	task, err := NewThumbnailTask(userID, fileID)
	if err != nil {
		return err
	}
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue thumbnail: %w", err)
	}
	return nil
}

// Close closes the connection to Redis.
func (c *Client) Close() error {
	return c.client.Close()
}
