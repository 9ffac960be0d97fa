package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/infrastructure/config"
	"plasticos_xpto/internal/usecase/interfaces"
)

const eventExtrusionCompleted = "extrusion_completed"

type payload struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Data      eventData `json:"data"`
	Signature string    `json:"signature,omitempty"`
}

type eventData struct {
	JobOrderID    string  `json:"job_order_id"`
	OrderID       string  `json:"order_id"`
	ProductRef    string  `json:"product_ref"`
	RequiredQty   float64 `json:"required_qty"`
	TotalExtruded float64 `json:"total_extruded"`
	Status        string  `json:"status"`
}

// WebhookNotifier delivers production events to the configured notification
// endpoint: HMAC-SHA256 signed POSTs, retried with exponential backoff on a
// bounded async queue. Delivery is best-effort; the caller never blocks on
// the network and never sees a delivery failure.
type WebhookNotifier struct {
	url        string
	secret     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	queue      chan *payload
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier returns a started notifier. An empty URL yields a
// notifier that drops every event (the collaborator is optional).
func NewWebhookNotifier(cfg config.WebhookConfig) *WebhookNotifier {
	n := &WebhookNotifier{
		url:    cfg.URL,
		secret: cfg.Secret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		queue:      make(chan *payload, cfg.QueueSize),
		stopCh:     make(chan struct{}),
	}
	if n.maxRetries < 1 {
		n.maxRetries = 1
	}

	if n.url == "" {
		log.Printf("[notify][webhook] no webhook url configured; notifications disabled")
		return n
	}

	n.wg.Add(1)
	go n.worker()
	return n
}

// Stop drains the worker. Queued events that have not been sent are dropped.
func (n *WebhookNotifier) Stop() {
	n.stopOnce.Do(func() { close(n.stopCh) })
	n.wg.Wait()
}

func (n *WebhookNotifier) NotifyExtrusionCompleted(_ context.Context, jo entities.JobOrder, totalExtruded float64) {
	if n.url == "" {
		return
	}

	p := &payload{
		Event:     eventExtrusionCompleted,
		Timestamp: time.Now().UTC(),
		Data: eventData{
			JobOrderID:    jo.ID,
			OrderID:       jo.OrderID,
			ProductRef:    jo.ProductRef,
			RequiredQty:   jo.RequiredQty,
			TotalExtruded: totalExtruded,
			Status:        string(jo.Status),
		},
	}

	select {
	case n.queue <- p:
	default:
		log.Printf("[notify][webhook] queue full, dropping event job_order_id=%s", jo.ID)
	}
}

func (n *WebhookNotifier) worker() {
	defer n.wg.Done()

	for {
		select {
		case <-n.stopCh:
			return
		case p := <-n.queue:
			if err := n.sendWithRetry(p); err != nil {
				log.Printf("[notify][webhook] giving up event=%s job_order_id=%s err=%v", p.Event, p.Data.JobOrderID, err)
			}
		}
	}
}

func (n *WebhookNotifier) sendWithRetry(p *payload) error {
	var lastErr error
	for attempt := 1; attempt <= n.maxRetries; attempt++ {
		err := n.send(p)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt < n.maxRetries {
			backoff := n.retryDelay * time.Duration(1<<(attempt-1))
			log.Printf("[notify][webhook] retry %d/%d in %v job_order_id=%s err=%v", attempt, n.maxRetries, backoff, p.Data.JobOrderID, err)
			select {
			case <-n.stopCh:
				return lastErr
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}

func (n *WebhookNotifier) send(p *payload) error {
	dataBytes, err := json.Marshal(p.Data)
	if err != nil {
		return err
	}
	if n.secret != "" {
		p.Signature = sign(dataBytes, n.secret)
	}

	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", p.Event)
	if p.Signature != "" {
		req.Header.Set("X-Webhook-Signature", p.Signature)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("http error: %d", resp.StatusCode)
	}
	return nil
}

func sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
