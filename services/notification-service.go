package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
)

// NotificationService posts planning events to an optional external webhook.
// Delivery is best-effort: failures trip the breaker and are logged, never
// surfaced to the caller.
type NotificationService struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewNotificationService(url string, client *http.Client) *NotificationService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	return &NotificationService{url: url, client: client, breaker: breaker}
}

// Notify sends one event to the webhook. A missing URL disables delivery.
func (s *NotificationService) Notify(event string, payload any) {
	if s == nil || s.url == "" {
		return
	}

	body, err := json.Marshal(map[string]any{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		logging.Logger.Warnf("Event ID: NOTIFY_ENCODE_FAILED, Description: Failed to encode %s event: %v", event, err)
		return
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return nil, &webhookError{status: resp.StatusCode}
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Warnf("Event ID: NOTIFY_FAILED, Description: Failed to deliver %s event: %v", event, err)
	}
}

type webhookError struct {
	status int
}

func (e *webhookError) Error() string {
	return http.StatusText(e.status)
}
