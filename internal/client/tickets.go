package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

// TicketClient talks to the support gateway's ticket endpoints.
type TicketClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTicketClient(baseURL, apiKey string, timeout time.Duration) *TicketClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TicketClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *TicketClient) Create(ctx context.Context, ticket domain.CreateTicketRequest) (uuid.UUID, error) {
	body, err := json.Marshal(ticket)
	if err != nil {
		return uuid.Nil, e.Wrap("client.CreateTicket", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/tickets", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, e.Wrap("client.CreateTicket", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return uuid.Nil, e.Wrap("client.CreateTicket", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return uuid.Nil, fmt.Errorf("client.CreateTicket: unexpected status %s", resp.Status)
	}

	var out domain.CreateTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return uuid.Nil, e.Wrap("client.CreateTicket", err)
	}

	id, err := uuid.Parse(out.ID)
	if err != nil {
		return uuid.Nil, e.Wrap("client.CreateTicket", err)
	}
	return id, nil
}

// List fetches a ticket page; the caller typically refreshes the list
// right after a successful submission.
func (c *TicketClient) List(ctx context.Context, page, limit int) (domain.ListTicketsResponse, error) {
	var out domain.ListTicketsResponse

	url := c.baseURL + "/api/v1/admin/tickets?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return out, e.Wrap("client.ListTickets", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return out, e.Wrap("client.ListTickets", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, fmt.Errorf("client.ListTickets: unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, e.Wrap("client.ListTickets", err)
	}
	return out, nil
}
