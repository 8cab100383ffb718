package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
	"liveCrime/pkg/validator"

	"github.com/google/uuid"
)

const recentCacheTTL = 30 * time.Second

type ticketService struct {
	tickets  TicketRepository
	evidence EvidenceRepository
	cache    TicketCache
	alerts   AlertQueue
	logger   *slog.Logger
}

func NewTicketService(
	tickets TicketRepository,
	evidence EvidenceRepository,
	cache TicketCache,
	alerts AlertQueue,
	logger *slog.Logger,
) TicketService {
	return &ticketService{
		tickets:  tickets,
		evidence: evidence,
		cache:    cache,
		alerts:   alerts,
		logger:   logger,
	}
}

func (s *ticketService) Create(ctx context.Context, req domain.CreateTicketRequest) (uuid.UUID, error) {
	s.logger.Info("ticket create START",
		slog.String("type", string(req.Type)),
		slog.String("subject", req.Subject),
	)

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("ticket validation failed", slog.Any("error", err))
		return uuid.Nil, fmt.Errorf("%s: %w", err.Error(), e.ErrInvalidInput)
	}
	if req.CrimeDetails.Location == nil {
		return uuid.Nil, fmt.Errorf("location required: %w", e.ErrInvalidInput)
	}

	ticket := &domain.Ticket{
		ID:           uuid.New(),
		Type:         req.Type,
		Subject:      req.Subject,
		Description:  req.Description,
		Priority:     req.Priority,
		Status:       domain.TicketOpen,
		CrimeDetails: req.CrimeDetails,
		CreatedAt:    time.Now().UTC(),
	}
	// live-crime tickets are HIGH regardless of what the client sent
	if ticket.Type == domain.TicketLiveCrime {
		ticket.Priority = domain.PriorityHigh
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		s.logger.Error("ticket insert failed", slog.Any("error", err))
		return uuid.Nil, err
	}

	if urls := req.CrimeDetails.EvidenceURLs; len(urls) > 0 {
		if err := s.evidence.MarkReferenced(ctx, ticket.ID, urls); err != nil {
			s.logger.Error("mark evidence referenced failed",
				slog.String("ticket_id", ticket.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("ticket cache invalidate failed", slog.Any("error", err))
	}

	if ticket.Priority == domain.PriorityHigh {
		payload := domain.AlertPayload{
			TicketID:   ticket.ID,
			Category:   ticket.CrimeDetails.Category,
			InProgress: ticket.CrimeDetails.InProgress,
			Location:   ticket.CrimeDetails.Location,
			CreatedAt:  ticket.CreatedAt,
		}
		if err := s.alerts.Enqueue(ctx, payload); err != nil {
			s.logger.Error("enqueue alert failed", slog.Any("error", err))
		} else {
			s.logger.Info("alert enqueued", slog.String("ticket_id", ticket.ID.String()))
		}
	}

	s.logger.Info("ticket create END", slog.String("ticket_id", ticket.ID.String()))
	return ticket.ID, nil
}

func (s *ticketService) List(ctx context.Context, page, limit int) (domain.ListTicketsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	firstPage := page == 1 && limit == 20
	if firstPage {
		cached, err := s.cache.GetRecent(ctx)
		if err != nil {
			s.logger.Warn("ticket cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	tickets, total, err := s.tickets.List(ctx, page, limit)
	if err != nil {
		return domain.ListTicketsResponse{}, err
	}

	resp := domain.ListTicketsResponse{
		Tickets: make([]domain.Ticket, 0, len(tickets)),
		Page:    page,
		Limit:   limit,
		Total:   total,
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, *t)
	}

	if firstPage {
		if err := s.cache.SetRecent(ctx, &resp, recentCacheTTL); err != nil {
			s.logger.Warn("ticket cache write failed", slog.Any("error", err))
		}
	}

	return resp, nil
}

func (s *ticketService) Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	return s.tickets.Get(ctx, id)
}
