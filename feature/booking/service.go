package booking

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"quest-zone/feature/content"
)

// ErrInvalidSubmission wraps every validation failure of a booking request.
var ErrInvalidSubmission = errors.New("invalid booking submission")

// Request is one booking form submission.
type Request struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Quest   string `json:"quest"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Players string `json:"players"`
	Comment string `json:"comment"`
}

// Confirmation acknowledges an accepted submission.
type Confirmation struct {
	Status      string `json:"status"`
	Quest       string `json:"quest"`
	Time        string `json:"time"`
	WhatsappUrl string `json:"whatsappUrl"`
}

// Service validates booking submissions against the live site content.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new booking service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Submit validates the request and acknowledges it. The confirmation carries
// the venue's WhatsApp link so the client can finish the conversation there.
func (s *Service) Submit(req Request) (Confirmation, error) {
	c := s.store.Content()

	if strings.TrimSpace(req.Name) == "" {
		return Confirmation{}, fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	}
	if !validPhone(req.Phone) {
		return Confirmation{}, fmt.Errorf("%w: phone number looks wrong", ErrInvalidSubmission)
	}
	if strings.TrimSpace(req.Date) == "" {
		return Confirmation{}, fmt.Errorf("%w: date is required", ErrInvalidSubmission)
	}
	if !contains(content.QuestOptions(c), req.Quest) {
		return Confirmation{}, fmt.Errorf("%w: unknown quest %q", ErrInvalidSubmission, req.Quest)
	}
	if !contains(c.Booking.TimeSlots, req.Time) {
		return Confirmation{}, fmt.Errorf("%w: unknown time slot %q", ErrInvalidSubmission, req.Time)
	}
	if !contains(c.Booking.PlayerCounts, req.Players) {
		return Confirmation{}, fmt.Errorf("%w: unknown player count %q", ErrInvalidSubmission, req.Players)
	}

	s.logger.Info("booking request accepted",
		zap.String("quest", req.Quest),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("players", req.Players))

	return Confirmation{
		Status:      "accepted",
		Quest:       req.Quest,
		Time:        req.Time,
		WhatsappUrl: c.SiteSettings.WhatsAppURL(),
	}, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// validPhone accepts numbers with an optional leading plus and at least
// ten digits, ignoring common separators.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 10
}
