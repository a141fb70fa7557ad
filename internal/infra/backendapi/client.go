package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jetski-rentals/internal/domain/booking"
	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/domain/quiz"
	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/config"
	"jetski-rentals/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client talks to the reservations backend. It is the only writer and
// reader of booking state in this service; everything else renders what
// it returns.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type bookingPayload struct {
	ID            uuid.UUID `json:"id"`
	RideTierID    string    `json:"ride_tier_id"`
	RideDate      string    `json:"ride_date"`
	RideTime      string    `json:"ride_time"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Addons        addons    `json:"addons"`
	Status        string    `json:"status"`
	AmountCents   int       `json:"amount_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type addons struct {
	DroneVideo      bool `json:"drone_video"`
	GoPro           bool `json:"gopro"`
	Wetsuit         bool `json:"wetsuit"`
	BoatRide        bool `json:"boat_ride"`
	BoatHeadcount   int  `json:"boat_headcount,omitempty"`
	ExtraPassengers int  `json:"extra_passengers,omitempty"`
}

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

type contactPayload struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

type quizPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Answers     []int     `json:"answers"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListBookings fetches every booking record.
func (c *Client) ListBookings(ctx context.Context) ([]booking.Booking, error) {
	var payloads []bookingPayload
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &payloads); err != nil {
		return nil, err
	}

	bookings := make([]booking.Booking, 0, len(payloads))
	for _, p := range payloads {
		bookings = append(bookings, p.toDomain())
	}
	return bookings, nil
}

// CreateBooking submits a priced booking and returns the backend's id.
func (c *Client) CreateBooking(ctx context.Context, b booking.Booking) (uuid.UUID, error) {
	var created createdResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", fromDomain(b), &created); err != nil {
		return uuid.Nil, err
	}
	if created.ID == uuid.Nil {
		// The backend assigns ids; keep ours if it echoed nothing.
		return b.ID, nil
	}
	return created.ID, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	path := fmt.Sprintf("/bookings/%s/status", id)
	body := map[string]string{"status": status.String()}
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *Client) SendContactMessage(ctx context.Context, msg commands.ContactMessage) error {
	body := contactPayload{
		Name:       msg.Name,
		Email:      msg.Email,
		Phone:      msg.Phone,
		Message:    msg.Message,
		ReceivedAt: msg.ReceivedAt,
	}
	return c.do(ctx, http.MethodPost, "/contact-messages", body, nil)
}

func (c *Client) SaveQuizSubmission(ctx context.Context, s quiz.Submission) error {
	body := quizPayload{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Answers:     s.Answers,
		Score:       s.Score,
		Total:       s.Total,
		SubmittedAt: s.SubmittedAt,
	}
	return c.do(ctx, http.MethodPost, "/quiz-submissions", body, nil)
}

func (c *Client) ListQuizSubmissions(ctx context.Context) ([]quiz.Submission, error) {
	var payloads []quizPayload
	if err := c.do(ctx, http.MethodGet, "/quiz-submissions", nil, &payloads); err != nil {
		return nil, err
	}

	submissions := make([]quiz.Submission, 0, len(payloads))
	for _, p := range payloads {
		submissions = append(submissions, quiz.Submission{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			Answers:     p.Answers,
			Score:       p.Score,
			Total:       p.Total,
			SubmittedAt: p.SubmittedAt,
		})
	}
	return submissions, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr("encode backend request", err, infra.KindBadResponse)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return infra.WrapGatewayErr("build backend request", err, infra.KindBadResponse)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapGatewayErr("backend request failed", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := fmt.Sprintf("backend responded %d: %s", resp.StatusCode, string(payload))
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return infra.WrapGatewayErr(msg, nil, infra.KindNotFound)
		case resp.StatusCode == http.StatusConflict:
			return infra.WrapGatewayErr(msg, nil, infra.KindConflict)
		case resp.StatusCode >= 500:
			return infra.WrapGatewayErr(msg, nil, infra.KindUnavailable)
		default:
			return infra.WrapGatewayErr(msg, nil, infra.KindBadResponse)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapGatewayErr("decode backend response", err, infra.KindBadResponse)
	}
	return nil
}

func (p bookingPayload) toDomain() booking.Booking {
	return booking.Booking{
		ID:            p.ID,
		RideTierID:    p.RideTierID,
		RideDate:      p.RideDate,
		RideTime:      p.RideTime,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone,
		Notes:         p.Notes,
		Addons: pricing.AddonsSelection{
			DroneVideo:      p.Addons.DroneVideo,
			GoPro:           p.Addons.GoPro,
			Wetsuit:         p.Addons.Wetsuit,
			BoatRide:        p.Addons.BoatRide,
			BoatHeadcount:   p.Addons.BoatHeadcount,
			ExtraPassengers: p.Addons.ExtraPassengers,
		},
		Status:      booking.Status(p.Status),
		AmountCents: p.AmountCents,
		CreatedAt:   p.CreatedAt,
	}
}

func fromDomain(b booking.Booking) bookingPayload {
	return bookingPayload{
		ID:            b.ID,
		RideTierID:    b.RideTierID,
		RideDate:      b.RideDate,
		RideTime:      b.RideTime,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		Addons: addons{
			DroneVideo:      b.Addons.DroneVideo,
			GoPro:           b.Addons.GoPro,
			Wetsuit:         b.Addons.Wetsuit,
			BoatRide:        b.Addons.BoatRide,
			BoatHeadcount:   b.Addons.BoatHeadcount,
			ExtraPassengers: b.Addons.ExtraPassengers,
		},
		Status:      b.Status.String(),
		AmountCents: b.AmountCents,
		CreatedAt:   b.CreatedAt,
	}
}
