// Package backend talks to the quiz service on behalf of a study session.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	apiv1 "github.com/at-ishikawa/clozequiz/internal/api/v1"
	"github.com/at-ishikawa/clozequiz/internal/config"
	"github.com/at-ishikawa/clozequiz/internal/session"
)

const defaultRetryDelay = 200 * time.Millisecond

// ResponseError is a non-2xx answer from the quiz service.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("response error %d", e.StatusCode)
	}
	return fmt.Sprintf("response error %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// errorBody is the JSON error body of a connect unary call.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client calls the quiz service procedures as JSON POSTs.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

var _ session.CardDrawer = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRetryDelay sets the base delay of the exponential backoff.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// NewClient creates a client for the service at cfg.BaseURL acting for cfg.AccountID.
func NewClient(cfg config.BackendConfig, opts ...ClientOption) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(cfg.BaseURL)
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader(apiv1.AccountHeader, strconv.FormatInt(cfg.AccountID, 10))
	if cfg.TimeoutSeconds > 0 {
		httpClient.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	client := &Client{
		httpClient:       httpClient,
		maxRetryAttempts: cfg.MaxRetryAttempts,
		retryDelay:       defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError reports whether a call may succeed when repeated:
// transport failures, rate limiting and server errors.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.StatusCode == http.StatusTooManyRequests || responseErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func (client *Client) call(ctx context.Context, procedure string, body any, result any) error {
	attempts := client.maxRetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		func() error {
			err := client.post(ctx, procedure, body, result)
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(client.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying quiz service call",
				"procedure", procedure,
				"attempt", n+1,
				"error", err)
		}),
	)
}

func (client *Client) post(ctx context.Context, procedure string, body any, result any) error {
	var errBody errorBody
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&errBody).
		Post(procedure)
	if err != nil {
		return fmt.Errorf("httpClient.Post(%s) > %w", procedure, err)
	}
	if response.IsError() {
		return &ResponseError{
			StatusCode: response.StatusCode(),
			Code:       errBody.Code,
			Message:    errBody.Message,
		}
	}
	return nil
}

// ListLanguages returns the languages of the corpus.
func (client *Client) ListLanguages(ctx context.Context) ([]apiv1.Language, error) {
	var result apiv1.ListLanguagesResponse
	if err := client.call(ctx, apiv1.QuizServiceListLanguagesProcedure, apiv1.ListLanguagesRequest{}, &result); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return result.Languages, nil
}

// DrawCards implements session.CardDrawer.
func (client *Client) DrawCards(ctx context.Context, pair session.LanguagePair) ([]session.Card, error) {
	var result apiv1.DrawCardsResponse
	if err := client.call(ctx, apiv1.QuizServiceDrawCardsProcedure, apiv1.DrawCardsRequest{
		TargetLang:  pair.To,
		SourceLangs: pair.From,
	}, &result); err != nil {
		return nil, fmt.Errorf("draw cards: %w", err)
	}

	cards := make([]session.Card, 0, len(result.Cards))
	for _, c := range result.Cards {
		cards = append(cards, session.Card{
			FromID:           c.FromID,
			ToID:             c.ToID,
			FromLanguage:     c.FromLanguage,
			ToLanguage:       c.ToLanguage,
			FromLanguageCode: c.FromLanguageCode,
			ToLanguageCode:   c.ToLanguageCode,
			FromText:         c.FromText,
			ToText:           c.ToText,
			ToTokens:         c.ToTokens,
			Hint:             c.Hint,
			Explanation:      c.Explanation,
		})
	}
	return cards, nil
}

func (client *Client) RegisterAnswer(ctx context.Context, req apiv1.RegisterAnswerRequest) error {
	if err := client.call(ctx, apiv1.QuizServiceRegisterAnswerProcedure, req, &apiv1.RegisterAnswerResponse{}); err != nil {
		return fmt.Errorf("register answer: %w", err)
	}
	return nil
}

func (client *Client) ReportIssue(ctx context.Context, req apiv1.ReportIssueRequest) error {
	if err := client.call(ctx, apiv1.QuizServiceReportIssueProcedure, req, &apiv1.ReportIssueResponse{}); err != nil {
		return fmt.Errorf("report issue: %w", err)
	}
	return nil
}

func (client *Client) TakeNote(ctx context.Context, req apiv1.TakeNoteRequest) error {
	if err := client.call(ctx, apiv1.QuizServiceTakeNoteProcedure, req, &apiv1.TakeNoteResponse{}); err != nil {
		return fmt.Errorf("take note: %w", err)
	}
	return nil
}

// Deliver sends a session effect to the matching procedure.
func (client *Client) Deliver(ctx context.Context, effect session.Effect) error {
	switch e := effect.(type) {
	case session.RegisterAnswer:
		return client.RegisterAnswer(ctx, apiv1.RegisterAnswerRequest{
			FromID:          e.FromID,
			ToID:            e.ToID,
			ExpectedAnswers: e.ExpectedAnswers,
			GivenAnswers:    e.GivenAnswers,
			Correct:         e.Correct,
			Repetition:      e.Repetition,
		})
	case session.ReportIssue:
		return client.ReportIssue(ctx, apiv1.ReportIssueRequest{
			FromID:      e.FromID,
			ToID:        e.ToID,
			IssueType:   string(e.IssueType),
			Description: e.Description,
		})
	case session.TakeNote:
		return client.TakeNote(ctx, apiv1.TakeNoteRequest{
			FromID:      e.FromID,
			ToID:        e.ToID,
			Hint:        e.Hint,
			Explanation: e.Explanation,
		})
	default:
		return fmt.Errorf("unsupported effect %T", effect)
	}
}
