// Package server provides Connect RPC handlers for the quiz service.
package server

import (
	"context"
	"fmt"
	"strconv"

	"connectrpc.com/connect"

	apiv1 "github.com/at-ishikawa/clozequiz/internal/api/v1"
	"github.com/at-ishikawa/clozequiz/internal/corpus"
	"github.com/at-ishikawa/clozequiz/internal/database"
	"github.com/at-ishikawa/clozequiz/internal/learning"
	"github.com/at-ishikawa/clozequiz/internal/note"
)

// QuizHandler implements the QuizServiceHandler interface.
type QuizHandler struct {
	corpusRepo   corpus.CorpusRepository
	learningRepo learning.LearningRepository
	noteRepo     note.NoteRepository
	drawLimit    int
	validator    *requestValidator
}

var _ apiv1.QuizServiceHandler = (*QuizHandler)(nil)

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(
	corpusRepo corpus.CorpusRepository,
	learningRepo learning.LearningRepository,
	noteRepo note.NoteRepository,
	drawLimit int,
) (*QuizHandler, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator() > %w", err)
	}
	return &QuizHandler{
		corpusRepo:   corpusRepo,
		learningRepo: learningRepo,
		noteRepo:     noteRepo,
		drawLimit:    drawLimit,
		validator:    v,
	}, nil
}

// ListLanguages returns every language known to the corpus.
func (h *QuizHandler) ListLanguages(
	ctx context.Context,
	req *connect.Request[apiv1.ListLanguagesRequest],
) (*connect.Response[apiv1.ListLanguagesResponse], error) {
	languages, err := h.corpusRepo.ListLanguages(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("list languages: %w", err))
	}

	result := make([]apiv1.Language, 0, len(languages))
	for _, l := range languages {
		result = append(result, apiv1.Language{ISO693_3: l.ISO693_3, Name: l.Name})
	}
	return connect.NewResponse(&apiv1.ListLanguagesResponse{Languages: result}), nil
}

// DrawCards returns cards for a language pair that the account has not
// reported.
func (h *QuizHandler) DrawCards(
	ctx context.Context,
	req *connect.Request[apiv1.DrawCardsRequest],
) (*connect.Response[apiv1.DrawCardsResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	accountID, err := accountIDFromHeader(req.Header().Get(apiv1.AccountHeader))
	if err != nil {
		return nil, err
	}

	drawn, err := h.corpusRepo.Draw(ctx, corpus.DrawQuery{
		AccountID:   accountID,
		TargetLang:  req.Msg.TargetLang,
		SourceLangs: req.Msg.SourceLangs,
		Limit:       h.drawLimit,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("draw cards: %w", err))
	}

	cards := make([]apiv1.Card, 0, len(drawn))
	for _, c := range drawn {
		cards = append(cards, apiv1.Card{
			FromID:           c.FromID,
			ToID:             c.ToID,
			FromLanguage:     c.FromLanguage,
			ToLanguage:       c.ToLanguage,
			FromLanguageCode: c.FromLanguageCode,
			ToLanguageCode:   c.ToLanguageCode,
			FromText:         c.FromText,
			ToText:           c.ToText,
			ToTokens:         []string(c.ToTokens),
			Hint:             c.Hint,
			Explanation:      c.Explanation,
		})
	}
	return connect.NewResponse(&apiv1.DrawCardsResponse{Cards: cards}), nil
}

// RegisterAnswer stores a graded card.
func (h *QuizHandler) RegisterAnswer(
	ctx context.Context,
	req *connect.Request[apiv1.RegisterAnswerRequest],
) (*connect.Response[apiv1.RegisterAnswerResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	accountID, err := accountIDFromHeader(req.Header().Get(apiv1.AccountHeader))
	if err != nil {
		return nil, err
	}

	if err := h.learningRepo.CreateAnswerLog(ctx, &learning.AnswerLog{
		AccountID:       accountID,
		FromID:          req.Msg.FromID,
		ToID:            req.Msg.ToID,
		ExpectedAnswers: database.StringList(req.Msg.ExpectedAnswers),
		GivenAnswers:    database.StringList(req.Msg.GivenAnswers),
		Correct:         req.Msg.Correct,
		Repetition:      req.Msg.Repetition,
	}); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("register answer: %w", err))
	}
	return connect.NewResponse(&apiv1.RegisterAnswerResponse{}), nil
}

// ReportIssue stores a report so the card is not drawn again for the account.
func (h *QuizHandler) ReportIssue(
	ctx context.Context,
	req *connect.Request[apiv1.ReportIssueRequest],
) (*connect.Response[apiv1.ReportIssueResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	accountID, err := accountIDFromHeader(req.Header().Get(apiv1.AccountHeader))
	if err != nil {
		return nil, err
	}

	if err := h.learningRepo.CreateIssueReport(ctx, &learning.IssueReport{
		AccountID:   accountID,
		FromID:      req.Msg.FromID,
		ToID:        req.Msg.ToID,
		IssueType:   req.Msg.IssueType,
		Description: req.Msg.Description,
	}); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("report issue: %w", err))
	}
	return connect.NewResponse(&apiv1.ReportIssueResponse{}), nil
}

// TakeNote stores the account's hint and explanation for a sentence pair.
// Writing the stored values again is a no-op.
func (h *QuizHandler) TakeNote(
	ctx context.Context,
	req *connect.Request[apiv1.TakeNoteRequest],
) (*connect.Response[apiv1.TakeNoteResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	accountID, err := accountIDFromHeader(req.Header().Get(apiv1.AccountHeader))
	if err != nil {
		return nil, err
	}

	existing, err := h.noteRepo.Find(ctx, accountID, req.Msg.FromID, req.Msg.ToID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("find note: %w", err))
	}
	if existing == nil && req.Msg.Hint == "" && req.Msg.Explanation == "" {
		return connect.NewResponse(&apiv1.TakeNoteResponse{}), nil
	}
	if existing != nil && existing.Hint == req.Msg.Hint && existing.Explanation == req.Msg.Explanation {
		return connect.NewResponse(&apiv1.TakeNoteResponse{}), nil
	}

	if err := h.noteRepo.Upsert(ctx, &note.CardNote{
		AccountID:   accountID,
		FromID:      req.Msg.FromID,
		ToID:        req.Msg.ToID,
		Hint:        req.Msg.Hint,
		Explanation: req.Msg.Explanation,
	}); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("save note: %w", err))
	}
	return connect.NewResponse(&apiv1.TakeNoteResponse{}), nil
}

func accountIDFromHeader(value string) (int64, error) {
	if value == "" {
		return apiv1.AnonymousAccountID, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("invalid %s header: %q", apiv1.AccountHeader, value))
	}
	return id, nil
}
