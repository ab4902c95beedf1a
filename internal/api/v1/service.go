package apiv1

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// QuizServiceName is the fully-qualified name of the quiz service.
const QuizServiceName = "clozequiz.v1.QuizService"

const (
	QuizServiceListLanguagesProcedure  = "/clozequiz.v1.QuizService/ListLanguages"
	QuizServiceDrawCardsProcedure      = "/clozequiz.v1.QuizService/DrawCards"
	QuizServiceRegisterAnswerProcedure = "/clozequiz.v1.QuizService/RegisterAnswer"
	QuizServiceReportIssueProcedure    = "/clozequiz.v1.QuizService/ReportIssue"
	QuizServiceTakeNoteProcedure       = "/clozequiz.v1.QuizService/TakeNote"
)

// QuizServiceHandler is implemented by the quiz service.
type QuizServiceHandler interface {
	ListLanguages(context.Context, *connect.Request[ListLanguagesRequest]) (*connect.Response[ListLanguagesResponse], error)
	DrawCards(context.Context, *connect.Request[DrawCardsRequest]) (*connect.Response[DrawCardsResponse], error)
	RegisterAnswer(context.Context, *connect.Request[RegisterAnswerRequest]) (*connect.Response[RegisterAnswerResponse], error)
	ReportIssue(context.Context, *connect.Request[ReportIssueRequest]) (*connect.Response[ReportIssueResponse], error)
	TakeNote(context.Context, *connect.Request[TakeNoteRequest]) (*connect.Response[TakeNoteResponse], error)
}

// NewQuizServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewQuizServiceHandler(svc QuizServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	listLanguages := connect.NewUnaryHandler(QuizServiceListLanguagesProcedure, svc.ListLanguages, opts...)
	drawCards := connect.NewUnaryHandler(QuizServiceDrawCardsProcedure, svc.DrawCards, opts...)
	registerAnswer := connect.NewUnaryHandler(QuizServiceRegisterAnswerProcedure, svc.RegisterAnswer, opts...)
	reportIssue := connect.NewUnaryHandler(QuizServiceReportIssueProcedure, svc.ReportIssue, opts...)
	takeNote := connect.NewUnaryHandler(QuizServiceTakeNoteProcedure, svc.TakeNote, opts...)

	return "/" + QuizServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case QuizServiceListLanguagesProcedure:
			listLanguages.ServeHTTP(w, r)
		case QuizServiceDrawCardsProcedure:
			drawCards.ServeHTTP(w, r)
		case QuizServiceRegisterAnswerProcedure:
			registerAnswer.ServeHTTP(w, r)
		case QuizServiceReportIssueProcedure:
			reportIssue.ServeHTTP(w, r)
		case QuizServiceTakeNoteProcedure:
			takeNote.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// QuizServiceClient is a client for the quiz service.
type QuizServiceClient interface {
	ListLanguages(context.Context, *connect.Request[ListLanguagesRequest]) (*connect.Response[ListLanguagesResponse], error)
	DrawCards(context.Context, *connect.Request[DrawCardsRequest]) (*connect.Response[DrawCardsResponse], error)
	RegisterAnswer(context.Context, *connect.Request[RegisterAnswerRequest]) (*connect.Response[RegisterAnswerResponse], error)
	ReportIssue(context.Context, *connect.Request[ReportIssueRequest]) (*connect.Response[ReportIssueResponse], error)
	TakeNote(context.Context, *connect.Request[TakeNoteRequest]) (*connect.Response[TakeNoteResponse], error)
}

// NewQuizServiceClient constructs a connect client for the quiz service.
func NewQuizServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuizServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &quizServiceClient{
		listLanguages:  connect.NewClient[ListLanguagesRequest, ListLanguagesResponse](httpClient, baseURL+QuizServiceListLanguagesProcedure, opts...),
		drawCards:      connect.NewClient[DrawCardsRequest, DrawCardsResponse](httpClient, baseURL+QuizServiceDrawCardsProcedure, opts...),
		registerAnswer: connect.NewClient[RegisterAnswerRequest, RegisterAnswerResponse](httpClient, baseURL+QuizServiceRegisterAnswerProcedure, opts...),
		reportIssue:    connect.NewClient[ReportIssueRequest, ReportIssueResponse](httpClient, baseURL+QuizServiceReportIssueProcedure, opts...),
		takeNote:       connect.NewClient[TakeNoteRequest, TakeNoteResponse](httpClient, baseURL+QuizServiceTakeNoteProcedure, opts...),
	}
}

type quizServiceClient struct {
	listLanguages  *connect.Client[ListLanguagesRequest, ListLanguagesResponse]
	drawCards      *connect.Client[DrawCardsRequest, DrawCardsResponse]
	registerAnswer *connect.Client[RegisterAnswerRequest, RegisterAnswerResponse]
	reportIssue    *connect.Client[ReportIssueRequest, ReportIssueResponse]
	takeNote       *connect.Client[TakeNoteRequest, TakeNoteResponse]
}

func (c *quizServiceClient) ListLanguages(ctx context.Context, req *connect.Request[ListLanguagesRequest]) (*connect.Response[ListLanguagesResponse], error) {
	return c.listLanguages.CallUnary(ctx, req)
}

func (c *quizServiceClient) DrawCards(ctx context.Context, req *connect.Request[DrawCardsRequest]) (*connect.Response[DrawCardsResponse], error) {
	return c.drawCards.CallUnary(ctx, req)
}

func (c *quizServiceClient) RegisterAnswer(ctx context.Context, req *connect.Request[RegisterAnswerRequest]) (*connect.Response[RegisterAnswerResponse], error) {
	return c.registerAnswer.CallUnary(ctx, req)
}

func (c *quizServiceClient) ReportIssue(ctx context.Context, req *connect.Request[ReportIssueRequest]) (*connect.Response[ReportIssueResponse], error) {
	return c.reportIssue.CallUnary(ctx, req)
}

func (c *quizServiceClient) TakeNote(ctx context.Context, req *connect.Request[TakeNoteRequest]) (*connect.Response[TakeNoteResponse], error) {
	return c.takeNote.CallUnary(ctx, req)
}
