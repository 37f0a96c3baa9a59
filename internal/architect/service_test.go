package architect_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/provider"
)

// --- Mock Provider ---

type mockProvider struct {
	mu         sync.Mutex
	generateFn func(ctx context.Context, req provider.Request) (string, error)
	requests   []provider.Request
}

func (m *mockProvider) Generate(ctx context.Context, req provider.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return "", nil
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) calls() []provider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]provider.Request(nil), m.requests...)
}

const commentBlogJSON = `{"title":"CommentBlog","description":"...","architecture":"...","frontendStack":["React"],"backendStack":["Node"],"databaseSchema":[{"table":"posts","fields":["id","body"]}],"keyFeatures":["Commenting"]}`

func replying(raw string) func(context.Context, provider.Request) (string, error) {
	return func(_ context.Context, _ provider.Request) (string, error) {
		return raw, nil
	}
}

// ===== Generate =====

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: replying(commentBlogJSON)}
	svc := architect.NewService(p)

	bp, err := svc.Generate(context.Background(), "a blog with comments")

	require.NoError(t, err)
	assert.Equal(t, "CommentBlog", bp.Title)
	require.Len(t, bp.DatabaseSchema, 1)
	assert.Equal(t, "posts", bp.DatabaseSchema[0].Table)
	assert.Len(t, bp.DatabaseSchema[0].Fields, 2)
	assert.Equal(t, architect.OutcomeOK, architect.Classify(err))
}

func TestGenerate_IssuesExactlyOneCallWithIdeaVerbatim(t *testing.T) {
	t.Parallel()

	ideas := []string{
		"a blog with comments",
		"  leading and trailing spaces  ",
		"unicode ✓ and \"quotes\"\nacross lines",
	}

	for _, idea := range ideas {
		p := &mockProvider{generateFn: replying(commentBlogJSON)}
		svc := architect.NewService(p, architect.WithModel("gemini-test"))

		_, err := svc.Generate(context.Background(), idea)
		require.NoError(t, err)

		calls := p.calls()
		require.Len(t, calls, 1, idea)
		req := calls[0]
		assert.Contains(t, req.Prompt, idea)
		assert.Equal(t, blueprint.ComposePrompt(idea), req.Prompt)
		assert.Equal(t, "gemini-test", req.Model)
		assert.Equal(t, blueprint.SystemInstruction, req.SystemInstruction)
		assert.Equal(t, provider.MIMETypeJSON, req.ResponseMIMEType)
		assert.Same(t, blueprint.ResponseSchema, req.Schema)
		assert.Empty(t, req.History)
	}
}

func TestGenerate_EmptyIdea_NoCall(t *testing.T) {
	t.Parallel()

	for _, idea := range []string{"", " ", "\t\n  "} {
		p := &mockProvider{generateFn: replying(commentBlogJSON)}
		svc := architect.NewService(p)

		bp, err := svc.Generate(context.Background(), idea)

		assert.Nil(t, bp)
		assert.ErrorIs(t, err, architect.ErrEmptyIdea)
		assert.Equal(t, architect.OutcomeRejected, architect.Classify(err))
		assert.Empty(t, p.calls())
	}
}

func TestGenerate_MissingField_DecodeFailure(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: replying(`{"title":"CommentBlog","description":"...","architecture":"...","frontendStack":[],"backendStack":[],"databaseSchema":[]}`)}
	svc := architect.NewService(p)

	bp, err := svc.Generate(context.Background(), "a blog")

	assert.Nil(t, bp)
	var decErr *blueprint.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, architect.OutcomeDecode, architect.Classify(err))

	var transportErr *architect.TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestGenerate_MalformedJSON_DecodeFailure(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: replying("I'm sorry, I can't help with that.")}
	svc := architect.NewService(p)

	bp, err := svc.Generate(context.Background(), "a blog")

	assert.Nil(t, bp)
	assert.Equal(t, architect.OutcomeDecode, architect.Classify(err))
}

func TestGenerate_NetworkError_TransportFailure(t *testing.T) {
	t.Parallel()

	netErr := errors.New("dial tcp: connection refused")
	p := &mockProvider{generateFn: func(_ context.Context, _ provider.Request) (string, error) {
		return "", netErr
	}}
	svc := architect.NewService(p)

	bp, err := svc.Generate(context.Background(), "a blog")

	assert.Nil(t, bp)
	var transportErr *architect.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "mock", transportErr.Provider)
	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, architect.OutcomeTransport, architect.Classify(err))
	assert.Len(t, p.calls(), 1)
}

func TestGenerate_Timeout_TransportFailure(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: func(ctx context.Context, _ provider.Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	svc := architect.NewService(p, architect.WithTimeout(20*time.Millisecond))

	start := time.Now()
	bp, err := svc.Generate(context.Background(), "a blog")

	assert.Nil(t, bp)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, architect.OutcomeTransport, architect.Classify(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := architect.NewService(&mockProvider{}, architect.WithModel(""), architect.WithTimeout(0))

	assert.Equal(t, architect.DefaultModel, svc.Model())
	assert.Equal(t, "mock", svc.ProviderName())
}

// ===== Chat =====

func TestChat_Success(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: replying("Use cookies for sessions.")}
	svc := architect.NewService(p)
	history := []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
		{Role: provider.RoleAssistant, Content: "hello"},
	}

	reply, err := svc.Chat(context.Background(), "how do sessions work?", history)

	require.NoError(t, err)
	assert.Equal(t, "Use cookies for sessions.", reply)

	calls := p.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "how do sessions work?", calls[0].Prompt)
	assert.Equal(t, blueprint.ChatInstruction, calls[0].SystemInstruction)
	assert.Nil(t, calls[0].Schema)
	assert.Empty(t, calls[0].ResponseMIMEType)
	assert.Equal(t, history, calls[0].History)
}

func TestChat_EmptyMessage(t *testing.T) {
	t.Parallel()

	p := &mockProvider{}
	svc := architect.NewService(p)

	_, err := svc.Chat(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, architect.ErrEmptyMessage)
	assert.Empty(t, p.calls())
}

func TestChat_TransportFailure(t *testing.T) {
	t.Parallel()

	p := &mockProvider{generateFn: func(_ context.Context, _ provider.Request) (string, error) {
		return "", errors.New("boom")
	}}
	svc := architect.NewService(p)

	_, err := svc.Chat(context.Background(), "hello", nil)

	assert.Equal(t, architect.OutcomeTransport, architect.Classify(err))
}

func TestClassify_Unknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, architect.OutcomeUnknown, architect.Classify(errors.New("other")))
}
