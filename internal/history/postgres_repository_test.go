package history_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/history"
)

var testDB *history.DB

func TestMain(m *testing.M) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	db, err := history.Open(ctx, dbURL)
	if err != nil {
		log.Printf("Skipping history integration tests: %v", err)
		os.Exit(m.Run())
	}
	if err := history.Migrate(db.Pool()); err != nil {
		db.Close()
		log.Fatalf("Failed to run migrations: %v", err)
	}

	testDB = db
	code := m.Run()
	db.Close()
	os.Exit(code)
}

func requireDB(t *testing.T) history.Repository {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres history tests")
	}
	_, err := testDB.Pool().Exec(context.Background(), `DELETE FROM generations`)
	require.NoError(t, err)
	return history.NewPostgresRepository(testDB.Pool())
}

func TestPostgresRepository_RecordAndGet(t *testing.T) {
	repo := requireDB(t)
	ctx := context.Background()

	g := &history.Generation{
		SessionID: "s-1",
		Idea:      "a blog with comments",
		Model:     "gemini-3-flash-preview",
		Provider:  "gemini",
		Outcome:   "ok",
		Blueprint: &blueprint.Blueprint{
			Title:          "CommentBlog",
			DatabaseSchema: []blueprint.Table{{Table: "posts", Fields: []string{"id", "body"}}},
		},
		LatencyMS: 1200,
	}
	require.NoError(t, repo.Record(ctx, g))
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.False(t, g.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "a blog with comments", got.Idea)
	require.NotNil(t, got.Blueprint)
	assert.Equal(t, "CommentBlog", got.Blueprint.Title)
	assert.Equal(t, []string{"id", "body"}, got.Blueprint.DatabaseSchema[0].Fields)
	assert.Equal(t, int64(1200), got.LatencyMS)
}

func TestPostgresRepository_FailureHasNoBlueprint(t *testing.T) {
	repo := requireDB(t)
	ctx := context.Background()

	g := &history.Generation{Idea: "x", Model: "m", Provider: "gemini", Outcome: "decode", ErrorMessage: "$.title: required field missing"}
	require.NoError(t, repo.Record(ctx, g))

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Blueprint)
	assert.Equal(t, "decode", got.Outcome)
}

func TestPostgresRepository_GetByID_NotFound(t *testing.T) {
	repo := requireDB(t)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestPostgresRepository_ListFilter(t *testing.T) {
	repo := requireDB(t)
	ctx := context.Background()
	for _, o := range []string{"ok", "transport", "ok"} {
		require.NoError(t, repo.Record(ctx, &history.Generation{Idea: o, Model: "m", Provider: "p", Outcome: o}))
	}

	oks, err := repo.List(ctx, history.ListFilter{Outcome: strPtr("ok")})
	require.NoError(t, err)
	assert.Len(t, oks, 2)

	all, err := repo.List(ctx, history.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
