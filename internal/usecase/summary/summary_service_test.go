package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carein/call-summary/internal/adapter/repository"
	"github.com/carein/call-summary/internal/domain/entities"
	"github.com/carein/call-summary/internal/domain/repositories"
	"github.com/carein/call-summary/internal/infrastructure/database"
	"github.com/carein/call-summary/internal/infrastructure/database/databasetest"
	usecaseErrors "github.com/carein/call-summary/internal/usecase/errors"
	"github.com/carein/call-summary/pkg/ai"
)

type fakeSummarizer struct {
	mu       sync.Mutex
	texts    []string
	fallback bool
	calls    []string
}

func (f *fakeSummarizer) Generate(_ context.Context, transcript string) ai.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, transcript)

	if f.fallback {
		return ai.Result{Text: ai.FallbackSummary, Fallback: true, Err: errors.New("provider down")}
	}
	text := "summary"
	if len(f.texts) > 0 {
		text = f.texts[0]
		f.texts = f.texts[1:]
	}
	return ai.Result{Text: text}
}

type generation struct {
	action   string
	fallback bool
}

type fakeRecorder struct {
	mu          sync.Mutex
	generations []generation
	writes      []string
}

func (r *fakeRecorder) ObserveGeneration(action string, fallback bool, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations = append(r.generations, generation{action, fallback})
}

func (r *fakeRecorder) IncCommLogWrite(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, action)
}

// failingCommLogRepository rejects every write
type failingCommLogRepository struct {
	repositories.CommLogRepository
}

func (failingCommLogRepository) Create(context.Context, *entities.CommLog) error {
	return errors.New("commlog unavailable")
}

type fixture struct {
	db         *gorm.DB
	summaries  repositories.CallSummaryRepository
	logs       repositories.CommLogRepository
	summarizer *fakeSummarizer
	recorder   *fakeRecorder
	service    *CallSummaryService
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	db := databasetest.New(t)
	f := &fixture{
		db:         db,
		summaries:  repository.NewCallSummaryRepository(db),
		logs:       repository.NewCommLogRepository(db),
		summarizer: &fakeSummarizer{},
		recorder:   &fakeRecorder{},
	}
	f.service = NewCallSummaryService(f.summaries, f.logs, repository.NewTransactor(db), f.summarizer, f.recorder, nil, opts)
	return f
}

func (f *fixture) entries(t *testing.T, id int64) []*entities.CommLog {
	t.Helper()
	entries, err := f.logs.List(context.Background(), repositories.CommLogFilters{CallSummaryID: &id, Limit: 100})
	require.NoError(t, err)
	return entries
}

func TestCreate_StoresSummaryAndCreatedEntry(t *testing.T) {
	for _, transactional := range []bool{true, false} {
		f := newFixture(t, Options{Transactional: transactional})
		f.summarizer.texts = []string{"Tooth pain; appointment Friday."}

		got, err := f.service.Create(context.Background(), CreateInput{Transcript: "Patient called about tooth pain."})
		require.NoError(t, err)
		assert.NotZero(t, got.ID)
		assert.Equal(t, "Patient called about tooth pain.", got.Transcript)
		assert.Equal(t, "Tooth pain; appointment Friday.", got.SummaryText())

		stored, err := f.summaries.FindByID(context.Background(), got.ID)
		require.NoError(t, err)
		assert.Equal(t, got.SummaryText(), stored.SummaryText())

		entries := f.entries(t, got.ID)
		require.Len(t, entries, 1)
		assert.Equal(t, entities.CommLogActionCreated, entries[0].Action)
		require.NotNil(t, entries[0].Message)
		assert.Equal(t, entities.CommLogMessageCreated, *entries[0].Message)

		assert.Equal(t, []generation{{"created", false}}, f.recorder.generations)
		assert.Equal(t, []string{"created"}, f.recorder.writes)
	}
}

func TestCreate_UsesFallbackText(t *testing.T) {
	f := newFixture(t, Options{Transactional: true})
	f.summarizer.fallback = true

	got, err := f.service.Create(context.Background(), CreateInput{Transcript: "hello"})
	require.NoError(t, err)
	assert.Equal(t, ai.FallbackSummary, got.SummaryText())
	assert.Len(t, f.entries(t, got.ID), 1)
	assert.Equal(t, []generation{{"created", true}}, f.recorder.generations)
}

func TestCreate_AcceptsWhitespaceTranscript(t *testing.T) {
	f := newFixture(t, Options{Transactional: true})

	got, err := f.service.Create(context.Background(), CreateInput{Transcript: "  \n\t"})
	require.NoError(t, err)
	assert.Equal(t, "  \n\t", got.Transcript)
	assert.Equal(t, []string{"  \n\t"}, f.summarizer.calls)
	assert.Len(t, f.entries(t, got.ID), 1)
}

func TestCreate_TransactionalRollsBackWhenLogFails(t *testing.T) {
	f := newFixture(t, Options{Transactional: true})
	f.service.commLogRepo = failingCommLogRepository{f.logs}

	_, err := f.service.Create(context.Background(), CreateInput{Transcript: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, usecaseErrors.ErrTransactionFailed)

	all, err := f.summaries.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.recorder.writes)
}

func TestCreate_BestEffortKeepsSummaryWhenLogFails(t *testing.T) {
	f := newFixture(t, Options{Transactional: false})
	f.service.commLogRepo = failingCommLogRepository{f.logs}

	_, err := f.service.Create(context.Background(), CreateInput{Transcript: "hello"})
	require.Error(t, err)
	var queryErr *usecaseErrors.QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "create_commlog", queryErr.Query)

	all, err := f.summaries.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hello", all[0].Transcript)
	assert.Empty(t, f.entries(t, all[0].ID))
}

func TestRerun_ReplacesSummaryAndAppendsEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Transactional: true})
	f.summarizer.texts = []string{"first", "second"}

	created, err := f.service.Create(ctx, CreateInput{Transcript: "Patient asked to reschedule."})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	rerun, err := f.service.Rerun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, rerun.ID)
	assert.Equal(t, created.Transcript, rerun.Transcript)
	assert.Equal(t, "second", rerun.SummaryText())
	assert.True(t, rerun.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, rerun.CreatedAt.Equal(created.CreatedAt))

	assert.Equal(t, []string{"Patient asked to reschedule.", "Patient asked to reschedule."}, f.summarizer.calls)

	entries := f.entries(t, created.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, entities.CommLogActionRerun, entries[0].Action)
	assert.Equal(t, entities.CommLogMessageRerun, *entries[0].Message)
	assert.Equal(t, entities.CommLogActionCreated, entries[1].Action)
	assert.Equal(t, []string{"created", "rerun"}, f.recorder.writes)
}

func TestRerun_IsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Transactional: true})
	f.summarizer.fallback = true

	created, err := f.service.Create(ctx, CreateInput{Transcript: "t"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := f.service.Rerun(ctx, created.ID)
		require.NoError(t, err)
	}

	count, err := f.logs.CountBySummary(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRerun_ConcurrentRerunsAllPersist(t *testing.T) {
	const reruns = 20
	ctx := context.Background()
	f := newFixture(t, Options{Transactional: true})

	texts := []string{"initial"}
	for i := 0; i < reruns; i++ {
		texts = append(texts, fmt.Sprintf("rerun %d", i))
	}
	f.summarizer.texts = append([]string(nil), texts...)

	created, err := f.service.Create(ctx, CreateInput{Transcript: "Patient called twice."})
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < reruns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.service.Rerun(ctx, created.ID); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, errs)

	count, err := f.logs.CountBySummary(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(reruns+1), count)

	final, err := f.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, texts[1:], final.SummaryText())
	assert.Len(t, f.recorder.writes, reruns+1)
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction", func(t *testing.T) {
		f := newFixture(t, Options{Transactional: true})
		require.NoError(t, database.CloseDB(f.db))

		_, err := f.service.Create(ctx, CreateInput{Transcript: "hello"})
		assert.ErrorIs(t, err, usecaseErrors.ErrTransactionFailed)
		assert.Empty(t, f.recorder.writes)
	})

	t.Run("query", func(t *testing.T) {
		f := newFixture(t, Options{Transactional: false})
		require.NoError(t, database.CloseDB(f.db))

		_, err := f.service.Create(ctx, CreateInput{Transcript: "hello"})
		var queryErr *usecaseErrors.QueryError
		require.ErrorAs(t, err, &queryErr)
		assert.Equal(t, "create_call_summary", queryErr.Query)

		_, err = f.service.Get(ctx, 1)
		require.ErrorAs(t, err, &queryErr)
		assert.Equal(t, "get_call_summary", queryErr.Query)
		assert.NotErrorIs(t, err, usecaseErrors.ErrSummaryNotFound)

		_, err = f.service.List(ctx, ListInput{Limit: DefaultListLimit})
		assert.ErrorIs(t, err, usecaseErrors.ErrQueryFailed)
	})
}

func TestRerun_NotFound(t *testing.T) {
	f := newFixture(t, Options{Transactional: true})

	_, err := f.service.Rerun(context.Background(), 42)
	assert.ErrorIs(t, err, usecaseErrors.ErrSummaryNotFound)
	var notFound *usecaseErrors.SummaryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.SummaryID)
	assert.Empty(t, f.summarizer.calls)
	assert.Empty(t, f.entries(t, 42))
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Transactional: true})

	_, err := f.service.Get(ctx, 7)
	assert.ErrorIs(t, err, usecaseErrors.ErrSummaryNotFound)

	created, err := f.service.Create(ctx, CreateInput{Transcript: "t"})
	require.NoError(t, err)

	got, err := f.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Transactional: true})

	for _, tr := range []string{"a", "b", "c"} {
		_, err := f.service.Create(ctx, CreateInput{Transcript: tr})
		require.NoError(t, err)
	}

	all, err := f.service.List(ctx, ListInput{Skip: 0, Limit: DefaultListLimit})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Transcript)

	page, err := f.service.List(ctx, ListInput{Skip: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Transcript)

	none, err := f.service.List(ctx, ListInput{Skip: 0, Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.service.List(ctx, ListInput{Skip: -1, Limit: 10})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidPagination)
}
