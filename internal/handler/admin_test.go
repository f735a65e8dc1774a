package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/profile"
	"github.com/osse101/CoinQuest_Go/mocks/servicemocks"
)

type stubJob struct{ name string }

func (s stubJob) Name() string                               { return s.name }
func (s stubJob) Process(ctx context.Context) (int64, error) { return 0, nil }

type stubRunner struct {
	rows int64
	err  error
	ran  []string
}

func (s *stubRunner) RunNow(job jobs.Job) (int64, error) {
	s.ran = append(s.ran, job.Name())
	return s.rows, s.err
}

func TestHandleLedgerAudit(t *testing.T) {
	ledgerSvc := servicemocks.NewMockLedgerService(t)
	ledgerSvc.On("Summary", mock.Anything, "auth-9").Return(&domain.LedgerSummary{
		UserID: "u-9", TotalCredited: 300, TotalDebited: 100, Balance: 200, EntryCount: 5, Consistent: true,
	}, nil)
	h := NewAdminHandler(ledgerSvc, servicemocks.NewMockProfileService(t), &stubRunner{})

	rec := httptest.NewRecorder()
	h.HandleLedgerAudit(rec, withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), URLParamAuthID, "auth-9"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"consistent":true`)
}

func TestHandleGetCacheStats(t *testing.T) {
	profiles := servicemocks.NewMockProfileService(t)
	profiles.On("GetCacheStats").Return(profile.CacheStats{Hits: 7, Misses: 2, Size: 3})
	h := NewAdminHandler(servicemocks.NewMockLedgerService(t), profiles, &stubRunner{})

	rec := httptest.NewRecorder()
	h.HandleGetCacheStats(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `"hits":7`)
}

func TestHandleRunJob(t *testing.T) {
	runner := &stubRunner{rows: 4}
	h := NewAdminHandler(servicemocks.NewMockLedgerService(t), servicemocks.NewMockProfileService(t), runner,
		stubJob{jobs.JobNameStreakExpiry}, stubJob{jobs.JobNameSessionSweep})

	rec := httptest.NewRecorder()
	h.HandleRunJob(rec, withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), URLParamJob, jobs.JobNameStreakExpiry))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rows_affected":4`)
	assert.Equal(t, []string{jobs.JobNameStreakExpiry}, runner.ran)

	rec = httptest.NewRecorder()
	h.HandleRunJob(rec, withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), URLParamJob, "drop_tables"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	runner.err = errors.New("boom")
	rec = httptest.NewRecorder()
	h.HandleRunJob(rec, withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), URLParamJob, jobs.JobNameSessionSweep))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
