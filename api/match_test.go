package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/agrilink/farmwork/db/mock"
	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/util"
	"github.com/agrilink/farmwork/worker"
	mockwk "github.com/agrilink/farmwork/worker/mock"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchWorkersForJobAPI(t *testing.T) {
	farmer, _ := randomFarmer(t)

	job := db.Job{
		ID:            util.RandomInt(1, 1000),
		FarmerID:      farmer.ID,
		Title:         "Coffee picking",
		SkillRequired: "picking",
		Location:      "Huye",
		Status:        "open",
		PostedAt:      time.Now(),
	}

	// 技能与地点完全匹配 / 技能不匹配 两名候选人
	exact := db.Worker{
		ID:        1,
		Name:      "Alice",
		Skills:    "picking",
		Location:  "Huye",
		Available: true,
	}
	unrelated := db.Worker{
		ID:        2,
		Name:      "Bob",
		Skills:    "driving",
		Location:  "Remote Plains",
		Available: true,
	}

	testCases := []struct {
		name          string
		url           string
		farmerID      int64
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "RankedWithPersistence",
			url:      fmt.Sprintf("/v1/jobs/%d/matches?limit=5", job.ID),
			farmerID: farmer.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					ListAvailableWorkers(gomock.Any()).
					Times(1).
					Return([]db.Worker{unrelated, exact}, nil)
				distributor.EXPECT().
					DistributeTaskRecordMatches(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(ctx context.Context, payload *worker.PayloadRecordMatches, opts ...asynq.Option) error {
						require.NotEqual(t, uuid.Nil, payload.BatchID)
						require.Len(t, payload.Matches, 2)
						// 批次里的顺序与响应一致：高分在前
						require.Equal(t, exact.ID, payload.Matches[0].WorkerID)
						require.Equal(t, job.ID, payload.Matches[0].JobID)
						require.Equal(t, int32(100), payload.Matches[0].Score)
						return nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got matchWorkersResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				require.NoError(t, err)

				require.Equal(t, job.ID, got.JobID)
				require.NotEqual(t, uuid.Nil, got.BatchID)
				require.Len(t, got.Matches, 2)

				require.Equal(t, exact.ID, got.Matches[0].WorkerID)
				require.Equal(t, "Alice", got.Matches[0].Name)
				require.Equal(t, 100, got.Matches[0].Score)
				require.NotEmpty(t, got.Matches[0].Explanation)

				require.Equal(t, unrelated.ID, got.Matches[1].WorkerID)
				require.Greater(t, got.Matches[0].Score, got.Matches[1].Score)
			},
		},
		{
			name:     "TopNTruncation",
			url:      fmt.Sprintf("/v1/jobs/%d/matches?limit=1", job.ID),
			farmerID: farmer.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					ListAvailableWorkers(gomock.Any()).
					Times(1).
					Return([]db.Worker{unrelated, exact}, nil)
				distributor.EXPECT().
					DistributeTaskRecordMatches(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got matchWorkersResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				require.NoError(t, err)
				require.Len(t, got.Matches, 1)
				require.Equal(t, exact.ID, got.Matches[0].WorkerID)
			},
		},
		{
			name:     "NoCandidates",
			url:      fmt.Sprintf("/v1/jobs/%d/matches", job.ID),
			farmerID: farmer.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					ListAvailableWorkers(gomock.Any()).
					Times(1).
					Return([]db.Worker{}, nil)
				// 空结果不落库
				distributor.EXPECT().
					DistributeTaskRecordMatches(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got matchWorkersResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				require.NoError(t, err)
				require.Empty(t, got.Matches)
			},
		},
		{
			name:     "EnqueueFailureStillResponds",
			url:      fmt.Sprintf("/v1/jobs/%d/matches", job.ID),
			farmerID: farmer.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					ListAvailableWorkers(gomock.Any()).
					Times(1).
					Return([]db.Worker{exact}, nil)
				distributor.EXPECT().
					DistributeTaskRecordMatches(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(asynq.ErrTaskIDConflict)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				// 落库失败只记日志，排序结果照常返回
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:     "AnotherFarmersJob",
			url:      fmt.Sprintf("/v1/jobs/%d/matches", job.ID),
			farmerID: farmer.ID + 1,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					ListAvailableWorkers(gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:     "JobNotFound",
			url:      fmt.Sprintf("/v1/jobs/%d/matches", job.ID),
			farmerID: farmer.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(db.Job{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithTaskDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, tc.farmerID, util.FarmerRole, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestMatchJobsForWorkerAPI(t *testing.T) {
	w, _ := randomWorker(t)
	w.Skills = "picking"
	w.Location = "Huye"

	exactJob := db.Job{
		ID:            11,
		Title:         "Coffee picking",
		SkillRequired: "picking",
		Location:      "Huye",
		Status:        "open",
	}
	otherJob := db.Job{
		ID:            12,
		Title:         "Tractor driving",
		SkillRequired: "driving",
		Location:      "Remote Plains",
		Status:        "open",
	}

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Ranked",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetWorker(gomock.Any(), gomock.Eq(w.ID)).
					Times(1).
					Return(w, nil)
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return([]db.Job{otherJob, exactJob}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []matchedJobResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				require.NoError(t, err)
				require.Len(t, got, 2)

				require.Equal(t, exactJob.ID, got[0].JobID)
				require.Equal(t, exactJob.Title, got[0].Title)
				require.Equal(t, 100, got[0].Score)
				require.Greater(t, got[0].Score, got[1].Score)
			},
		},
		{
			name: "NoOpenJobs",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetWorker(gomock.Any(), gomock.Eq(w.ID)).
					Times(1).
					Return(w, nil)
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return([]db.Job{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []matchedJobResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				require.NoError(t, err)
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/v1/workers/me/matches", nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, w.ID, util.WorkerRole, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestListMatchHistoryAPI(t *testing.T) {
	farmer, _ := randomFarmer(t)
	batchID := uuid.New()

	rows := []db.ListRecentMatchesRow{
		{
			ID:          1,
			BatchID:     batchID,
			JobID:       11,
			WorkerID:    21,
			Score:       100,
			Explanation: "skills matched 1/1; location exact match; available: yes",
			MatchedAt:   time.Now(),
			JobTitle:    "Coffee picking",
			WorkerName:  "Alice",
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListRecentMatches(gomock.Any(), gomock.Eq(int32(10))).
		Times(1).
		Return(rows, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/matches/history", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, farmer.ID, util.FarmerRole, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got []matchHistoryEntry
	err = json.Unmarshal(recorder.Body.Bytes(), &got)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, batchID, got[0].BatchID)
	require.Equal(t, "Coffee picking", got[0].JobTitle)
	require.Equal(t, "Alice", got[0].WorkerName)
	require.Equal(t, int32(100), got[0].Score)
}
