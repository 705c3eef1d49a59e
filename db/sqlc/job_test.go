package db

import (
	"context"
	"testing"
	"time"

	"github.com/agrilink/farmwork/util"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func createRandomFarmer(t *testing.T) Farmer {
	hashedPassword, err := util.HashPassword(util.RandomString(10))
	require.NoError(t, err)

	arg := CreateFarmerParams{
		Name:           util.RandomName(),
		Phone:          util.RandomPhone(),
		HashedPassword: hashedPassword,
		Location:       util.RandomCoordinate(),
		Email: pgtype.Text{
			String: util.RandomEmail(),
			Valid:  true,
		},
	}

	farmer, err := testStore.CreateFarmer(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, farmer)
	require.Equal(t, arg.Phone, farmer.Phone)
	require.NotZero(t, farmer.ID)

	return farmer
}

func createRandomJob(t *testing.T, farmer Farmer) Job {
	arg := CreateJobParams{
		FarmerID:      farmer.ID,
		Title:         "Job " + util.RandomString(8),
		Description:   pgtype.Text{String: util.RandomString(20), Valid: true},
		SkillRequired: util.RandomSkills(),
		Location:      util.RandomCoordinate(),
		Duration:      pgtype.Text{String: "2 days", Valid: true},
		PayRate:       pgtype.Text{String: "$15/day", Valid: true},
	}

	job, err := testStore.CreateJob(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, job)

	require.Equal(t, arg.FarmerID, job.FarmerID)
	require.Equal(t, arg.Title, job.Title)
	require.Equal(t, arg.SkillRequired, job.SkillRequired)
	require.Equal(t, "open", job.Status)
	require.NotZero(t, job.ID)
	require.NotZero(t, job.PostedAt)

	return job
}

func TestCreateJob(t *testing.T) {
	farmer := createRandomFarmer(t)
	createRandomJob(t, farmer)
}

func TestGetJob(t *testing.T) {
	farmer := createRandomFarmer(t)
	job1 := createRandomJob(t, farmer)

	job2, err := testStore.GetJob(context.Background(), job1.ID)
	require.NoError(t, err)
	require.Equal(t, job1.ID, job2.ID)
	require.Equal(t, job1.Title, job2.Title)
	require.WithinDuration(t, job1.PostedAt, job2.PostedAt, time.Second)
}

func TestListJobsByFarmer(t *testing.T) {
	farmer := createRandomFarmer(t)
	for i := 0; i < 3; i++ {
		createRandomJob(t, farmer)
	}

	jobs, err := testStore.ListJobsByFarmer(context.Background(), farmer.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		require.Equal(t, farmer.ID, job.FarmerID)
	}
}

func TestUpdateJobStatus(t *testing.T) {
	farmer := createRandomFarmer(t)
	job := createRandomJob(t, farmer)

	updated, err := testStore.UpdateJobStatus(context.Background(), UpdateJobStatusParams{
		ID:     job.ID,
		Status: "filled",
	})
	require.NoError(t, err)
	require.Equal(t, "filled", updated.Status)

	// 非法状态被 check 约束拒绝
	_, err = testStore.UpdateJobStatus(context.Background(), UpdateJobStatusParams{
		ID:     job.ID,
		Status: "bogus",
	})
	require.Error(t, err)
}

func TestListOpenJobs(t *testing.T) {
	farmer := createRandomFarmer(t)
	open := createRandomJob(t, farmer)

	closed := createRandomJob(t, farmer)
	_, err := testStore.UpdateJobStatus(context.Background(), UpdateJobStatusParams{
		ID:     closed.ID,
		Status: "closed",
	})
	require.NoError(t, err)

	jobs, err := testStore.ListOpenJobs(context.Background())
	require.NoError(t, err)

	ids := make(map[int64]bool, len(jobs))
	for _, job := range jobs {
		require.Equal(t, "open", job.Status)
		ids[job.ID] = true
	}
	require.True(t, ids[open.ID])
	require.False(t, ids[closed.ID])
}
