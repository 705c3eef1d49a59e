package algorithm

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreWorkerPerfectMatch(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{
		JobID:         1,
		Title:         "Planting crew",
		SkillRequired: "Planting",
		Location:      "-1.95,30.06",
	}
	worker := MatchWorker{
		WorkerID:  7,
		Name:      "Alice",
		Skills:    "Planting, Harvesting",
		Location:  "-1.95,30.06",
		Available: true,
	}

	result := sc.ScoreWorker(job, worker)
	require.Equal(t, int64(7), result.SubjectID)
	require.Equal(t, 1.0, result.SkillScore)
	require.Equal(t, 1.0, result.LocationScore)
	require.Equal(t, 1.0, result.AvailabilityScore)
	require.Equal(t, 100, result.Score)
}

func TestScoreWorkerSkillFraction(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{
		JobID:         1,
		SkillRequired: "Planting, Harvesting, Irrigation",
		Location:      "Kigali",
	}
	worker := MatchWorker{
		WorkerID:  2,
		Skills:    "planting, irrigation",
		Location:  "Kigali",
		Available: true,
	}

	result := sc.ScoreWorker(job, worker)
	require.InDelta(t, 2.0/3.0, result.SkillScore, 1e-9)
	require.Contains(t, result.Explanation, "skills matched 2/3")

	// 重复技能按集合语义只算一次，不会抬高分数
	worker.Skills = "planting, planting, planting"
	repeated := sc.ScoreWorker(job, worker)
	require.InDelta(t, 1.0/3.0, repeated.SkillScore, 1e-9)
}

func TestScoreWorkerEmptyRequirement(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{JobID: 1, SkillRequired: "", Location: "Kigali"}
	worker := MatchWorker{WorkerID: 2, Skills: "Planting", Location: "Kigali", Available: true}

	result := sc.ScoreWorker(job, worker)
	require.Zero(t, result.SkillScore)
	require.Contains(t, result.Explanation, "no required skills")

	// 位置 0.30 + 可用 0.10
	require.Equal(t, 40, result.Score)
}

func TestScoreWorkerUnavailable(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{JobID: 1, SkillRequired: "Planting", Location: "Kigali"}
	worker := MatchWorker{WorkerID: 2, Skills: "Planting", Location: "Kigali", Available: false}

	result := sc.ScoreWorker(job, worker)
	require.Zero(t, result.AvailabilityScore)
	require.Contains(t, result.Explanation, "available: no")
	require.Equal(t, 90, result.Score)
}

func TestScoreExplanationOrder(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{JobID: 1, SkillRequired: "Planting", Location: "Kigali"}
	worker := MatchWorker{WorkerID: 2, Skills: "Planting", Location: "Kigali, Rwanda", Available: true}

	result := sc.ScoreWorker(job, worker)
	// 解释按 技能、位置、可用性 的固定顺序列出各维度依据
	require.Equal(t, "skills matched 1/1; location substring match 0.80; available: yes", result.Explanation)
}

func TestScoreJobMirrorsScoreWorker(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())

	job := MatchJob{JobID: 11, SkillRequired: "Planting, Weeding", Location: "Kigali"}
	worker := MatchWorker{WorkerID: 22, Skills: "Weeding", Location: "Musanze", Available: true}

	byWorker := sc.ScoreWorker(job, worker)
	byJob := sc.ScoreJob(worker, job)

	require.Equal(t, int64(22), byWorker.SubjectID)
	require.Equal(t, int64(11), byJob.SubjectID)
	require.Equal(t, byWorker.Score, byJob.Score)
	require.Equal(t, byWorker.Explanation, byJob.Explanation)
}

func TestScoreAlwaysInRange(t *testing.T) {
	sc := NewScoreCalculator(DefaultMatchConfig())
	rng := rand.New(rand.NewSource(42))

	skills := []string{"", "Planting", "Planting,Harvesting", "Weeding, Irrigation, GPS", ",,,"}
	locations := []string{"", "Kigali", "Kigali, Rwanda", "-1.95,30.06", "1,2,3", "91,200", "abc,def"}

	for i := 0; i < 500; i++ {
		job := MatchJob{
			JobID:         rng.Int63(),
			SkillRequired: skills[rng.Intn(len(skills))],
			Location:      locations[rng.Intn(len(locations))],
		}
		worker := MatchWorker{
			WorkerID:  rng.Int63(),
			Skills:    skills[rng.Intn(len(skills))],
			Location:  fmt.Sprintf("%.4f,%.4f", rng.Float64()*180-90, rng.Float64()*360-180),
			Available: rng.Intn(2) == 0,
		}
		if rng.Intn(2) == 0 {
			worker.Location = locations[rng.Intn(len(locations))]
		}

		result := sc.ScoreWorker(job, worker)
		require.GreaterOrEqual(t, result.Score, 0)
		require.LessOrEqual(t, result.Score, 100)
		require.NotEmpty(t, result.Explanation)
	}
}
