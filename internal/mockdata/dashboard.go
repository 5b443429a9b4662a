package mockdata

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gradescan/internal/model"
)

var (
	learningPaces     = []string{"Below Average", "Average", "Above Average", "Fast"}
	dashboardSubjects = []string{"Mathematics", "Science", "English", "History"}
	masteryAreas      = []string{"core concepts", "advanced topics"}
	strengthPool      = []string{"Algebra", "Literature Analysis", "Critical Thinking", "Problem Solving"}
	gapPool           = []string{"Organic Chemistry", "Grammar", "Ancient History", "Data Structures"}
)

// RandomDashboard fabricates a student dashboard.
type RandomDashboard struct {
	rng *lockedRand
}

var _ DashboardGenerator = (*RandomDashboard)(nil)

func NewRandomDashboard(src rand.Source) *RandomDashboard {
	return &RandomDashboard{rng: newLockedRand(src)}
}

func (g *RandomDashboard) Generate(ctx context.Context) (*model.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := g.rng

	completion := r.between(60, 95)
	toReview := r.between(1, 3)
	if completion < 75 {
		toReview = r.between(4, 6)
	}

	profile := model.LearningProfile{
		LearningPace:  r.pick(learningPaces),
		RetentionRate: r.between(70, 98),
		FocusTime:     fmt.Sprintf("%dm", r.between(25, 55)),
	}

	schedule := []model.StudySession{
		{Time: "9:00 AM - Mathematics", Topic: "Quadratic Equations", Difficulty: "Medium", Status: "Completed"},
		{Time: "10:30 AM - Biology", Topic: "Photosynthesis", Difficulty: "Easy", Status: "In Progress"},
		{Time: "2:00 PM - History", Topic: "World War II", Difficulty: "Hard", Status: "Pending"},
	}
	r.shuffle(len(schedule), func(i, j int) { schedule[i], schedule[j] = schedule[j], schedule[i] })

	return &model.Dashboard{
		Stats: model.DashboardStats{
			LearningPace:   profile.LearningPace,
			CompletionRate: completion,
			StrongTopics:   r.between(5, 15),
			TopicsToReview: toReview,
		},
		Profile:  profile,
		Schedule: schedule,
		Feedback: []model.Feedback{
			{
				Type:  "positive",
				Title: fmt.Sprintf("Great Progress in %s!", r.pick(dashboardSubjects)),
				Description: fmt.Sprintf("You've mastered %s %d%% faster than average. Keep it up!",
					r.pick(masteryAreas), r.between(15, 30)),
			},
			{
				Type:        "review",
				Title:       "Review Recommended: Organic Chemistry",
				Description: "Your last quiz showed some gaps. We've added 3 flashcards to help reinforce concepts.",
			},
		},
		Progress: []model.SubjectProgress{
			{Subject: "Mathematics", Value: r.between(70, 95)},
			{Subject: "Science", Value: r.between(65, 85)},
			{Subject: "English", Value: r.between(80, 98)},
			{Subject: "History", Value: r.between(50, 75)},
		},
		Skills: model.Skills{
			Strengths: r.sample(strengthPool, 3),
			Gaps:      r.sample(gapPool, 3),
		},
		Recommendation: fmt.Sprintf(
			"Based on your learning pattern, I recommend focusing on %d short study sessions (%d minutes) with 5-minute breaks.",
			r.between(2, 4), r.between(20, 30)),
	}, nil
}
