package mockdata

import (
	"context"
	"math/rand/v2"

	"gradescan/internal/model"
)

var (
	Weekdays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	TimeSlots = []string{"09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00", "13:00 - 14:00", "14:00 - 15:00"}

	timetableSubjects = []string{"Math", "Science", "History", "English", "Art", "P.E."}
	teachers          = []string{"Mr. Smith", "Ms. Jones", "Mr. Chen", "Mrs. Davis", "Ms. Lee"}
	rooms             = []string{"101", "102", "201", "202", "Gym", "Art Studio"}
)

const (
	// ParallelClasses is how many grades are scheduled in every slot.
	ParallelClasses   = 10
	conflictsResolved = 12
)

// RandomTimetable fills every weekday slot with randomly chosen classes.
type RandomTimetable struct {
	rng *lockedRand
}

var _ TimetableGenerator = (*RandomTimetable)(nil)

func NewRandomTimetable(src rand.Source) *RandomTimetable {
	return &RandomTimetable{rng: newLockedRand(src)}
}

func (g *RandomTimetable) Generate(ctx context.Context) (*model.Timetable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	days := make(map[string][]model.TimetableEntry, len(Weekdays))
	count := 0
	for _, day := range Weekdays {
		entries := make([]model.TimetableEntry, 0, len(TimeSlots)*ParallelClasses)
		for _, slot := range TimeSlots {
			for i := 0; i < ParallelClasses; i++ {
				entries = append(entries, model.TimetableEntry{
					Time:    slot,
					Subject: g.rng.pick(timetableSubjects),
					Teacher: g.rng.pick(teachers),
					Room:    g.rng.pick(rooms),
				})
				count++
			}
		}
		days[day] = entries
	}

	return &model.Timetable{
		Timetable: days,
		Stats: model.TimetableStats{
			ClassesScheduled:  count,
			ConflictsResolved: conflictsResolved,
		},
	}, nil
}
