package model

// TimetableEntry is one class placed in a time slot.
type TimetableEntry struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// TimetableStats summarises a generated timetable.
type TimetableStats struct {
	ClassesScheduled  int `json:"classesScheduled"`
	ConflictsResolved int `json:"conflictsResolved"`
}

// Timetable maps a weekday to the classes scheduled on it.
type Timetable struct {
	Timetable map[string][]TimetableEntry `json:"timetable"`
	Stats     TimetableStats              `json:"stats"`
}
