package model

type DashboardStats struct {
	LearningPace   string `json:"learningPace"`
	CompletionRate int    `json:"completionRate"`
	StrongTopics   int    `json:"strongTopics"`
	TopicsToReview int    `json:"topicsToReview"`
}

type LearningProfile struct {
	LearningPace  string `json:"learningPace"`
	RetentionRate int    `json:"retentionRate"`
	FocusTime     string `json:"focusTime"`
}

type StudySession struct {
	Time       string `json:"time"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
}

type Feedback struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SubjectProgress struct {
	Subject string `json:"subject"`
	Value   int    `json:"value"`
}

type Skills struct {
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// Dashboard is the student dashboard payload.
type Dashboard struct {
	Stats          DashboardStats    `json:"stats"`
	Profile        LearningProfile   `json:"profile"`
	Schedule       []StudySession    `json:"schedule"`
	Feedback       []Feedback        `json:"feedback"`
	Progress       []SubjectProgress `json:"progress"`
	Skills         Skills            `json:"skills"`
	Recommendation string            `json:"recommendation"`
}
