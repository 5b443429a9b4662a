package handler

import "gradescan/internal/model"

// Response shapes referenced by the swag annotations.

type errorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"Allowed file type is PDF (.pdf) only"`
	RequestID string `json:"request_id,omitempty"`
}

type scoreResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    model.ScoreRecord `json:"data"`
}

type timetableResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Timetable generated successfully!"`
	Data    model.Timetable `json:"data"`
}

type dashboardResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    model.Dashboard `json:"data"`
}

type submissionsResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Items []model.Submission `json:"items"`
		Total int                `json:"total"`
	} `json:"data"`
}
