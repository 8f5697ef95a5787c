package dto

import "time"

// SubjectSnapshot: hasil terbaru per subject (dashboard mahasiswa)
type SubjectSnapshot struct {
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

type KPIs struct {
	Students    int64   `json:"students"`
	Attempts    int64   `json:"attempts"`
	AvgScorePct float64 `json:"avgScorePct"`
}

type SubjectStat struct {
	Subject     string  `json:"subject"`
	Attempts    int     `json:"attempts"`
	AvgScorePct float64 `json:"avgScorePct"`
}

type StudentRank struct {
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	RegisterNumber string    `json:"registerNumber"`
	Department     string    `json:"department"`
	Attempts       int       `json:"attempts"`
	AvgScorePct    float64   `json:"avgScorePct"`
	LastAttemptAt  time.Time `json:"lastAttemptAt"`
}

type AttemptUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RegisterNumber string `json:"registerNumber"`
	Department     string `json:"department"`
}

type RecentAttempt struct {
	ID        string      `json:"id"`
	User      AttemptUser `json:"user"`
	Subject   string      `json:"subject"`
	Score     int         `json:"score"`
	Total     int         `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AdminOverview: payload GET /api/admin/analytics
type AdminOverview struct {
	KPIs           KPIs            `json:"kpis"`
	BySubject      []SubjectStat   `json:"bySubject"`
	TopStudents    []StudentRank   `json:"topStudents"`
	RecentAttempts []RecentAttempt `json:"recentAttempts"`
}
