package models

// StatusBreakdown counts progress rows per lifecycle status.
type StatusBreakdown struct {
	New      int `json:"new"`
	Learning int `json:"learning"`
	Review   int `json:"review"`
	Mastered int `json:"mastered"`
}

type ProgressStats struct {
	TotalCount int             `json:"total_count"`
	DueCount   int             `json:"due_count"`
	Breakdown  StatusBreakdown `json:"breakdown"`
}
