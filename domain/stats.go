package domain

// StatsRecord is the durable accumulation of a user's completed work.
type StatsRecord struct {
	UserID        string `json:"userId"`
	TotalMinutes  int64  `json:"totalMinutes"`
	TotalSessions int64  `json:"totalSessions"`
}

// Add returns the record after one more credited work phase.
func (r StatsRecord) Add(minutes int) StatsRecord {
	r.TotalMinutes += int64(minutes)
	r.TotalSessions++
	return r
}
