package entities

// GeneralStats aggregates meetings that have both an end date and a
// duration. All fields are zero when no meeting qualifies.
type GeneralStats struct {
	TotalMeetings       int64   `json:"totalMeetings"`
	AverageParticipants float64 `json:"averageParticipants"`
	TotalParticipants   int64   `json:"totalParticipants"`
	ShortestMeeting     int     `json:"shortestMeeting"`
	LongestMeeting      int     `json:"longestMeeting"`
	AverageDuration     float64 `json:"averageDuration"`
}

// ParticipantCount ranks a participant by meeting appearances
type ParticipantCount struct {
	Participant  string `json:"participant"`
	MeetingCount int64  `json:"meetingCount"`
}

// WeekdayCount buckets meetings by ISO day of week (1=Monday..7=Sunday)
type WeekdayCount struct {
	DayOfWeek int   `json:"dayOfWeek"`
	Count     int64 `json:"count"`
}

// MeetingStats is the cached per-user statistics snapshot
type MeetingStats struct {
	GeneralStats        GeneralStats       `json:"generalStats"`
	TopParticipants     []ParticipantCount `json:"topParticipants"`
	MeetingsByDayOfWeek []WeekdayCount     `json:"meetingsByDayOfWeek"`
}
