package dto

type SubjectMinutesOutput struct {
	Subject string
	Minutes int
}

type SummaryOutput struct {
	SessionCount     int
	TotalMinutes     int
	Last7DaysMinutes int
	WeeklyGoal       int
	Progress         float64
	TopSubject       string
	HasTop           bool
	BySubject        []SubjectMinutesOutput
}
