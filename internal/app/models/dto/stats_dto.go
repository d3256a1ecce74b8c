package dto

// StudentStats aggregates student counters for the dashboard
type StudentStats struct {
	Total     int64 `json:"total"`
	ThisWeek  int64 `json:"thisWeek"`
	Enrolled  int64 `json:"enrolled"`
	Completed int64 `json:"completed"`
	Suspended int64 `json:"suspended"`
}

// UserStats aggregates staff counters by role
type UserStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Faculty int64 `json:"faculty"`
	HR      int64 `json:"hr"`
}

// AdminStats aggregates administrator counters
type AdminStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// CourseStats aggregates course counters
type CourseStats struct {
	Total      int64 `json:"total"`
	Published  int64 `json:"published"`
	Draft      int64 `json:"draft"`
	Categories int64 `json:"categories"`
}

// ApplicationStats aggregates application counters by workflow status
type ApplicationStats struct {
	Total       int64 `json:"total"`
	ThisWeek    int64 `json:"thisWeek"`
	Applied     int64 `json:"applied"`
	UnderReview int64 `json:"underReview"`
	Interview   int64 `json:"interview"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
	Completed   int64 `json:"completed"`
}

// ComplaintStats aggregates complaint counters
type ComplaintStats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Urgent     int64 `json:"urgent"`
}

// DashboardStats is the aggregated payload behind the admin dashboard
type DashboardStats struct {
	Students     StudentStats     `json:"students"`
	Users        UserStats        `json:"users"`
	Admins       AdminStats       `json:"admins"`
	Courses      CourseStats      `json:"courses"`
	Applications ApplicationStats `json:"applications"`
	Complaints   ComplaintStats   `json:"complaints"`
}
