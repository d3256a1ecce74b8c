package models

// AccountStatus defines the lifecycle state of an admin or staff account
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// UserRole defines the role of a staff user
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFaculty UserRole = "FACULTY"
	RoleHR      UserRole = "HR"
)

// Gender values accepted at registration
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// StudentStatus defines the lifecycle state of a student
type StudentStatus string

const (
	StudentRegistered StudentStatus = "REGISTERED"
	StudentEnrolled   StudentStatus = "ENROLLED"
	StudentCompleted  StudentStatus = "COMPLETED"
	StudentDropped    StudentStatus = "DROPPED"
	StudentSuspended  StudentStatus = "SUSPENDED"
)

// CourseStatus defines the publication state of a course
type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
	CourseSuspended CourseStatus = "SUSPENDED"
)

// ApplicationStatus defines the workflow state of a course application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationInterview   ApplicationStatus = "INTERVIEW"
	ApplicationAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationCompleted   ApplicationStatus = "COMPLETED"
)

// ComplaintStatus defines the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

// ComplaintPriority defines how urgent a complaint is
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "LOW"
	PriorityMedium ComplaintPriority = "MEDIUM"
	PriorityHigh   ComplaintPriority = "HIGH"
	PriorityUrgent ComplaintPriority = "URGENT"
)
