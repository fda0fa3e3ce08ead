package models

type SortField string

const (
	SortByLastName    SortField = "lastName"
	SortByFirstName   SortField = "firstName"
	SortByDateOfBirth SortField = "dateOfBirth"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchFilters is the flat filter/sort criteria object supplied by the
// presentation layer.
type SearchFilters struct {
	SearchTerm       string    `json:"searchTerm"`
	SortField        SortField `json:"sortField"`
	SortOrder        SortOrder `json:"sortOrder"`
	RecentVisitsOnly bool      `json:"recentVisitsOnly"`
}

type DashboardStats struct {
	TodayPatientCount int        `json:"todayPatientCount"`
	WeekPatientCount  int        `json:"weekPatientCount"`
	MonthPatientCount int        `json:"monthPatientCount"`
	TotalPatients     int        `json:"totalPatients"`
	RecentPatients    []*Patient `json:"recentPatients"`
	TodayVisits       []*Visit   `json:"todayVisits"`
}
