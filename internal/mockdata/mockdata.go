// Package mockdata holds the demo datasets the dashboards render for
// widgets the backend does not serve (analytics charts, maintenance
// queue). The data is static and clearly server-independent.
package mockdata

// RevenuePoint is one month of the revenue chart
type RevenuePoint struct {
	Month   string
	Revenue float64
	Expense float64
}

// MonthlyRevenue returns the demo revenue series for the analytics chart
func MonthlyRevenue() []RevenuePoint {
	return []RevenuePoint{
		{Month: "Jan", Revenue: 42300, Expense: 11200},
		{Month: "Feb", Revenue: 43150, Expense: 9800},
		{Month: "Mar", Revenue: 44900, Expense: 12650},
		{Month: "Apr", Revenue: 44200, Expense: 10400},
		{Month: "May", Revenue: 46750, Expense: 13900},
		{Month: "Jun", Revenue: 48100, Expense: 11750},
	}
}

// OccupancySummary is the headline occupancy widget
type OccupancySummary struct {
	TotalUnits    int
	OccupiedUnits int
	VacantUnits   int
	Rate          float64
}

// Occupancy returns the demo occupancy summary
func Occupancy() OccupancySummary {
	return OccupancySummary{
		TotalUnits:    48,
		OccupiedUnits: 44,
		VacantUnits:   4,
		Rate:          91.7,
	}
}

// MaintenanceRequest is one row of the maintenance queue
type MaintenanceRequest struct {
	ID       string
	Property string
	Summary  string
	Priority string
	Status   string
	Reported string
}

// MaintenanceQueue returns the demo maintenance requests
func MaintenanceQueue() []MaintenanceRequest {
	return []MaintenanceRequest{
		{ID: "MR-1042", Property: "12 Birchwood Ave, Unit 3", Summary: "Kitchen faucet dripping", Priority: "Low", Status: "Open", Reported: "2 days ago"},
		{ID: "MR-1041", Property: "88 Harbor View, Unit 12", Summary: "Heating not reaching set temperature", Priority: "High", Status: "In progress", Reported: "3 days ago"},
		{ID: "MR-1039", Property: "5 Alder Court", Summary: "Garage door remote unresponsive", Priority: "Medium", Status: "Open", Reported: "5 days ago"},
		{ID: "MR-1035", Property: "12 Birchwood Ave, Unit 1", Summary: "Bathroom extractor fan noise", Priority: "Low", Status: "Resolved", Reported: "1 week ago"},
	}
}
