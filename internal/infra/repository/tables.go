package repository

// Table names in the record store. Field names inside records are
// snake_case, matching the remote row shape 1:1.
const (
	tableResources    = "resources"
	tableBookings     = "bookings"
	tableTransactions = "transactions"
	tableRateCards    = "rate_cards"
	tablePolicies     = "policies"
	tableTenants      = "tenants"
	tableUsers        = "users"
)
