package constants

// Ticket status
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
	RoleUser       = 0
)
