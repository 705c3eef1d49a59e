package util

const (
	FarmerRole = "farmer"
	WorkerRole = "worker"
)

// IsSupportedRole returns true if the role is supported
func IsSupportedRole(role string) bool {
	switch role {
	case FarmerRole, WorkerRole:
		return true
	}
	return false
}

// HasRole checks if the user's role matches any of the allowed roles
func HasRole(userRole string, allowedRoles ...string) bool {
	for _, role := range allowedRoles {
		if userRole == role {
			return true
		}
	}
	return false
}
