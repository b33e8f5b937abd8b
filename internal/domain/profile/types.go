package profile

type Role string

const (
	RoleApplicant    Role = "applicant"
	RoleStudent      Role = "student"
	RoleStaff        Role = "staff"
	RoleDeanery      Role = "deanery"
	RoleCareerCenter Role = "career_center"
	RoleDormManager  Role = "dorm_manager"
	RoleLibrarian    Role = "librarian"
	RoleSupervisor   Role = "supervisor"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleStudent, RoleStaff, RoleDeanery, RoleCareerCenter,
		RoleDormManager, RoleLibrarian, RoleSupervisor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
