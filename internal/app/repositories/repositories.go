package repositories

import (
	"github.com/melisdmr/brightnest/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	TokenRepository           *TokenRepository
	ChildRepository           *ChildRepository
	ClassroomRepository       *ClassroomRepository
	AssignmentRepository      *AssignmentRepository
	CheckInRepository         *CheckInRepository
	StaffAttendanceRepository *StaffAttendanceRepository
}

// NewRepositories initializes all repositories. The occupancy repositories
// take the full database handle rather than the bare pool because their
// mutations run inside transactions.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(database.Pool),
		TokenRepository:           NewTokenRepository(database.Pool),
		ChildRepository:           NewChildRepository(database.Pool),
		ClassroomRepository:       NewClassroomRepository(database.Pool),
		AssignmentRepository:      NewAssignmentRepository(database),
		CheckInRepository:         NewCheckInRepository(database),
		StaffAttendanceRepository: NewStaffAttendanceRepository(database),
	}
}
