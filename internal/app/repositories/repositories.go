package repositories

// Repositories holds the in-memory databases shared by the campus managers.
// Managers receive the individual repositories by pointer and mutate them
// directly, so every holder sees the same records.
type Repositories struct {
	StudentRepository *StudentRepository
	FacultyRepository *FacultyRepository
	LibraryRepository *LibraryRepository
	CanteenRepository *CanteenRepository
}

// NewRepositories initializes all repositories empty
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(),
		FacultyRepository: NewFacultyRepository(),
		LibraryRepository: NewLibraryRepository(),
		CanteenRepository: NewCanteenRepository(),
	}
}
