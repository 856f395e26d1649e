package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/controllers"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/auth"
)

// Controllers groups every HTTP handler set
type Controllers struct {
	Auth       *controllers.AuthController
	Student    *controllers.StudentController
	Faculty    *controllers.FacultyController
	Department *controllers.DepartmentController
	Club       *controllers.ClubController
	Society    *controllers.SocietyController
	Hostel     *controllers.HostelController
	Library    *controllers.LibraryController
	Accounts   *controllers.AccountsController
	Academic   *controllers.AcademicController
	Canteen    *controllers.CanteenController
	NNF        *controllers.NNFController
	Snapshot   *controllers.SnapshotController
	Activity   *controllers.ActivityController
}

// SetupRouter configures all application routes. Reads are public, every
// mutation needs an admin token.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", c.Auth.Login)
	v1.GET("/college", c.Faculty.GetCollege)

	v1.GET("/students", c.Student.GetAllStudents)
	v1.GET("/students/:id", c.Student.GetStudentByID)
	v1.GET("/faculty", c.Faculty.GetAllFaculty)
	v1.GET("/faculty/:id", c.Faculty.GetFacultyByID)

	v1.GET("/departments", c.Department.GetAllDepartments)
	v1.GET("/departments/:id", c.Department.GetDepartmentByID)

	v1.GET("/clubs", c.Club.GetAllClubs)
	v1.GET("/clubs/:name", c.Club.GetClub)
	v1.GET("/societies", c.Society.GetAllSocieties)
	v1.GET("/societies/:name", c.Society.GetSociety)

	v1.GET("/hostels/:name/rooms", c.Hostel.GetRooms)
	v1.GET("/hostels/:name/rooms/:room", c.Hostel.GetRoommates)

	v1.GET("/library/books", c.Library.GetBooks)
	v1.GET("/library/books/rentable", c.Library.GetRentableBooks)
	v1.GET("/library/books/non-rentable", c.Library.GetNonRentableBooks)

	v1.GET("/accounts/receipts/:studentId", c.Accounts.GetReceipts)

	v1.GET("/academic/grades/:studentId", c.Academic.GetGrades)
	v1.GET("/academic/subjects/:subject", c.Academic.GetSubjectGrades)

	v1.GET("/canteens", c.Canteen.GetCanteens)
	v1.GET("/canteens/:name/menu", c.Canteen.GetMenu)

	v1.GET("/nnf", c.NNF.GetNNF)

	v1.GET("/activity", c.Activity.GetRecent)
	v1.GET("/activity/ws", c.Activity.Subscribe)

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		admin.POST("/students", c.Student.CreateStudent)
		admin.POST("/faculty", c.Faculty.CreateFaculty)

		departments := admin.Group("/departments/:id")
		{
			departments.POST("/students", c.Department.AddStudent)
			departments.POST("/faculty", c.Department.AddFaculty)
			departments.PUT("/fest", c.Department.OrganiseFest)
		}

		clubs := admin.Group("/clubs/:name")
		{
			clubs.POST("/members", c.Club.AddMember)
			clubs.DELETE("/members/:studentId", c.Club.RemoveMember)
			clubs.POST("/instruments", c.Club.AddInstrument)
			clubs.DELETE("/instruments/:instrument", c.Club.RemoveInstrument)
			clubs.PUT("/secretary", c.Club.ChangeSecretary)
			clubs.PUT("/treasurer", c.Club.ChangeTreasurer)
		}

		societies := admin.Group("/societies/:name")
		{
			societies.POST("/members", c.Society.AddMember)
			societies.DELETE("/members/:studentId", c.Society.RemoveMember)
			societies.POST("/volunteers", c.Society.AddVolunteer)
			societies.DELETE("/volunteers/:studentId", c.Society.RemoveVolunteer)
			societies.PUT("/head", c.Society.SetHead)
			societies.PUT("/coordinator", c.Society.SetCoordinator)
		}

		rooms := admin.Group("/hostels/:name/rooms/:room")
		{
			rooms.PUT("", c.Hostel.AllocateRoom)
			rooms.DELETE("", c.Hostel.VacateRoom)
			rooms.POST("/fees", c.Hostel.PayFees)
			rooms.POST("/penalty", c.Hostel.Penalty)
		}

		library := admin.Group("/library")
		{
			library.POST("/stock", c.Library.AddStock)
			library.POST("/stock/remove", c.Library.RemoveStock)
			library.POST("/issue", c.Library.IssueBook)
			library.POST("/return", c.Library.ReturnBook)
			library.POST("/sync", c.Library.SyncDB)
		}

		admin.POST("/accounts/payments", c.Accounts.PayFees)

		admin.POST("/academic/grades", c.Academic.AssignGrade)
		admin.PUT("/academic/grades/:studentId", c.Academic.UpdateGrades)

		canteens := admin.Group("/canteens/:name")
		{
			canteens.POST("/orders", c.Canteen.OrderItem)
			canteens.POST("/requests", c.Canteen.RequestItem)
			canteens.PUT("/menu", c.Canteen.UpdateMenu)
			canteens.POST("/sync", c.Canteen.SyncDB)
		}

		nnf := admin.Group("/nnf")
		{
			nnf.PUT("/director", c.NNF.SetChiefDirector)
			nnf.POST("/startups", c.NNF.AddStartup)
			nnf.POST("/events/past", c.NNF.AddPastEvent)
			nnf.POST("/events/upcoming", c.NNF.ScheduleEvent)
			nnf.DELETE("/events/past/:event", c.NNF.RemovePastEvent)
			nnf.DELETE("/events/upcoming/:event", c.NNF.RemoveUpcomingEvent)
		}

		admin.POST("/admin/snapshot", c.Snapshot.CreateSnapshot)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
