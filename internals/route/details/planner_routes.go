package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "planner_backend/internals/features/planner/classes/route"
	eventRoute "planner_backend/internals/features/planner/events/route"
	homeworkRoute "planner_backend/internals/features/planner/homework/route"
	markRoute "planner_backend/internals/features/planner/marks/route"
	subjectRoute "planner_backend/internals/features/planner/subjects/route"
	timetableRoute "planner_backend/internals/features/planner/timetable/route"
)

func PlannerRoutes(api fiber.Router, db *gorm.DB) {
	subjectRoute.SubjectRoutes(api, db)
	timetableRoute.TimetableRoutes(api, db)
	homeworkRoute.HomeworkRoutes(api, db)
	markRoute.MarkRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	classRoute.ClassRoutes(api, db)
}
