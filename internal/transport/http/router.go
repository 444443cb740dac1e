package http

import "github.com/gin-gonic/gin"

// NewRouter mounts every resource on a fresh gin engine.
func NewRouter(rh *ReservationHandler, gh *GuestHandler, ch *CourtHandler, sh *ScheduleHandler) *gin.Engine {
	r := gin.Default()

	reservations := r.Group("/reservations")
	{
		reservations.POST("", rh.Book)
		reservations.GET("/history", rh.History)
		reservations.GET("/:id", rh.Find)
		reservations.PUT("/:id/cancel", rh.Cancel)
		reservations.PUT("/:id", rh.Reschedule)
	}

	guests := r.Group("/guests")
	{
		guests.POST("", gh.Add)
		guests.GET("", gh.List)
		guests.GET("/:id", gh.Find)
		guests.PUT("/:id", gh.Update)
		guests.DELETE("/:id", gh.Delete)
	}

	courts := r.Group("/tennis-courts")
	{
		courts.POST("", ch.Add)
		courts.GET("", ch.List)
		courts.GET("/:id", ch.Find)
		courts.GET("/:id/schedules", ch.FindWithSchedules)
	}

	schedules := r.Group("/schedules")
	{
		schedules.POST("", sh.Add)
		schedules.GET("", sh.FindByDates)
		schedules.GET("/:id", sh.Find)
	}

	return r
}
