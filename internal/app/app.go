package app

import (
	"thrgacha/internal/service"
)

// App holds the wired service set handed to the transport layer.
type App struct {
	RoomService     *service.RoomService
	QuestionService *service.QuestionService
	TokenService    *service.TokenService
	EntryService    *service.EntryService
	SpinService     *service.SpinService
	StatsService    *service.StatsService
}
