package appointment

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/anami-scheduler/internal/dbtest"
	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// 10:00 in the business zone
var slotT = time.Date(2030, 3, 4, 13, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	db   *gorm.DB
	repo *repository.AppointmentGormRepository

	client models.Client
	deep   models.Service // 17000 / 40 min
	feet   models.Service // 10000 / 30 min

	create       *CreateAppointment
	update       *UpdateAppointment
	cancel       *CancelAppointment
	complete     *CompleteAppointment
	get          *GetAppointment
	list         *ListAppointments
	availability *GetAvailability
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	repo := repository.NewAppointmentGormRepository(db)
	log := zap.NewNop()
	pricing := DefaultPricing()

	f := &fixture{
		db:     db,
		repo:   repo,
		client: dbtest.Client(t, db, "Camila Rojas"),
		deep:   dbtest.Service(t, db, "Masaje Descontracturante", 17000, 40),
		feet:   dbtest.Service(t, db, "Masaje Podal", 10000, 30),

		create:       NewCreateAppointment(repo, nil, log, pricing),
		update:       NewUpdateAppointment(repo, nil, log, pricing),
		cancel:       NewCancelAppointment(repo, nil, log),
		complete:     NewCompleteAppointment(repo, nil, log),
		get:          NewGetAppointment(repo),
		list:         NewListAppointments(repo),
		availability: NewGetAvailability(repo, domain.DefaultBusinessHours()),
	}

	fixed := func() time.Time { return time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC) }
	f.update.now = fixed
	f.cancel.now = fixed
	f.complete.now = fixed
	f.availability.now = fixed

	return f
}
