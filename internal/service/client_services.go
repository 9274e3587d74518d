package service

import (
	"github.com/kinkeeper-app/kinkeeper/internal/adapter"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// ClientServices bundles one facade per entity family plus the shared sync
// machinery, all wired to one cache, one queue and one remote adapter.
type ClientServices struct {
	Reconciler Reconciler
	Flush      FlushService
	FlushJob   FlushJob

	Profiles       *Facade[models.Profile, *models.Profile]
	ProfileDetails *Facade[models.ProfileDetail, *models.ProfileDetail]
	Appointments   *Facade[models.Appointment, *models.Appointment]
	Countdowns     *Facade[models.Countdown, *models.Countdown]
	Medications    *Facade[models.Medication, *models.Medication]
	TodoLists      *Facade[models.TodoList, *models.TodoList]
	TodoItems      *Facade[models.TodoItem, *models.TodoItem]
	Contacts       *Facade[models.Contact, *models.Contact]
	Moods          *Facade[models.MoodEntry, *models.MoodEntry]
	Reminders      *Facade[models.Reminder, *models.Reminder]
	MealPlans      *Facade[models.MealPlanEntry, *models.MealPlanEntry]
}

func NewClientServices(
	cache store.EntityCache,
	queue store.MutationQueue,
	remote adapter.RemoteRepository,
	connectivity adapter.ConnectivityObserver,
	log *logger.Logger,
) *ClientServices {
	reconciler := NewReconciler(cache, log.GetChildLogger())
	flush := NewFlushService(cache, queue, remote, connectivity, log.GetChildLogger())
	job := NewFlushJob(flush, log.GetChildLogger())
	kick := job.SyncNow

	return &ClientServices{
		Reconciler: reconciler,
		Flush:      flush,
		FlushJob:   job,

		Profiles: NewFacade[models.Profile](models.FamilyProfile, cache, queue, remote, connectivity, reconciler, log,
			WithCascade[models.Profile](models.FamilyProfileDetail, "profile_id"),
			WithFlushKick[models.Profile](kick),
		),
		ProfileDetails: NewFacade[models.ProfileDetail](models.FamilyProfileDetail, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.ProfileDetail](kick),
		),
		Appointments: NewFacade[models.Appointment](models.FamilyAppointment, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.Appointment](kick),
		),
		Countdowns: NewFacade[models.Countdown](models.FamilyCountdown, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.Countdown](kick),
		),
		Medications: NewFacade[models.Medication](models.FamilyMedication, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.Medication](kick),
		),
		TodoLists: NewFacade[models.TodoList](models.FamilyTodoList, cache, queue, remote, connectivity, reconciler, log,
			WithCascade[models.TodoList](models.FamilyTodoItem, "list_id"),
			WithFlushKick[models.TodoList](kick),
		),
		TodoItems: NewFacade[models.TodoItem](models.FamilyTodoItem, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.TodoItem](kick),
		),
		Contacts: NewFacade[models.Contact](models.FamilyContact, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.Contact](kick),
		),
		Moods: NewFacade[models.MoodEntry](models.FamilyMood, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.MoodEntry](kick),
		),
		Reminders: NewFacade[models.Reminder](models.FamilyReminder, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.Reminder](kick),
		),
		MealPlans: NewFacade[models.MealPlanEntry](models.FamilyMealPlan, cache, queue, remote, connectivity, reconciler, log,
			WithFlushKick[models.MealPlanEntry](kick),
		),
	}
}
