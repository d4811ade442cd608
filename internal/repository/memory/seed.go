package memory

import (
	"time"

	"github.com/google/uuid"

	"activitysignup/internal/domain"
)

// DefaultSeed returns the fixed set of school activities the registry starts
// with. The registry is not persisted; every process start begins from this
// roster.
func DefaultSeed() []*domain.Activity {
	return []*domain.Activity{
		seedActivity("Chess Club",
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM", 12,
			"michael@mergington.edu", "daniel@mergington.edu"),
		seedActivity("Programming Class",
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
			"emma@mergington.edu", "sophia@mergington.edu"),
		seedActivity("Gym Class",
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
			"john@mergington.edu", "olivia@mergington.edu"),
		seedActivity("Soccer Team",
			"Join the school soccer team and compete in matches",
			"Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 22,
			"alex@mergington.edu", "jordan@mergington.edu"),
		seedActivity("Swimming Club",
			"Practice swimming techniques and participate in swim meets",
			"Wednesdays, 3:30 PM - 5:00 PM", 15,
			"ava@mergington.edu", "mia@mergington.edu"),
		seedActivity("Art Studio",
			"Explore painting, drawing, and sculpture techniques",
			"Thursdays, 3:30 PM - 5:00 PM", 15,
			"amelia@mergington.edu", "harper@mergington.edu"),
		seedActivity("Drama Club",
			"Act, direct, and produce plays and performances",
			"Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
			"isabella@mergington.edu", "ella@mergington.edu"),
		seedActivity("Math Olympiad",
			"Solve challenging problems and prepare for math competitions",
			"Saturdays, 10:00 AM - 12:00 PM", 10,
			"james@mergington.edu", "benjamin@mergington.edu"),
		seedActivity("Science Olympiad",
			"Hands-on experiments and preparation for science competitions",
			"Fridays, 4:00 PM - 5:30 PM", 18,
			"charlotte@mergington.edu", "lucas@mergington.edu"),
	}
}

func seedActivity(name, description, schedule string, maxParticipants int, emails ...string) *domain.Activity {
	activity := domain.NewActivity(name, description, schedule, maxParticipants)
	now := time.Now()
	for _, email := range emails {
		activity.Registrations = append(activity.Registrations, &domain.Registration{
			ID:           uuid.NewString(),
			Email:        email,
			RegisteredAt: now,
		})
	}
	return activity
}
