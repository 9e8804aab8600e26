package dynamo

// DynamoDB attribute and index names shared by the repos and Bootstrap.
const (
	fieldUserID    = "user_id"
	fieldMeetingID = "meeting_id"
	fieldPetID     = "pet_id"
	fieldEmail     = "email"

	emailIndex = "email-index"
)
