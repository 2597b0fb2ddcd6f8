package proactive

import "time"

// Job names, also used as the manual-trigger action identifiers.
const (
	JobDailyBriefing      = "daily_briefing"
	JobUrgentTaskSweep    = "urgent_task_sweep"
	JobWeeklyOptimization = "weekly_optimization"
	JobFollowUpCheck      = "followup_check"
	JobMeetingPrep        = "meeting_prep"
)

// Cron schedules (standard 5-field format, local time).
const (
	scheduleDailyBriefing      = "0 8 * * *"        // 08:00 every day
	scheduleUrgentTaskSweep    = "0 9-17/2 * * 1-5" // every 2h, 09:00-17:00, Mon-Fri
	scheduleWeeklyOptimization = "0 18 * * 0"       // Sunday 18:00
	scheduleFollowUpCheck      = "0 */4 * * *"      // every 4 hours
	scheduleMeetingPrep        = "*/15 * * * *"     // every 15 minutes
)

// Decision thresholds.
const (
	defaultTopTasks     = 5
	analyticsPeriodDays = 7
	followUpMinSent     = 5
	followUpOpenRateMin = 0.30
	meetingPrepLeadMin  = 45 * time.Minute
	meetingPrepLeadMax  = 60 * time.Minute
	conflictGapMax      = 15 * time.Minute
	taskListFetchLimit  = 50
	calendarFetchMax    = 50
)
