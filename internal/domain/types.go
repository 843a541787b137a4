package domain

import "time"

// UserID is the Telegram identity of the person talking to the bot.
type UserID int64

type SessionID string

// Stage is a discrete position in the fixed conversational pipeline.
type Stage string

const (
	StageInit        Stage = "init"
	StageGoal        Stage = "goal"
	StageLevel       Stage = "level"
	StageLanguage    Stage = "language"
	StagePastCourses Stage = "past_courses"
	StageRecommend   Stage = "recommend"
	StageFeedback    Stage = "feedback"
	StageDone        Stage = "done"
)

// Language is the user's preferred learning language.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

type Timestamp = time.Time
